package accounts

import "fmt"

// Logger is the minimal logging surface the package needs. Callers can
// plug their own implementation; everything falls back to defLogger.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// NamedLogger returns the default stdout logger with a subsystem prefix.
func NamedLogger(name string) Logger {
	return defLogger{name: name}
}

type defLogger struct {
	name string
}

func (d defLogger) prefix() string {
	if d.name == "" {
		return "ACCOUNTS"
	}
	return "ACCOUNTS:" + d.name
}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] "+d.prefix()+" "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] "+d.prefix()+" "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] "+d.prefix()+" "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] "+d.prefix()+" "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
