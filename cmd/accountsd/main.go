package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	accounts "github.com/goliatone/go-accounts"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

var requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "accounts_http_requests_total",
	Help: "Total number of HTTP requests handled, by route and status.",
}, []string{"route", "status"})

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	ctx := context.Background()

	sqldb, err := sql.Open(sqliteshim.ShimName, getenv("DB_DSN", "file:accounts.db?cache=shared"))
	if err != nil {
		log.Fatal(err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())

	if err := accounts.CreateSchema(ctx, db); err != nil {
		log.Fatal(err)
	}

	store := accounts.NewAccountsRepository(db)

	// Seeding completes before the listener starts accepting requests.
	seeder := accounts.NewSeeder(store,
		accounts.WithOwnerPassword(os.Getenv("OWNER_PASSWORD")),
		accounts.WithSeederLogger(accounts.NamedLogger("seeder")),
	)
	if err := seeder.EnsureOwner(ctx); err != nil {
		log.Fatal(err)
	}

	prometheus.MustRegister(requestCounter)

	app := fiber.New()

	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		requestCounter.WithLabelValues(
			c.Route().Path,
			strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return err
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	accounts.RegisterRoutes(app, func(c *accounts.Controller) *accounts.Controller {
		c.Store = store
		c.Logger = accounts.NamedLogger("http")
		return c
	})

	go func() {
		if err := app.Listen(":" + getenv("PORT", "5000")); err != nil {
			log.Fatal(err)
		}
	}()

	waitExitSignal()

	if err := app.Shutdown(); err != nil {
		log.Println("shutdown error:", err)
	}
	if err := db.Close(); err != nil {
		log.Println("db close error:", err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func waitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
