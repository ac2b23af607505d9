package accounts

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
)

// principalKey is the locals key RequireCredentials stores the resolved
// Account under.
const principalKey = "accounts_principal"

// Controller wires the account routes. Gated routes read credentials from
// the username and password request headers; signup and login take a JSON
// body and bypass the role gate.
type Controller struct {
	Logger   Logger
	Store    Accounts
	Provider *AccountProvider
}

type ControllerOption func(*Controller) *Controller

func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		Logger: defLogger{},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Store == nil {
		panic("Missing Accounts store in controller...")
	}

	if c.Provider == nil {
		c.Provider = NewAccountProvider(c.Store)
	}

	return c
}

// RegisterRoutes mounts the account endpoints on the app.
func RegisterRoutes(app *fiber.App, opts ...ControllerOption) *Controller {
	c := NewController(opts...)

	app.Post("/signup", c.SignupPost)
	app.Post("/login", c.LoginPost)
	app.Get("/users", c.RequireCredentials, c.RequireRole(RoleAdmin), c.UsersIndex)
	app.Delete("/user/:username", c.RequireCredentials, c.RequireRole(RoleOwner), c.UserDelete)

	return c
}

// CredentialsPayload is the signup and login body
type CredentialsPayload struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r CredentialsPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Username,
			validation.Required,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// SignupPost creates an account with the default user role. The role is
// never taken from the payload.
func (c *Controller) SignupPost(ctx *fiber.Ctx) error {
	payload := new(CredentialsPayload)

	if err := ctx.BodyParser(payload); err != nil {
		c.Logger.Error("signup parse payload: %v", err)
		return signupFailed(ctx, err)
	}

	if err := payload.Validate(); err != nil {
		return signupFailed(ctx, err)
	}

	hash, err := HashPassword(payload.Password)
	if err != nil {
		return signupFailed(ctx, err)
	}

	if _, err := c.Store.Create(ctx.Context(), &Account{
		Username:     payload.Username,
		PasswordHash: hash,
	}); err != nil {
		c.Logger.Error("signup create account: %v", err)
		return signupFailed(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created",
	})
}

// LoginPost verifies credentials and reports the resolved role. No
// session or token is issued.
func (c *Controller) LoginPost(ctx *fiber.Ctx) error {
	payload := new(CredentialsPayload)

	if err := ctx.BodyParser(payload); err != nil {
		c.Logger.Error("login parse payload: %v", err)
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	account, err := c.Provider.VerifyCredentials(ctx.Context(), payload.Username, payload.Password)
	if err != nil {
		return c.credentialError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message": "Login successful",
		"role":    account.Role,
	})
}

// RequireCredentials authenticates the request from the username and
// password headers and stores the principal for downstream handlers.
func (c *Controller) RequireCredentials(ctx *fiber.Ctx) error {
	username := ctx.Get("username")
	password := ctx.Get("password")

	account, err := c.Provider.VerifyCredentials(ctx.Context(), username, password)
	if err != nil {
		return c.credentialError(ctx, err)
	}

	ctx.Locals(principalKey, account)

	return ctx.Next()
}

// RequireRole gates the route behind a minimum required role. It must run
// after RequireCredentials.
func (c *Controller) RequireRole(required Role) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		principal, ok := PrincipalFrom(ctx)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Missing credentials",
			})
		}

		if !principal.Role.IsAtLeast(required) {
			err := NewInsufficientRoleError(required)
			c.Logger.Debug("role gate denied: role=%s required=%s", principal.Role, required)
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": tierMessage(required),
				"error":   err.Error(),
			})
		}

		return ctx.Next()
	}
}

// UsersIndex returns every account. Password hashes are excluded from the
// serialized records.
func (c *Controller) UsersIndex(ctx *fiber.Ctx) error {
	records, err := c.Store.List(ctx.Context())
	if err != nil {
		c.Logger.Error("list accounts: %v", err)
		return internalError(ctx)
	}

	return ctx.JSON(records)
}

// UserDelete removes the account with the given username. Deleting a
// nonexistent username still reports success; deleting the owner account
// is always refused.
func (c *Controller) UserDelete(ctx *fiber.Ctx) error {
	username := ctx.Params("username")

	if err := c.Store.DeleteByUsername(ctx.Context(), username); err != nil {
		if errors.Is(err, ErrProtectedAccount) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cannot delete owner",
			})
		}
		c.Logger.Error("delete account: %v", err)
		return internalError(ctx)
	}

	return ctx.JSON(fiber.Map{
		"message": fmt.Sprintf("User %s deleted", username),
	})
}

// PrincipalFrom returns the authenticated account stored by
// RequireCredentials.
func PrincipalFrom(ctx *fiber.Ctx) (*Account, bool) {
	account, ok := ctx.Locals(principalKey).(*Account)
	if !ok || account == nil {
		return nil, false
	}
	return account, true
}

func (c *Controller) credentialError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing credentials",
		})
	case errors.Is(err, ErrInvalidCredentials):
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	default:
		c.Logger.Error("credential verification: %v", err)
		return internalError(ctx)
	}
}

func signupFailed(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Signup failed",
		"error":   err.Error(),
	})
}

func internalError(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}

func tierMessage(required Role) string {
	switch required {
	case RoleAdmin:
		return "Admin access required"
	case RoleOwner:
		return "Owner access required"
	default:
		return fmt.Sprintf("%s access required", required)
	}
}
