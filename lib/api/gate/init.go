package gate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/neonleaf/neonleaf-go/lib"
	errors2 "github.com/neonleaf/neonleaf-go/lib/api/errors"
)

const authenticatedKey = "authenticated"

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	GateEnabled   bool   `json:"gateEnabled"`
	Title         string `json:"title"`
}

// Login godoc
// @Summary Unlock the editor
// @Tags Gate
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Shared password"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} errors.Error
// @Router /api/login [post]
func Login(store *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request LoginRequest
		if err := c.BodyParser(&request); err != nil {
			return errors2.Send(c, errors2.InvalidRequestError)
		}
		if err := store.Validator.Struct(request); err != nil {
			return errors2.Send(c, errors2.NewMissingParamError("password"))
		}
		if !store.Gate.Check(request.Password) {
			store.Logger.Warnf("Rejected login from %s", c.IP())
			return errors2.Send(c, errors2.IncorrectPasswordError)
		}

		sess, err := store.CookieStore.Get(c)
		if err != nil {
			store.Logger.Errorf("Failed to load session: %v", err)
			return errors2.Send(c, errors2.InternalServerError)
		}
		sess.Set(authenticatedKey, true)
		if err := sess.Save(); err != nil {
			store.Logger.Errorf("Failed to save session: %v", err)
			return errors2.Send(c, errors2.InternalServerError)
		}
		return c.JSON(SessionResponse{
			Authenticated: true,
			GateEnabled:   store.Gate.Enabled(),
			Title:         store.RetrievedSettings.Title,
		})
	}
}

func Logout(store *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.CookieStore.Get(c)
		if err != nil {
			return errors2.Send(c, errors2.InternalServerError)
		}
		if err := sess.Destroy(); err != nil {
			store.Logger.Errorf("Failed to destroy session: %v", err)
			return errors2.Send(c, errors2.InternalServerError)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func Status(store *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(SessionResponse{
			Authenticated: isAuthenticated(store, c),
			GateEnabled:   store.Gate.Enabled(),
			Title:         store.RetrievedSettings.Title,
		})
	}
}

// RequireSession rejects requests without an unlocked session while the gate
// is enabled.
func RequireSession(store *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isAuthenticated(store, c) {
			return c.Next()
		}
		return errors2.Send(c, errors2.UnauthorizedError)
	}
}

func isAuthenticated(store *lib.InitStore, c *fiber.Ctx) bool {
	if !store.Gate.Enabled() {
		return true
	}
	sess, err := store.CookieStore.Get(c)
	if err != nil {
		store.Logger.Warnf("Failed to load session: %v", err)
		return false
	}
	authenticated, ok := sess.Get(authenticatedKey).(bool)
	return ok && authenticated
}

func Init(store *lib.InitStore) {
	store.C.Post("/api/login", Login(store))
	store.C.Post("/api/logout", Logout(store))
	store.C.Get("/api/session", Status(store))
}
