package lib

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/neonleaf/neonleaf-go/lib/db"
	"github.com/neonleaf/neonleaf-go/lib/editor"
	"github.com/neonleaf/neonleaf-go/lib/gate"
	"github.com/neonleaf/neonleaf-go/lib/hooks"
	"github.com/neonleaf/neonleaf-go/lib/settings"
	"github.com/neonleaf/neonleaf-go/lib/ws"
	"go.uber.org/zap"
)

// InitStore carries everything route packages need to register themselves.
// PrivateAPI is the gated /api/documents group and is set by api.InitAPI.
type InitStore struct {
	C                 *fiber.App
	PrivateAPI        fiber.Router
	RetrievedSettings *settings.Settings
	CookieStore       *session.Store
	Store             db.DataStore
	Manager           *editor.Manager
	Gate              *gate.Gate
	Hub               *ws.Hub
	Validator         *validator.Validate
	Logger            *zap.SugaredLogger
	Hooks             *hooks.Hook
}
