package server

import (
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/neonleaf/neonleaf-go/lib"
	api2 "github.com/neonleaf/neonleaf-go/lib/api"
	"github.com/neonleaf/neonleaf-go/lib/editor"
	"github.com/neonleaf/neonleaf-go/lib/gate"
	"github.com/neonleaf/neonleaf-go/lib/hooks"
	session2 "github.com/neonleaf/neonleaf-go/lib/session"
	settings2 "github.com/neonleaf/neonleaf-go/lib/settings"
	"github.com/neonleaf/neonleaf-go/lib/utils"
	"github.com/neonleaf/neonleaf-go/lib/ws"
	"go.uber.org/zap"
)

const sessionCookieName = "neonleaf_sid"

// multipart framing on top of the largest accepted file
const bodyLimitSlack = 1024 * 1024

// bodyLimit leaves room for the largest accepted upload. Without an upload
// limit the body is not capped either, so the upload handler stays the one
// answering oversized requests.
func bodyLimit(maxFileSize int64) int {
	if maxFileSize <= 0 || maxFileSize > math.MaxInt32-bodyLimitSlack {
		return math.MaxInt32
	}
	return int(maxFileSize) + bodyLimitSlack
}

// newServerLogger builds the logger used once settings are loaded.
func newServerLogger(settings *settings2.Settings, opts ...zap.Option) *zap.SugaredLogger {
	return utils.SetupLoggerWithLevel(settings.LogLevel, opts...)
}

// NewApp wires the datastore, editor, gate and websocket hub into a fiber app
// with every route registered. The caller owns the returned hub and store.
func NewApp(settings *settings2.Settings, setupLogger *zap.SugaredLogger) (*lib.InitStore, error) {
	dataStore, err := utils.GetDB(*settings, setupLogger)
	if err != nil {
		return nil, err
	}

	validatorEvaluator := validator.New(validator.WithRequiredStructEnabled())
	retrievedHooks := hooks.NewHook()
	editorManager := editor.NewManager(dataStore, retrievedHooks, setupLogger, settings.PageSize)
	globalHub := ws.NewHub(setupLogger)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               settings.Title,
		BodyLimit:             bodyLimit(settings.ImportMaxFileSize),
	})

	var cookieStore = session.New(session.Config{
		KeyLookup:      "cookie:" + sessionCookieName,
		Storage:        session2.NewSessionDatabase(dataStore),
		CookieSameSite: settings.Cookie.SameSite,
		CookieHTTPOnly: true,
		Expiration:     settings.SessionLifetime(),
	})

	if !settings.Gate.Enabled {
		setupLogger.Warn("The password gate is disabled, every document is reachable without login")
	}

	store := &lib.InitStore{
		C:                 app,
		RetrievedSettings: settings,
		CookieStore:       cookieStore,
		Store:             dataStore,
		Manager:           editorManager,
		Gate:              gate.NewGate(settings.Gate.Password, settings.Gate.Enabled),
		Hub:               globalHub,
		Validator:         validatorEvaluator,
		Logger:            setupLogger,
		Hooks:             retrievedHooks,
	}
	api2.InitAPI(store)
	return store, nil
}

// InitServer loads the settings, builds the app and serves it until Listen fails.
func InitServer(setupLogger *zap.SugaredLogger) error {
	settings := settings2.InitSettings(setupLogger)
	logger := newServerLogger(settings)
	defer logger.Sync()

	logger.Info("Starting NeonLeaf...")
	logger.Info("Your NeonLeaf version is " + settings2.BuildVersion())

	store, err := NewApp(settings, logger)
	if err != nil {
		logger.Errorf("Error connecting to database: %v", err)
		return err
	}
	defer func() {
		store.Hub.Stop()
		if err := store.Store.Close(); err != nil {
			logger.Warnf("Error closing database: %v", err)
		}
	}()
	go store.Hub.Run()

	logger.Info("Starting Web UI on " + settings.Address())
	if err := store.C.Listen(settings.Address()); err != nil {
		logger.Errorf("Error starting web UI: %v", err)
		return err
	}
	return nil
}
