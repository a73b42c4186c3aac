package testutils

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/neonleaf/neonleaf-go/lib"
	"github.com/neonleaf/neonleaf-go/lib/db"
	"github.com/neonleaf/neonleaf-go/lib/document"
	"github.com/neonleaf/neonleaf-go/lib/editor"
	"github.com/neonleaf/neonleaf-go/lib/gate"
	hooks2 "github.com/neonleaf/neonleaf-go/lib/hooks"
	session2 "github.com/neonleaf/neonleaf-go/lib/session"
	"github.com/neonleaf/neonleaf-go/lib/settings"
	"github.com/neonleaf/neonleaf-go/lib/ws"
	"go.uber.org/zap"
)

// Postgres runs are enabled by pointing these variables at a scratch database.
const (
	PostgresHostEnv     = "NEONLEAF_TEST_POSTGRES_HOST"
	PostgresPortEnv     = "NEONLEAF_TEST_POSTGRES_PORT"
	PostgresUserEnv     = "NEONLEAF_TEST_POSTGRES_USER"
	PostgresPasswordEnv = "NEONLEAF_TEST_POSTGRES_PASSWORD"
	PostgresDatabaseEnv = "NEONLEAF_TEST_POSTGRES_DATABASE"
)

const TestPassword = gate.DefaultPassword

type TestDataStore struct {
	DS         db.DataStore
	Logger     *zap.SugaredLogger
	Hooks      *hooks2.Hook
	Manager    *editor.Manager
	Gate       *gate.Gate
	Validator  *validator.Validate
	Hub        *ws.Hub
	App        *fiber.App
	PrivateAPI fiber.Router
	Settings   *settings.Settings
	Cookies    *session.Store
}

// ToInitStore wires the test fixtures the way server.InitServer wires the real ones.
func (t *TestDataStore) ToInitStore() *lib.InitStore {
	return &lib.InitStore{
		C:                 t.App,
		PrivateAPI:        t.PrivateAPI,
		RetrievedSettings: t.Settings,
		CookieStore:       t.Cookies,
		Store:             t.DS,
		Manager:           t.Manager,
		Gate:              t.Gate,
		Hub:               t.Hub,
		Validator:         t.Validator,
		Logger:            t.Logger,
		Hooks:             t.Hooks,
	}
}

// TestSettings mirrors the registry defaults with an in-memory database.
func TestSettings() *settings.Settings {
	return &settings.Settings{
		Title:             "NeonLeaf",
		IP:                "127.0.0.1",
		Port:              "9001",
		Gate:              settings.GateSettings{Enabled: true, Password: TestPassword},
		PageSize:          document.DefaultPageSize,
		ImportMaxFileSize: 50 * 1024 * 1024,
		DBType:            settings.MEMORY,
		DBSettings:        &settings.DBSettings{},
		LogLevel:          "INFO",
		EnableMetrics:     true,
		Cookie:            settings.Cookie{SameSite: "lax", SessionLifetime: 60 * 60 * 1000},
	}
}

type TestRunConfig struct {
	Name string
	Test func(t *testing.T, tsStore TestDataStore)
}

type TestDBHandler struct {
	t     *testing.T
	tests []TestRunConfig
}

func NewTestDBHandler(t *testing.T) *TestDBHandler {
	t.Helper()
	return &TestDBHandler{t: t}
}

func (test *TestDBHandler) AddTests(testConfs ...TestRunConfig) {
	test.tests = append(test.tests, testConfs...)
}

func (test *TestDBHandler) StartTestDBHandler() {
	datastores := map[string]func(t *testing.T) db.DataStore{
		"Memory": func(t *testing.T) db.DataStore {
			return db.NewMemoryDataStore()
		},
		"SQLite": func(t *testing.T) db.DataStore {
			sqliteDB, err := db.NewSQLiteDB(filepath.Join(t.TempDir(), "neonleaf.db"), zap.NewNop().Sugar())
			if err != nil {
				t.Fatalf("Failed to create SQLite DataStore: %v", err)
			}
			return sqliteDB
		},
	}
	if os.Getenv(PostgresHostEnv) != "" {
		datastores["Postgres"] = test.InitPostgres
	}

	for dsName, newDS := range datastores {
		test.t.Run(dsName, func(t *testing.T) {
			for _, testConf := range test.tests {
				test.TestRun(t, testConf, newDS)
			}
		})
	}
}

func (test *TestDBHandler) InitPostgres(t *testing.T) db.DataStore {
	port, err := strconv.Atoi(os.Getenv(PostgresPortEnv))
	if err != nil {
		port = 5432
	}
	postgresDB, err := db.NewPostgresDB(db.PostgresOptions{
		Username: os.Getenv(PostgresUserEnv),
		Password: os.Getenv(PostgresPasswordEnv),
		Host:     os.Getenv(PostgresHostEnv),
		Port:     port,
		Database: os.Getenv(PostgresDatabaseEnv),
		SSLMode:  "disable",
	}, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Failed to create Postgres DataStore: %v", err)
	}
	cleanupDocuments(t, postgresDB)
	return postgresDB
}

// cleanupDocuments empties a shared database before a test uses it.
func cleanupDocuments(t *testing.T, ds db.DataStore) {
	ids, err := ds.GetDocumentIds()
	if err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	for _, id := range *ids {
		if err := ds.RemoveDocument(id); err != nil {
			t.Fatalf("cleanup of %s failed: %v", id, err)
		}
	}
	if err := ds.ResetFiberSessions(); err != nil {
		t.Fatalf("session cleanup failed: %v", err)
	}
}

func (test *TestDBHandler) TestRun(t *testing.T, testRun TestRunConfig, newDS func(t *testing.T) db.DataStore) {
	t.Run(testRun.Name, func(t *testing.T) {
		ds := newDS(t)
		tsStore := NewTestDataStore(ds)
		testRun.Test(t, tsStore)
		tsStore.Hub.Stop()

		if err := ds.Close(); err != nil {
			t.Errorf("Failed to close DataStore: %v", err)
		}
	})
}

// NewTestDataStore builds a fresh app, manager and gate around ds.
func NewTestDataStore(ds db.DataStore) TestDataStore {
	logger := zap.NewNop().Sugar()
	hooks := hooks2.NewHook()
	retrievedSettings := TestSettings()
	hub := ws.NewHub(logger)
	go hub.Run()
	app := fiber.New(fiber.Config{BodyLimit: int(retrievedSettings.ImportMaxFileSize) + 1024*1024})

	// PrivateAPI is ungated; api.InitAPI replaces it with the session-checked group.
	return TestDataStore{
		DS:         ds,
		Logger:     logger,
		Hooks:      hooks,
		Manager:    editor.NewManager(ds, hooks, logger, retrievedSettings.PageSize),
		Gate:       gate.NewGate(retrievedSettings.Gate.Password, retrievedSettings.Gate.Enabled),
		Validator:  validator.New(validator.WithRequiredStructEnabled()),
		Hub:        hub,
		App:        app,
		PrivateAPI: app.Group("/api/documents"),
		Settings:   retrievedSettings,
		Cookies:    session.New(session.Config{
			KeyLookup:  "cookie:neonleaf_sid",
			Storage:    session2.NewSessionDatabase(ds),
			Expiration: time.Hour,
		}),
	}
}
