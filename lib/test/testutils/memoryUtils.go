package testutils

import (
	db2 "github.com/neonleaf/neonleaf-go/lib/db"
	"github.com/neonleaf/neonleaf-go/lib/document"
	"github.com/neonleaf/neonleaf-go/lib/editor"
	hooks2 "github.com/neonleaf/neonleaf-go/lib/hooks"
	"go.uber.org/zap"
)

func InitMemoryUtils() (*db2.MemoryDataStore, *hooks2.Hook, *editor.Manager) {
	db := db2.NewMemoryDataStore()
	hooks := hooks2.NewHook()
	manager := editor.NewManager(db, hooks, zap.NewNop().Sugar(), document.DefaultPageSize)

	return db, hooks, manager
}
