package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/neonleaf/neonleaf-go/lib/db"
)

// Database persists fiber sessions in the configured DataStore so a login
// survives restarts when a SQL backend is used.
type Database struct {
	store db.DataStore
}

func (s *Database) Get(key string) ([]byte, error) {
	if len(key) == 0 {
		return nil, nil
	}
	return s.store.GetFiberSession(key)
}

func (s *Database) Set(key string, val []byte, exp time.Duration) error {
	if len(key) == 0 || len(val) == 0 {
		return nil
	}
	var expiresAt int64
	if exp > 0 {
		expiresAt = time.Now().Add(exp).Unix()
	}
	return s.store.SetFiberSession(key, val, expiresAt)
}

func (s *Database) Delete(key string) error {
	if len(key) == 0 {
		return nil
	}
	return s.store.DeleteFiberSession(key)
}

func (s *Database) ResetExpirations() error {
	return s.store.CleanupExpiredFiberSessions()
}

func (s *Database) Reset() error {
	return s.store.ResetFiberSessions()
}

// Close is a no-op, the DataStore is closed by its owner.
func (s *Database) Close() error {
	return nil
}

func NewSessionDatabase(store db.DataStore) *Database {
	return &Database{store: store}
}

var _ fiber.Storage = (*Database)(nil)
