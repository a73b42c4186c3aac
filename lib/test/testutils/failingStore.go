package testutils

import (
	"errors"
	"sync/atomic"

	db2 "github.com/neonleaf/neonleaf-go/lib/db"
	"github.com/neonleaf/neonleaf-go/lib/models/db"
)

var ErrStoreUnavailable = errors.New("store unavailable")

// FailingDataStore wraps a MemoryDataStore and fails writes while FailWrites
// is set.
type FailingDataStore struct {
	*db2.MemoryDataStore
	failWrites atomic.Bool
}

func NewFailingDataStore() *FailingDataStore {
	return &FailingDataStore{MemoryDataStore: db2.NewMemoryDataStore()}
}

func (f *FailingDataStore) FailWrites(fail bool) {
	f.failWrites.Store(fail)
}

func (f *FailingDataStore) SaveDocument(documentId string, document db.DocumentDB) error {
	if f.failWrites.Load() {
		return ErrStoreUnavailable
	}
	return f.MemoryDataStore.SaveDocument(documentId, document)
}

func (f *FailingDataStore) RemoveDocument(documentId string) error {
	if f.failWrites.Load() {
		return ErrStoreUnavailable
	}
	return f.MemoryDataStore.RemoveDocument(documentId)
}

func (f *FailingDataStore) Ping() error {
	if f.failWrites.Load() {
		return ErrStoreUnavailable
	}
	return nil
}

var _ db2.DataStore = (*FailingDataStore)(nil)
