package db

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/neonleaf/neonleaf-go/lib/models/db"
	"github.com/neonleaf/neonleaf-go/lib/models/version"
)

type fiberSessionEntry struct {
	data      []byte
	expiresAt int64
}

type MemoryDataStore struct {
	mu            sync.RWMutex
	documentStore map[string]db.DocumentDB
	sessionStore  map[string]fiberSessionEntry
}

func NewMemoryDataStore() *MemoryDataStore {
	return &MemoryDataStore{
		documentStore: make(map[string]db.DocumentDB),
		sessionStore:  make(map[string]fiberSessionEntry),
	}
}

// ============== DOCUMENT METHODS ==============

func (m *MemoryDataStore) SaveDocument(documentId string, document db.DocumentDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	document.ID = documentId
	document.Records = version.CloneRecords(document.Records)
	if existing, ok := m.documentStore[documentId]; ok {
		now := time.Now()
		document.CreatedAt = existing.CreatedAt
		document.UpdatedAt = &now
	} else if document.CreatedAt.IsZero() {
		document.CreatedAt = time.Now()
	}
	m.documentStore[documentId] = document
	return nil
}

func (m *MemoryDataStore) GetDocument(documentId string) (*db.DocumentDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	document, ok := m.documentStore[documentId]
	if !ok {
		return nil, errors.New(DocumentDoesNotExistError)
	}
	document.Records = version.CloneRecords(document.Records)
	return &document, nil
}

func (m *MemoryDataStore) DoesDocumentExist(documentId string) (*bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.documentStore[documentId]
	return &ok, nil
}

func (m *MemoryDataStore) RemoveDocument(documentId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.documentStore[documentId]; !ok {
		return errors.New(DocumentDoesNotExistError)
	}
	delete(m.documentStore, documentId)
	return nil
}

func (m *MemoryDataStore) GetDocumentIds() (*[]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	documentIds := make([]string, 0, len(m.documentStore))
	for k := range m.documentStore {
		documentIds = append(documentIds, k)
	}
	sort.Strings(documentIds)
	return &documentIds, nil
}

func (m *MemoryDataStore) ListDocuments() (*[]db.DocumentMeta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	metas := make([]db.DocumentMeta, 0, len(m.documentStore))
	for _, document := range m.documentStore {
		metas = append(metas, db.DocumentMeta{
			ID:          document.ID,
			Name:        document.Name,
			RecordCount: len(document.Records),
			CreatedAt:   document.CreatedAt,
		})
	}
	sort.Slice(metas, func(i, j int) bool {
		if metas[i].CreatedAt.Equal(metas[j].CreatedAt) {
			return metas[i].ID < metas[j].ID
		}
		return metas[i].CreatedAt.Before(metas[j].CreatedAt)
	})
	return &metas, nil
}

// ============== FIBER SESSION METHODS ==============

func (m *MemoryDataStore) GetFiberSession(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.sessionStore[key]
	if !ok {
		return nil, nil
	}
	if entry.expiresAt > 0 && entry.expiresAt <= time.Now().Unix() {
		return nil, nil
	}
	return entry.data, nil
}

func (m *MemoryDataStore) SetFiberSession(key string, value []byte, expiresAt int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data := make([]byte, len(value))
	copy(data, value)
	m.sessionStore[key] = fiberSessionEntry{data: data, expiresAt: expiresAt}
	return nil
}

func (m *MemoryDataStore) DeleteFiberSession(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessionStore, key)
	return nil
}

func (m *MemoryDataStore) ResetFiberSessions() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessionStore = make(map[string]fiberSessionEntry)
	return nil
}

func (m *MemoryDataStore) CleanupExpiredFiberSessions() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().Unix()
	for key, entry := range m.sessionStore {
		if entry.expiresAt > 0 && entry.expiresAt <= now {
			delete(m.sessionStore, key)
		}
	}
	return nil
}

// ============== LIFECYCLE ==============

func (m *MemoryDataStore) Ping() error {
	return nil
}

func (m *MemoryDataStore) Close() error {
	return nil
}

var _ DataStore = (*MemoryDataStore)(nil)
