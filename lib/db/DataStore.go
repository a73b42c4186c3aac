package db

import "github.com/neonleaf/neonleaf-go/lib/models/db"

type DocumentMethods interface {
	// SaveDocument inserts the document or replaces the stored one with the same id.
	SaveDocument(documentId string, document db.DocumentDB) error
	GetDocument(documentId string) (*db.DocumentDB, error)
	DoesDocumentExist(documentId string) (*bool, error)
	RemoveDocument(documentId string) error
	GetDocumentIds() (*[]string, error)
	ListDocuments() (*[]db.DocumentMeta, error)
}

type FiberSessionMethods interface {
	GetFiberSession(key string) ([]byte, error)
	SetFiberSession(key string, value []byte, expiresAt int64) error
	DeleteFiberSession(key string) error
	ResetFiberSessions() error
	CleanupExpiredFiberSessions() error
}

type DataStore interface {
	DocumentMethods
	FiberSessionMethods
	Ping() error
	Close() error
}
