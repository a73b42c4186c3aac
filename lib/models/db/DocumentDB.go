package db

import (
	"time"

	"github.com/neonleaf/neonleaf-go/lib/models/version"
)

// DocumentDB is the persisted form of a loaded version document.
type DocumentDB struct {
	ID        string
	Name      string
	Records   []version.VersionRecord
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// DocumentMeta is a listing row without the records payload.
type DocumentMeta struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	RecordCount int       `json:"recordCount"`
	CreatedAt   time.Time `json:"createdAt"`
}
