package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/neonleaf/neonleaf-go/lib/models/db"
)

// sqlStore holds the queries shared by the SQLite and Postgres stores. Both
// dialects accept the same ON CONFLICT upsert, only placeholders differ.
type sqlStore struct {
	builder sq.StatementBuilderType
	sqlDB   *sql.DB
}

type Reader interface {
	Scan(dest ...any) error
}

// ============== DOCUMENT METHODS ==============

func (d sqlStore) SaveDocument(documentId string, document db.DocumentDB) error {
	records, err := json.Marshal(document.Records)
	if err != nil {
		return fmt.Errorf("error marshaling records: %w", err)
	}
	if document.Records == nil {
		records = []byte("[]")
	}

	resultedSQL, args, err := d.builder.
		Insert("documents").
		Columns("id", "name", "records", "record_count").
		Values(documentId, document.Name, string(records), len(document.Records)).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			records = excluded.records,
			record_count = excluded.record_count,
			updated_at = CURRENT_TIMESTAMP`).
		ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d sqlStore) GetDocument(documentId string) (*db.DocumentDB, error) {
	resultedSQL, args, err := d.builder.
		Select("id", "name", "records", "created_at", "updated_at").
		From("documents").
		Where(sq.Eq{"id": documentId}).
		ToSql()
	if err != nil {
		return nil, err
	}

	document, err := readToDocumentDB(d.sqlDB.QueryRow(resultedSQL, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New(DocumentDoesNotExistError)
		}
		return nil, err
	}
	return document, nil
}

func readToDocumentDB(reader Reader) (*db.DocumentDB, error) {
	var document db.DocumentDB
	var records string
	var createdAt, updatedAt sql.NullTime

	if err := reader.Scan(&document.ID, &document.Name, &records, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(records), &document.Records); err != nil {
		return nil, fmt.Errorf("error unmarshaling records: %w", err)
	}
	if createdAt.Valid {
		document.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		document.UpdatedAt = &updatedAt.Time
	}
	return &document, nil
}

func (d sqlStore) DoesDocumentExist(documentId string) (*bool, error) {
	resultedSQL, args, err := d.builder.
		Select("1").
		From("documents").
		Where(sq.Eq{"id": documentId}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var exists int
	err = d.sqlDB.QueryRow(resultedSQL, args...).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		falseVal := false
		return &falseVal, nil
	}
	if err != nil {
		return nil, err
	}

	trueVal := true
	return &trueVal, nil
}

func (d sqlStore) RemoveDocument(documentId string) error {
	resultedSQL, args, err := d.builder.
		Delete("documents").
		Where(sq.Eq{"id": documentId}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := d.sqlDB.Exec(resultedSQL, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New(DocumentDoesNotExistError)
	}
	return nil
}

func (d sqlStore) GetDocumentIds() (*[]string, error) {
	resultedSQL, args, err := d.builder.
		Select("id").
		From("documents").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	query, err := d.sqlDB.Query(resultedSQL, args...)
	if err != nil {
		return nil, err
	}
	defer query.Close()

	documentIds := make([]string, 0)
	for query.Next() {
		var documentId string
		if err := query.Scan(&documentId); err != nil {
			return nil, err
		}
		documentIds = append(documentIds, documentId)
	}
	return &documentIds, query.Err()
}

func (d sqlStore) ListDocuments() (*[]db.DocumentMeta, error) {
	resultedSQL, args, err := d.builder.
		Select("id", "name", "record_count", "created_at").
		From("documents").
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	query, err := d.sqlDB.Query(resultedSQL, args...)
	if err != nil {
		return nil, err
	}
	defer query.Close()

	metas := make([]db.DocumentMeta, 0)
	for query.Next() {
		var meta db.DocumentMeta
		var createdAt sql.NullTime
		if err := query.Scan(&meta.ID, &meta.Name, &meta.RecordCount, &createdAt); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			meta.CreatedAt = createdAt.Time
		}
		metas = append(metas, meta)
	}
	return &metas, query.Err()
}

// ============== FIBER SESSION METHODS ==============

func (d sqlStore) GetFiberSession(key string) ([]byte, error) {
	resultedSQL, args, err := d.builder.
		Select("session_data").
		From("fiber_sessions").
		Where(sq.Eq{"session_key": key}).
		Where(sq.Or{sq.Eq{"expires_at": 0}, sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": time.Now().Unix()}}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var data []byte
	err = d.sqlDB.QueryRow(resultedSQL, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (d sqlStore) SetFiberSession(key string, value []byte, expiresAt int64) error {
	resultedSQL, args, err := d.builder.
		Insert("fiber_sessions").
		Columns("session_key", "session_data", "expires_at").
		Values(key, value, expiresAt).
		Suffix(`ON CONFLICT(session_key) DO UPDATE SET
			session_data = excluded.session_data,
			expires_at = excluded.expires_at,
			updated_at = CURRENT_TIMESTAMP`).
		ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d sqlStore) DeleteFiberSession(key string) error {
	resultedSQL, args, err := d.builder.
		Delete("fiber_sessions").
		Where(sq.Eq{"session_key": key}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d sqlStore) ResetFiberSessions() error {
	resultedSQL, args, err := d.builder.Delete("fiber_sessions").ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d sqlStore) CleanupExpiredFiberSessions() error {
	resultedSQL, args, err := d.builder.
		Delete("fiber_sessions").
		Where(sq.Gt{"expires_at": 0}).
		Where(sq.LtOrEq{"expires_at": time.Now().Unix()}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

// ============== LIFECYCLE ==============

func (d sqlStore) Ping() error {
	return d.sqlDB.Ping()
}

func (d sqlStore) Close() error {
	return d.sqlDB.Close()
}
