package editor

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/neonleaf/neonleaf-go/lib/db"
	"github.com/neonleaf/neonleaf-go/lib/document"
	"github.com/neonleaf/neonleaf-go/lib/exception"
	"github.com/neonleaf/neonleaf-go/lib/hooks"
	"github.com/neonleaf/neonleaf-go/lib/hooks/events"
	modeldb "github.com/neonleaf/neonleaf-go/lib/models/db"
	"github.com/neonleaf/neonleaf-go/lib/models/version"
	"go.uber.org/zap"
)

// DocumentInfo is the listing view of a loaded document.
type DocumentInfo struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ExportResult struct {
	FileName string
	Content  string
}

type SidebarSummary struct {
	Versions []string          `json:"versions"`
	Records  []version.Summary `json:"records"`
}

// Manager owns the loaded documents. Every mutation is applied to a copy,
// persisted, and only then swapped in, so a failed operation leaves the
// previous document in place.
type Manager struct {
	mu       sync.Mutex
	store    db.DataStore
	cache    *documentCache
	hook     *hooks.Hook
	logger   *zap.SugaredLogger
	pageSize int
}

func NewManager(store db.DataStore, hook *hooks.Hook, logger *zap.SugaredLogger, pageSize int) *Manager {
	if pageSize <= 0 {
		pageSize = document.DefaultPageSize
	}
	if hook == nil {
		hook = hooks.NewHook()
	}
	return &Manager{
		store:    store,
		cache:    newDocumentCache(),
		hook:     hook,
		logger:   logger,
		pageSize: pageSize,
	}
}

func (m *Manager) PageSize() int {
	return m.pageSize
}

// LoadDocument parses and validates rawText and stores it as a new document.
func (m *Manager) LoadDocument(name string, rawText string) (*DocumentInfo, error) {
	records, err := document.Parse(rawText)
	if err != nil {
		m.logger.Warnf("Rejected upload %q: %v", name, err)
		return nil, err
	}

	documentId := uuid.NewString()
	doc := version.Document{Name: name, Records: records}

	m.mu.Lock()
	if err := m.persist(documentId, doc); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	m.cache.set(documentId, doc)
	m.mu.Unlock()

	m.logger.Infof("Loaded document %s (%s) with %d records", documentId, name, len(records))
	m.fire(documentId, events.OpLoad, "", len(records), len(records))

	return &DocumentInfo{Id: documentId, Name: name, Count: len(records)}, nil
}

func (m *Manager) GetDocument(documentId string) (version.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, err := m.current(documentId)
	if err != nil {
		return version.Document{}, err
	}
	return doc.Clone(), nil
}

func (m *Manager) ListDocuments() ([]DocumentInfo, error) {
	metas, err := m.store.ListDocuments()
	if err != nil {
		return nil, exception.NewDatabaseError("failed to list documents", err)
	}

	infos := make([]DocumentInfo, 0, len(*metas))
	for _, meta := range *metas {
		infos = append(infos, DocumentInfo{Id: meta.ID, Name: meta.Name, Count: meta.RecordCount})
	}
	return infos, nil
}

func (m *Manager) ListFiltered(documentId string, spec version.FilterSpec) ([]version.VersionRecord, error) {
	doc, err := m.GetDocument(documentId)
	if err != nil {
		return nil, err
	}
	return document.Filter(doc.Records, spec), nil
}

// ListPage returns the requested page of the filtered view, clamped into range.
func (m *Manager) ListPage(documentId string, spec version.FilterSpec, page int) (version.Page, error) {
	doc, err := m.GetDocument(documentId)
	if err != nil {
		return version.Page{}, err
	}
	return document.BuildPage(doc.Records, spec, m.pageSize, page), nil
}

func (m *Manager) Summaries(documentId string) (SidebarSummary, error) {
	doc, err := m.GetDocument(documentId)
	if err != nil {
		return SidebarSummary{}, err
	}
	return SidebarSummary{
		Versions: document.UniqueVersions(doc.Records),
		Records:  document.Summarize(doc.Records),
	}, nil
}

func (m *Manager) AddRecord(documentId string, record version.VersionRecord, atStart bool) (version.Document, error) {
	return m.mutate(documentId, events.OpAdd, record.Version, func(doc version.Document) (version.Document, int, error) {
		next, err := document.Add(doc, record, atStart)
		if err != nil {
			return doc, 0, err
		}
		return next, 1, nil
	})
}

// UpdateRecord replaces every record sharing record.Version and returns how
// many were replaced.
func (m *Manager) UpdateRecord(documentId string, record version.VersionRecord) (int, error) {
	var replaced int
	_, err := m.mutate(documentId, events.OpUpdate, record.Version, func(doc version.Document) (version.Document, int, error) {
		var next version.Document
		next, replaced = document.Update(doc, record)
		return next, replaced, nil
	})
	return replaced, err
}

func (m *Manager) DeleteRecord(documentId string, key string) (int, error) {
	var removed int
	_, err := m.mutate(documentId, events.OpDelete, key, func(doc version.Document) (version.Document, int, error) {
		var next version.Document
		next, removed = document.Delete(doc, key)
		return next, removed, nil
	})
	return removed, err
}

func (m *Manager) AddContentItem(documentId string, key string) (version.VersionRecord, error) {
	return m.editContent(documentId, key, events.OpContentAdd, document.AddContentItem)
}

func (m *Manager) RemoveContentItem(documentId string, key string, index int) (version.VersionRecord, error) {
	return m.editContent(documentId, key, events.OpContentRemove, func(content []string) []string {
		return document.RemoveContentItem(content, index)
	})
}

func (m *Manager) SetContentItem(documentId string, key string, index int, text string) (version.VersionRecord, error) {
	return m.editContent(documentId, key, events.OpContentSet, func(content []string) []string {
		return document.SetContentItem(content, index, text)
	})
}

// editContent edits the content of the first record with the given version
// and writes it back through Update, so duplicates end up identical.
func (m *Manager) editContent(documentId, key string, op events.Op, edit func([]string) []string) (version.VersionRecord, error) {
	var edited version.VersionRecord
	_, err := m.mutate(documentId, op, key, func(doc version.Document) (version.Document, int, error) {
		record, ok := document.Find(doc, key)
		if !ok {
			return doc, 0, exception.NewRecordNotFoundError(documentId, key)
		}
		record.Content = edit(record.Content)
		edited = record
		next, replaced := document.Update(doc, record)
		return next, replaced, nil
	})
	if err != nil {
		return version.VersionRecord{}, err
	}
	return edited, nil
}

func (m *Manager) ExportDocument(documentId string) (ExportResult, error) {
	doc, err := m.GetDocument(documentId)
	if err != nil {
		return ExportResult{}, err
	}
	content, err := document.Serialize(doc)
	if err != nil {
		return ExportResult{}, err
	}

	exportCtx := &events.DocumentExportContext{
		DocumentId: documentId,
		FileName:   document.ExportFileName(doc.Name),
		Size:       len(content),
	}
	m.hook.ExecuteDocumentExportHooks(exportCtx)

	return ExportResult{FileName: exportCtx.FileName, Content: content}, nil
}

// ResetDocument discards the document, the "new file" action.
func (m *Manager) ResetDocument(documentId string) error {
	m.mu.Lock()
	if _, err := m.current(documentId); err != nil {
		m.mu.Unlock()
		return err
	}
	if err := m.store.RemoveDocument(documentId); err != nil {
		m.mu.Unlock()
		return exception.NewDatabaseError("failed to remove document", err)
	}
	m.cache.remove(documentId)
	m.mu.Unlock()

	m.logger.Infof("Reset document %s", documentId)
	m.fire(documentId, events.OpReset, "", 0, 0)
	return nil
}

// LoadedCount is the number of documents currently held in memory.
func (m *Manager) LoadedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache.len()
}

func (m *Manager) mutate(documentId string, op events.Op, key string, apply func(version.Document) (version.Document, int, error)) (version.Document, error) {
	m.mu.Lock()
	doc, err := m.current(documentId)
	if err != nil {
		m.mu.Unlock()
		return version.Document{}, err
	}

	next, affected, err := apply(doc)
	if err != nil {
		m.mu.Unlock()
		m.logger.Warnf("%s on document %s rejected: %v", op, documentId, err)
		return doc.Clone(), err
	}
	if affected == 0 {
		m.mu.Unlock()
		return doc.Clone(), nil
	}
	if err := m.persist(documentId, next); err != nil {
		m.mu.Unlock()
		return doc.Clone(), err
	}
	m.cache.set(documentId, next)
	m.mu.Unlock()

	m.fire(documentId, op, key, affected, len(next.Records))
	return next.Clone(), nil
}

// current returns the cached document, loading it from the store on a miss.
// Callers hold m.mu.
func (m *Manager) current(documentId string) (version.Document, error) {
	if doc, ok := m.cache.get(documentId); ok {
		return doc, nil
	}

	stored, err := m.store.GetDocument(documentId)
	if err != nil {
		if err.Error() == db.DocumentDoesNotExistError {
			return version.Document{}, exception.NewDocumentNotFoundError(documentId)
		}
		return version.Document{}, exception.NewDatabaseError("failed to load document", err)
	}
	doc := version.Document{Name: stored.Name, Records: stored.Records}
	m.cache.set(documentId, doc)
	return doc, nil
}

func (m *Manager) persist(documentId string, doc version.Document) error {
	err := m.store.SaveDocument(documentId, modeldb.DocumentDB{
		ID:      documentId,
		Name:    doc.Name,
		Records: doc.Records,
	})
	if err != nil {
		m.logger.Errorf("Failed to persist document %s: %v", documentId, err)
		return exception.NewDatabaseError("failed to save document", err)
	}
	return nil
}

func (m *Manager) fire(documentId string, op events.Op, key string, affected int, records int) {
	m.hook.ExecuteDocumentChangedHooks(&events.DocumentChangedContext{
		DocumentId: documentId,
		Op:         op,
		Version:    key,
		Affected:   affected,
		Records:    records,
	})
}

// IsNotFound reports whether err means the document or record is missing.
func IsNotFound(err error) bool {
	var documentNotFound *exception.DocumentNotFoundError
	var recordNotFound *exception.RecordNotFoundError
	return errors.As(err, &documentNotFound) || errors.As(err, &recordNotFound)
}
