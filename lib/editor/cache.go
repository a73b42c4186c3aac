package editor

import "github.com/neonleaf/neonleaf-go/lib/models/version"

// documentCache holds the loaded documents by id. It is guarded by the
// Manager's mutex.
type documentCache struct {
	documents map[string]version.Document
}

func newDocumentCache() *documentCache {
	return &documentCache{documents: make(map[string]version.Document)}
}

func (c *documentCache) get(documentId string) (version.Document, bool) {
	doc, ok := c.documents[documentId]
	return doc, ok
}

func (c *documentCache) set(documentId string, doc version.Document) {
	c.documents[documentId] = doc
}

func (c *documentCache) remove(documentId string) {
	delete(c.documents, documentId)
}

func (c *documentCache) len() int {
	return len(c.documents)
}
