package document

import (
	"github.com/neonleaf/neonleaf-go/lib"
)

// Init registers the document routes on the gated /api/documents group.
func Init(store *lib.InitStore) {
	uploadHandler := NewUploadHandler(store.Manager, store.RetrievedSettings, store.Logger)

	store.PrivateAPI.Post("/", uploadHandler.Upload)
	store.PrivateAPI.Get("/", ListDocuments(store.Manager))
	store.PrivateAPI.Get("/:id", GetDocument(store.Manager))
	store.PrivateAPI.Delete("/:id", ResetDocument(store.Manager, store.Logger))
}
