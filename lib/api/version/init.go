package version

import (
	"github.com/neonleaf/neonleaf-go/lib"
)

func Init(store *lib.InitStore) {
	api := store.PrivateAPI

	api.Get("/:id/versions", ListVersions(store.Manager))
	api.Get("/:id/versions/summary", Summary(store.Manager))
	api.Post("/:id/versions", AddVersion(store.Manager, store.Validator))
	api.Put("/:id/versions/:version", UpdateVersion(store.Manager))
	api.Delete("/:id/versions/:version", DeleteVersion(store.Manager))

	api.Post("/:id/versions/:version/content", AddContentItem(store.Manager))
	api.Put("/:id/versions/:version/content/:index", SetContentItem(store.Manager))
	api.Delete("/:id/versions/:version/content/:index", RemoveContentItem(store.Manager))
}
