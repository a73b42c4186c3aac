package api

import (
	"github.com/neonleaf/neonleaf-go/lib"
	"github.com/neonleaf/neonleaf-go/lib/api/document"
	"github.com/neonleaf/neonleaf-go/lib/api/feed"
	"github.com/neonleaf/neonleaf-go/lib/api/gate"
	"github.com/neonleaf/neonleaf-go/lib/api/io"
	"github.com/neonleaf/neonleaf-go/lib/api/stats"
	"github.com/neonleaf/neonleaf-go/lib/api/version"
)

// InitAPI registers every route. Document routes live on the gated
// /api/documents group.
func InitAPI(store *lib.InitStore) {
	requireSession := gate.RequireSession(store)
	store.PrivateAPI = store.C.Group("/api/documents", requireSession)

	gate.Init(store)
	document.Init(store)
	version.Init(store)
	io.Init(store)
	feed.Init(store, requireSession)
	stats.Init(store)
}
