package io

import (
	"github.com/neonleaf/neonleaf-go/lib"
)

func Init(store *lib.InitStore) {
	store.PrivateAPI.Get("/:id/export", GetExport(store.Manager, store.Logger))
	store.PrivateAPI.Get("/:id/export/text", GetExportText(store.Manager))
}
