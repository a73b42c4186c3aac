package hooks

import (
	"sync"

	"github.com/google/uuid"
	"github.com/neonleaf/neonleaf-go/lib/hooks/events"
)

const (
	documentChangedKey = "documentChanged"
	documentExportKey  = "documentExport"
)

type Hook struct {
	mu    sync.RWMutex
	hooks map[string]map[string]func(ctx any)
}

func NewHook() *Hook {
	return &Hook{
		hooks: make(map[string]map[string]func(ctx any)),
	}
}

func (h *Hook) EnqueueDocumentChangedHook(cb func(ctx *events.DocumentChangedContext)) string {
	return h.EnqueueHook(documentChangedKey, func(ctx any) {
		if changed, ok := ctx.(*events.DocumentChangedContext); ok {
			cb(changed)
		}
	})
}

func (h *Hook) ExecuteDocumentChangedHooks(ctx *events.DocumentChangedContext) {
	h.ExecuteHooks(documentChangedKey, ctx)
}

func (h *Hook) EnqueueDocumentExportHook(cb func(ctx *events.DocumentExportContext)) string {
	return h.EnqueueHook(documentExportKey, func(ctx any) {
		if exportCtx, ok := ctx.(*events.DocumentExportContext); ok {
			cb(exportCtx)
		}
	})
}

func (h *Hook) ExecuteDocumentExportHooks(ctx *events.DocumentExportContext) {
	h.ExecuteHooks(documentExportKey, ctx)
}

func (h *Hook) EnqueueHook(key string, ctx func(ctx any)) string {
	id := uuid.NewString()

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.hooks[key]; !ok {
		h.hooks[key] = make(map[string]func(ctx any))
	}
	h.hooks[key][id] = ctx

	return id
}

func (h *Hook) DequeueHook(key, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.hooks[key], id)
}

// DequeueDocumentChangedHook removes a listener registered with
// EnqueueDocumentChangedHook.
func (h *Hook) DequeueDocumentChangedHook(id string) {
	h.DequeueHook(documentChangedKey, id)
}

func (h *Hook) ExecuteHooks(key string, ctx any) {
	h.mu.RLock()
	registered, ok := h.hooks[key]
	if !ok {
		h.mu.RUnlock()
		return
	}
	callbacks := make([]func(ctx any), 0, len(registered))
	for _, v := range registered {
		callbacks = append(callbacks, v)
	}
	h.mu.RUnlock()

	for _, cb := range callbacks {
		cb(ctx)
	}
}
