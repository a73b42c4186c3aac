package ws

import (
	"encoding/json"

	"github.com/neonleaf/neonleaf-go/lib/hooks"
	"github.com/neonleaf/neonleaf-go/lib/hooks/events"
	"go.uber.org/zap"
)

const DocumentChangedType = "documentChanged"

// ChangeMessage is what watchers of a document receive after each mutation.
type ChangeMessage struct {
	Type       string    `json:"type"`
	DocumentId string    `json:"documentId"`
	Op         events.Op `json:"op"`
	Version    string    `json:"version,omitempty"`
	Affected   int       `json:"affected"`
	Records    int       `json:"records"`
}

// SubscribeDocumentFeed forwards documentChanged hooks to the document's room.
// The returned id can be passed to DequeueDocumentChangedHook.
func SubscribeDocumentFeed(hook *hooks.Hook, hub *Hub, logger *zap.SugaredLogger) string {
	return hook.EnqueueDocumentChangedHook(func(ctx *events.DocumentChangedContext) {
		payload, err := json.Marshal(ChangeMessage{
			Type:       DocumentChangedType,
			DocumentId: ctx.DocumentId,
			Op:         ctx.Op,
			Version:    ctx.Version,
			Affected:   ctx.Affected,
			Records:    ctx.Records,
		})
		if err != nil {
			logger.Errorf("error marshalling change message: %v", err)
			return
		}
		hub.BroadcastToRoom(ctx.DocumentId, payload)
	})
}
