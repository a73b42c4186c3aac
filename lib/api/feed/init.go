package feed

import (
	"net/http"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/neonleaf/neonleaf-go/lib"
	errors2 "github.com/neonleaf/neonleaf-go/lib/api/errors"
	"github.com/neonleaf/neonleaf-go/lib/api/utils"
	"github.com/neonleaf/neonleaf-go/lib/ws"
)

// ServeDocumentFeed upgrades to a websocket that receives a ChangeMessage
// after every mutation of the document.
func ServeDocumentFeed(store *lib.InitStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		documentId := utils.DocumentId(c)
		if _, err := store.Manager.GetDocument(documentId); err != nil {
			return errors2.SendException(c, err)
		}
		return adaptor.HTTPHandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ws.ServeWs(writer, request, store.Hub, documentId, store.Logger)
		})(c)
	}
}

// Init subscribes the hub to document changes and registers the websocket
// route behind the given middleware.
func Init(store *lib.InitStore, middleware ...fiber.Handler) {
	ws.SubscribeDocumentFeed(store.Hooks, store.Hub, store.Logger)

	handlers := append(middleware, ServeDocumentFeed(store))
	store.C.Get("/ws/documents/:id", handlers...)
}
