package document

import (
	"github.com/gofiber/fiber/v2"
	errors2 "github.com/neonleaf/neonleaf-go/lib/api/errors"
	"github.com/neonleaf/neonleaf-go/lib/api/utils"
	"github.com/neonleaf/neonleaf-go/lib/editor"
	"github.com/neonleaf/neonleaf-go/lib/models/version"
	"go.uber.org/zap"
)

type DocumentResponse struct {
	Id      string                  `json:"id"`
	Name    string                  `json:"name"`
	Records []version.VersionRecord `json:"records"`
}

// ListDocuments godoc
// @Summary List loaded documents
// @Tags Documents
// @Produce json
// @Success 200 {array} editor.DocumentInfo
// @Router /api/documents [get]
func ListDocuments(manager *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		infos, err := manager.ListDocuments()
		if err != nil {
			return errors2.SendException(c, err)
		}
		return c.JSON(infos)
	}
}

// GetDocument godoc
// @Summary Get all records of a document
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} DocumentResponse
// @Failure 404 {object} errors.Error
// @Router /api/documents/{id} [get]
func GetDocument(manager *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		documentId := utils.DocumentId(c)
		doc, err := manager.GetDocument(documentId)
		if err != nil {
			return errors2.SendException(c, err)
		}
		return c.JSON(DocumentResponse{
			Id:      documentId,
			Name:    doc.Name,
			Records: version.CloneRecords(doc.Records),
		})
	}
}

// ResetDocument godoc
// @Summary Discard a document ("new file")
// @Tags Documents
// @Param id path string true "Document ID"
// @Success 204
// @Failure 404 {object} errors.Error
// @Router /api/documents/{id} [delete]
func ResetDocument(manager *editor.Manager, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		documentId := utils.DocumentId(c)
		if err := manager.ResetDocument(documentId); err != nil {
			if !editor.IsNotFound(err) {
				logger.Errorf("Failed to reset document %s: %v", documentId, err)
			}
			return errors2.SendException(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
