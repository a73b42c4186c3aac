package io

import (
	"github.com/gofiber/fiber/v2"
	"github.com/neonleaf/neonleaf-go/lib/api/constants"
	errors2 "github.com/neonleaf/neonleaf-go/lib/api/errors"
	"github.com/neonleaf/neonleaf-go/lib/api/utils"
	"github.com/neonleaf/neonleaf-go/lib/editor"
	"go.uber.org/zap"
)

// GetExport godoc
// @Summary Download the edited document
// @Description Returns the records as indented JSON with an attachment name of <base>_edited.json
// @Tags Export
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {file} binary "Exported file"
// @Failure 404 {object} errors.Error
// @Router /api/documents/{id}/export [get]
func GetExport(manager *editor.Manager, logger *zap.SugaredLogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		documentId := utils.DocumentId(ctx)
		result, err := manager.ExportDocument(documentId)
		if err != nil {
			return errors2.SendException(ctx, err)
		}

		logger.Infof("Exporting document %s as %s", documentId, result.FileName)
		ctx.Attachment(result.FileName)
		ctx.Set(fiber.HeaderContentType, constants.ContentTypeJSON)
		return ctx.SendString(result.Content)
	}
}

// GetExportText returns the same JSON as plain text for copying.
func GetExportText(manager *editor.Manager) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		result, err := manager.ExportDocument(utils.DocumentId(ctx))
		if err != nil {
			return errors2.SendException(ctx, err)
		}
		ctx.Set(fiber.HeaderContentType, constants.ContentTypeTextPlain)
		return ctx.SendString(result.Content)
	}
}
