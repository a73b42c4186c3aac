package document

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	errors2 "github.com/neonleaf/neonleaf-go/lib/api/errors"
	"github.com/neonleaf/neonleaf-go/lib/editor"
	"github.com/neonleaf/neonleaf-go/lib/settings"
	"go.uber.org/zap"
)

const defaultUploadName = "versions.json"

// UploadHandler accepts a version file as multipart field "file" or as a raw
// JSON body named by ?name=.
type UploadHandler struct {
	manager  *editor.Manager
	settings *settings.Settings
	logger   *zap.SugaredLogger
}

func NewUploadHandler(manager *editor.Manager, settings *settings.Settings, logger *zap.SugaredLogger) *UploadHandler {
	return &UploadHandler{
		manager:  manager,
		settings: settings,
		logger:   logger,
	}
}

// Upload godoc
// @Summary Load a version file
// @Tags Documents
// @Accept json
// @Accept mpfd
// @Produce json
// @Param file formData file false "Version JSON file"
// @Param name query string false "File name for raw uploads"
// @Success 201 {object} editor.DocumentInfo
// @Failure 400 {object} errors.Error
// @Failure 413 {object} errors.Error
// @Failure 415 {object} errors.Error
// @Failure 422 {object} errors.Error
// @Router /api/documents [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	name, content, apiErr := h.readUpload(c)
	if apiErr != nil {
		return errors2.Send(c, *apiErr)
	}

	info, err := h.manager.LoadDocument(name, content)
	if err != nil {
		return errors2.SendException(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

func (h *UploadHandler) readUpload(c *fiber.Ctx) (string, string, *errors2.Error) {
	if fileHeader, err := c.FormFile("file"); err == nil {
		name := utils.CopyString(fileHeader.Filename)
		if !isJSONUpload(name, fileHeader.Header.Get(fiber.HeaderContentType)) {
			h.logger.Warnf("Upload rejected: %s is not a JSON file", name)
			return "", "", &errors2.UnsupportedFileError
		}
		if h.tooLarge(fileHeader.Size) {
			h.logger.Warnf("Upload rejected: %s too large (%d bytes)", name, fileHeader.Size)
			return "", "", &errors2.FileTooLargeError
		}
		file, err := fileHeader.Open()
		if err != nil {
			h.logger.Warnf("Upload failed: could not open file: %v", err)
			return "", "", &errors2.InvalidRequestError
		}
		defer file.Close()
		content, err := io.ReadAll(file)
		if err != nil {
			h.logger.Warnf("Upload failed: could not read file: %v", err)
			return "", "", &errors2.InvalidRequestError
		}
		return name, string(content), nil
	}

	body := c.Body()
	if len(body) == 0 {
		return "", "", &errors2.Error{Message: "No file uploaded", Error: 400}
	}
	name := utils.CopyString(c.Query("name", defaultUploadName))
	if !isJSONUpload(name, string(c.Request().Header.ContentType())) {
		h.logger.Warnf("Upload rejected: %s is not a JSON file", name)
		return "", "", &errors2.UnsupportedFileError
	}
	if h.tooLarge(int64(len(body))) {
		return "", "", &errors2.FileTooLargeError
	}
	return name, string(body), nil
}

func (h *UploadHandler) tooLarge(size int64) bool {
	return h.settings.ImportMaxFileSize > 0 && size > h.settings.ImportMaxFileSize
}

// isJSONUpload accepts a .json name or an application/json content type.
func isJSONUpload(name string, contentType string) bool {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return true
	}
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.EqualFold(strings.TrimSpace(mediaType), fiber.MIMEApplicationJSON)
}
