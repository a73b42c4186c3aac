package version

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	errors2 "github.com/neonleaf/neonleaf-go/lib/api/errors"
	"github.com/neonleaf/neonleaf-go/lib/api/utils"
	"github.com/neonleaf/neonleaf-go/lib/editor"
	"github.com/neonleaf/neonleaf-go/lib/models/version"
)

// filterFromQuery reads the sidebar filters. Empty values are inactive.
func filterFromQuery(c *fiber.Ctx) (version.FilterSpec, error) {
	hasContent, err := version.ParseHasContent(c.Query("hasContent"))
	if err != nil {
		return version.FilterSpec{}, err
	}
	return version.FilterSpec{
		Search:          c.Query("search"),
		SelectedVersion: c.Query("version"),
		DateFrom:        c.Query("from"),
		DateTo:          c.Query("to"),
		HasContent:      hasContent,
	}, nil
}

// ListVersions godoc
// @Summary List one page of the filtered records
// @Tags Versions
// @Produce json
// @Param id path string true "Document ID"
// @Param search query string false "Case-insensitive substring of the version"
// @Param version query string false "Exact version"
// @Param from query string false "Earliest date (YYYY-MM-DD)"
// @Param to query string false "Latest date (YYYY-MM-DD)"
// @Param hasContent query string false "yes, no or all"
// @Param page query int false "1-based page, clamped into range"
// @Success 200 {object} version.Page
// @Failure 400 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /api/documents/{id}/versions [get]
func ListVersions(manager *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		spec, err := filterFromQuery(c)
		if err != nil {
			return errors2.Send(c, errors2.NewInvalidParamError("hasContent"))
		}
		page := c.QueryInt("page", 1)

		result, err := manager.ListPage(utils.DocumentId(c), spec, page)
		if err != nil {
			return errors2.SendException(c, err)
		}
		return c.JSON(result)
	}
}

func Summary(manager *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, err := manager.Summaries(utils.DocumentId(c))
		if err != nil {
			return errors2.SendException(c, err)
		}
		return c.JSON(summary)
	}
}

// AddVersion godoc
// @Summary Add a record
// @Tags Versions
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body AddRecordRequest true "Record"
// @Success 201 {object} AddRecordResponse
// @Failure 422 {object} errors.Error
// @Router /api/documents/{id}/versions [post]
func AddVersion(manager *editor.Manager, validatorEvaluator *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request AddRecordRequest
		if err := c.BodyParser(&request); err != nil {
			return errors2.Send(c, errors2.InvalidRequestError)
		}
		if err := validatorEvaluator.Struct(request); err != nil {
			return errors2.Send(c, validationError(err))
		}

		doc, err := manager.AddRecord(utils.DocumentId(c), request.Record(), request.AtStart)
		if err != nil {
			return errors2.SendException(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(AddRecordResponse{Count: doc.Len()})
	}
}

// UpdateVersion godoc
// @Summary Replace every record with the given version
// @Tags Versions
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param version path string true "Version key"
// @Param request body UpdateRecordRequest true "Record"
// @Success 200 {object} UpdateRecordResponse
// @Router /api/documents/{id}/versions/{version} [put]
func UpdateVersion(manager *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := utils.VersionKey(c)
		if err != nil {
			return errors2.Send(c, errors2.NewInvalidParamError("version"))
		}
		var request UpdateRecordRequest
		if err := c.BodyParser(&request); err != nil {
			return errors2.Send(c, errors2.InvalidRequestError)
		}

		replaced, err := manager.UpdateRecord(utils.DocumentId(c), request.Record(key))
		if err != nil {
			return errors2.SendException(c, err)
		}
		return c.JSON(UpdateRecordResponse{Replaced: replaced})
	}
}

func DeleteVersion(manager *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := utils.VersionKey(c)
		if err != nil {
			return errors2.Send(c, errors2.NewInvalidParamError("version"))
		}
		removed, err := manager.DeleteRecord(utils.DocumentId(c), key)
		if err != nil {
			return errors2.SendException(c, err)
		}
		return c.JSON(DeleteRecordResponse{Removed: removed})
	}
}

// validationError names the failing fields, e.g. "Validation failed: date".
func validationError(err error) errors2.Error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors2.ValidationError
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, strings.ToLower(fieldErr.Field()))
	}
	return errors2.Error{
		Message: errors2.ValidationError.Message + ": " + strings.Join(fields, ", "),
		Error:   errors2.ValidationError.Error,
	}
}
