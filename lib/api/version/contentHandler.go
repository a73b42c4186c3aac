package version

import (
	"github.com/gofiber/fiber/v2"
	errors2 "github.com/neonleaf/neonleaf-go/lib/api/errors"
	"github.com/neonleaf/neonleaf-go/lib/api/utils"
	"github.com/neonleaf/neonleaf-go/lib/editor"
	"github.com/neonleaf/neonleaf-go/lib/models/version"
)

// Content routes edit the first record with the given version and write it
// back to every duplicate. They respond with the edited record.

func AddContentItem(manager *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := utils.VersionKey(c)
		if err != nil {
			return errors2.Send(c, errors2.NewInvalidParamError("version"))
		}
		record, err := manager.AddContentItem(utils.DocumentId(c), key)
		return sendRecord(c, record, err)
	}
}

func SetContentItem(manager *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, index, apiErr := contentParams(c)
		if apiErr != nil {
			return errors2.Send(c, *apiErr)
		}
		var request ContentItemRequest
		if err := c.BodyParser(&request); err != nil {
			return errors2.Send(c, errors2.InvalidRequestError)
		}
		record, err := manager.SetContentItem(utils.DocumentId(c), key, index, request.Text)
		return sendRecord(c, record, err)
	}
}

func RemoveContentItem(manager *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, index, apiErr := contentParams(c)
		if apiErr != nil {
			return errors2.Send(c, *apiErr)
		}
		record, err := manager.RemoveContentItem(utils.DocumentId(c), key, index)
		return sendRecord(c, record, err)
	}
}

func contentParams(c *fiber.Ctx) (string, int, *errors2.Error) {
	key, err := utils.VersionKey(c)
	if err != nil {
		apiErr := errors2.NewInvalidParamError("version")
		return "", 0, &apiErr
	}
	index, err := utils.ContentIndex(c)
	if err != nil {
		apiErr := errors2.NewInvalidParamError("index")
		return "", 0, &apiErr
	}
	return key, index, nil
}

func sendRecord(c *fiber.Ctx, record version.VersionRecord, err error) error {
	if err != nil {
		return errors2.SendException(c, err)
	}
	return c.JSON(record)
}
