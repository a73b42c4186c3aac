package utils

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Route params point into the request buffer; everything returned here is
// copied so it can outlive the handler.

func DocumentId(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("id"))
}

// VersionKey returns the unescaped :version param. Version strings may contain
// spaces or slashes and arrive percent-encoded.
func VersionKey(c *fiber.Ctx) (string, error) {
	key, err := url.PathUnescape(c.Params("version"))
	if err != nil {
		return "", err
	}
	return utils.CopyString(key), nil
}

func ContentIndex(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("index"))
}
