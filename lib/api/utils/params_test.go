package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionKeyIsUnescaped(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/:id/versions/:version", func(c *fiber.Ctx) error {
		key, err := VersionKey(c)
		if err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		got = key
		return c.SendString(DocumentId(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/doc-1/versions/v1.0%20beta", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "v1.0 beta", got)
}

func TestContentIndexRejectsText(t *testing.T) {
	app := fiber.New()
	app.Get("/content/:index", func(c *fiber.Ctx) error {
		if _, err := ContentIndex(c); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/content/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/content/2", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
