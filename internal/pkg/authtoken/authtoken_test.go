package authtoken

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func extractFrom(t *testing.T, header string) string {
	t.Helper()

	app := fiber.New()
	var token string
	app.Get("/", func(c *fiber.Ctx) error {
		token = Extract(c)
		return nil
	})

	req := httptest.NewRequest("GET", "/", nil)
	if header != "" {
		req.Header.Set(fiber.HeaderAuthorization, header)
	}
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}
	return token
}

func TestExtract(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tok123", extractFrom(t, "Account tok123"))
	assert.Equal(t, "tok123", extractFrom(t, "Account   tok123"))
	assert.Empty(t, extractFrom(t, ""))
	assert.Empty(t, extractFrom(t, "Bearer tok123"))
	assert.Empty(t, extractFrom(t, "account tok123"))
}
