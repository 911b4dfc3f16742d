package authtoken

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vetbase/backend/internal/constant"
)

// Extract reads the account token from the HTTP header in the form of
// Authorization: Account <token>.
func Extract(ctx *fiber.Ctx) string {
	authorization := ctx.Get(fiber.HeaderAuthorization)
	if authorization == "" || !strings.HasPrefix(authorization, constant.AccountAuthorizationRealm) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authorization, constant.AccountAuthorizationRealm))
}
