package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"cvapi/internal/auth"
)

// UserIDLocalKey is the key used to store the authenticated user id in Fiber's context locals.
const UserIDLocalKey = "user_id"

// Auth resolves an optional bearer token into an identity.
//
// Requests without a token, or with one that fails verification, continue
// anonymously; services decide whether an identity is required.
func Auth(v auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok || v == nil {
			return c.Next()
		}

		id, err := v.Verify(token)
		if err != nil {
			return c.Next()
		}

		c.Locals(UserIDLocalKey, id.UserID)
		c.SetUserContext(auth.WithIdentity(c.UserContext(), id))
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
