package middleware

import (
	"travel-booking-webapp/config"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

func Authorize() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.C.JWT.Secret),
		ErrorHandler: jwtError,
		ContextKey:   "identity",
	})
}

// RequireRole guards handlers that belong to a single account domain.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserRole(c) != role {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"success": false, "message": "lack of permissions", "data": nil})
		}
		return c.Next()
	}
}

// UserLogin extracts the authenticated login from the verified token.
func UserLogin(c *fiber.Ctx) string {
	token, ok := c.Locals("identity").(*jwt.Token)
	if !ok {
		return ""
	}
	claims := token.Claims.(jwt.MapClaims)
	login, _ := claims["username"].(string)
	return login
}

func UserRole(c *fiber.Ctx) string {
	token, ok := c.Locals("identity").(*jwt.Token)
	if !ok {
		return ""
	}
	claims := token.Claims.(jwt.MapClaims)
	role, _ := claims["role"].(string)
	return role
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"success": false, "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"success": false, "message": "Invalid or expired JWT", "data": nil})
}
