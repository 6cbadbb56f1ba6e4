package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"yorum-servisi/internal/domain"
)

const identityContextKey = "identity"

// Claims is the identity assertion minted by the external auth service.
// This service only validates tokens, it never issues them.
type Claims struct {
	UserID  uuid.UUID `json:"user_id"`
	IsAdmin bool      `json:"is_admin"`
	jwt.RegisteredClaims
}

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := identityFromHeader(c, secret)
		if err != nil {
			return Unauthorized(err.Error())
		}
		if identity == nil {
			return Unauthorized("Missing authorization header")
		}

		c.Locals(identityContextKey, identity)
		return c.Next()
	}
}

// OptionalAuth attaches an identity when a valid bearer token is
// present and treats everything else as an anonymous request.
func OptionalAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := identityFromHeader(c, secret)
		if err == nil && identity != nil {
			c.Locals(identityContextKey, identity)
		}
		return c.Next()
	}
}

// RequireAdmin gates admin routes; it must run after AuthRequired.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := GetIdentity(c)
		if identity == nil {
			return Unauthorized("Authentication required")
		}
		if !identity.IsAdmin {
			return Forbidden("Insufficient permissions for this operation")
		}
		return c.Next()
	}
}

// GetIdentity returns the verified identity or nil for anonymous requests.
func GetIdentity(c *fiber.Ctx) *domain.Identity {
	identity, ok := c.Locals(identityContextKey).(*domain.Identity)
	if !ok {
		return nil
	}
	return identity
}

func identityFromHeader(c *fiber.Ctx, secret string) (*domain.Identity, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization header format")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	return &domain.Identity{UserID: claims.UserID, IsAdmin: claims.IsAdmin}, nil
}
