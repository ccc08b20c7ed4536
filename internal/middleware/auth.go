package middleware

import (
	"net/http"
	"strings"

	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

// TokenParser recovers the caller identity from an access token.
type TokenParser interface {
	Parse(token string) (domain.Identity, error)
}

// Auth requires a valid Bearer token and stores the caller identity in
// the request context.
func Auth(parser TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "access token required"})
			return
		}

		identity, err := parser.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireRole rejects callers whose role does not match. Must run after
// Auth.
func RequireRole(role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "access token required"})
			return
		}
		if identity.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": string(role) + " role required"})
			return
		}
		c.Next()
	}
}

// SetIdentity stores a caller identity directly; used by tests.
func SetIdentity(c *ginext.Context, identity domain.Identity) {
	c.Set(identityKey, identity)
}

func IdentityFrom(c *ginext.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}
