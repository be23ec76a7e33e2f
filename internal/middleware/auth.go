package middleware

import (
	"net/http"
	"strings"

	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const adminClaimsKey = "admin_claims"

type TokenParser interface {
	ParseToken(token string) (*domain.AdminClaims, error)
}

// AdminAuth требует заголовок "Authorization: Bearer <token>" и кладет
// claims администратора в контекст.
func AdminAuth(parser TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.Set("error", domain.ErrInvalidToken.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims, err := parser.ParseToken(strings.TrimSpace(token))
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrInvalidToken.Error()})
			return
		}

		c.Set(adminClaimsKey, claims)
		c.Next()
	}
}

// RequirePermission пропускает администратора, у роли которого есть хотя бы
// одно из перечисленных прав.
func RequirePermission(perms ...domain.Permission) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		claims, ok := AdminFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrInvalidToken.Error()})
			return
		}

		for _, p := range perms {
			if domain.HasPermission(claims.Role, p) {
				c.Next()
				return
			}
		}

		c.Set("error", domain.ErrForbidden.Error())
		c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": domain.ErrForbidden.Error()})
	}
}

func AdminFromContext(c *ginext.Context) (*domain.AdminClaims, bool) {
	v, ok := c.Get(adminClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*domain.AdminClaims)
	return claims, ok
}
