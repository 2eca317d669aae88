package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/TimeslotBooker/internal/auth"
	"github.com/stpnv0/TimeslotBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

type TokenVerifier interface {
	Verify(token string) (domain.Actor, error)
}

// Authenticate resolves the bearer token into an actor and stores it in the
// request context. Requests without a valid token continue as anonymous;
// routes that need a user add RequireUser or RequireStaff.
func Authenticate(v TokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.Next()
			return
		}

		actor, err := v.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Request = c.Request.WithContext(auth.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}

func RequireUser() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if !auth.ActorFromContext(c.Request.Context()).Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthenticated.Error()})
			return
		}
		c.Next()
	}
}

func RequireStaff() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		actor := auth.ActorFromContext(c.Request.Context())
		switch {
		case !actor.Authenticated():
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthenticated.Error()})
			return
		case !actor.IsStaff:
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": domain.ErrForbidden.Error()})
			return
		}
		c.Next()
	}
}
