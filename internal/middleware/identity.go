package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

const actorKey = "actor"

// Identity resolves the authenticated actor from a bearer token issued by
// the identity provider. Absence or an invalid token is not an error here:
// browsing and the first checkout steps work anonymously, and the payment
// submit enforces its own precondition.
func Identity(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.Next()
			return
		}

		claims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			c.Next()
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		if sub != "" {
			c.Set(actorKey, &domain.Actor{ID: sub, Email: email})
		}

		c.Next()
	}
}

// ActorFromContext returns the resolved actor, or nil for anonymous requests.
func ActorFromContext(c *ginext.Context) *domain.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(*domain.Actor); ok {
			return actor
		}
	}
	return nil
}

// SetActor places an actor in the request context. Used by tests.
func SetActor(c *ginext.Context, actor *domain.Actor) {
	c.Set(actorKey, actor)
}
