package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pKa1/loveSonia/internal/model"
)

const (
	UserIDHeader   = "X-User-ID"
	UsernameHeader = "X-Username"

	scopeKey = "scope"
)

// Scope puts the caller identity into the gin context. Authentication happens
// upstream; a missing header means an anonymous caller.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID:   strings.TrimSpace(c.GetHeader(UserIDHeader)),
			Username: strings.TrimSpace(c.GetHeader(UsernameHeader)),
		}
		if sc.UserID == "" {
			sc.UserID = model.AnonymousUserID
		}
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// GetScope returns the scope set by Scope, or an anonymous one.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: model.AnonymousUserID}
}
