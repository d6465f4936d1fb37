package middleware

import (
	"github.com/gin-gonic/gin"

	"reminder-app/reminder/session"
)

// SessionMiddleware loads the cookie session and attaches it to the context.
func SessionMiddleware(opts session.Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Attach(c, session.Load(c, opts))
		c.Next()
	}
}
