package middleware

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/session"
	"ticketdesk/internal/shared/constants"
)

// Session resolves the acting user for the request and stores it both on
// the gin context and on the request context.
func Session(resolver *session.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var headerValue string
		if h := resolver.Header(); h != "" {
			headerValue = c.GetHeader(h)
		}

		sess := resolver.Resolve(headerValue)
		c.Set(constants.ContextKeySession, sess)
		c.Request = c.Request.WithContext(session.WithSession(c.Request.Context(), sess))

		c.Next()
	}
}
