package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticketdesk/internal/infrastructure/cache"
	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

// Flash carries one-shot messages across a redirect. The browser only ever
// holds an opaque token; the message itself lives in the FlashStore.
type Flash struct {
	store      cache.FlashStore
	cookieName string
	ttl        time.Duration
	logger     logger.Interface
}

func NewFlash(store cache.FlashStore, cookieName string, ttl time.Duration, log logger.Interface) *Flash {
	return &Flash{
		store:      store,
		cookieName: cookieName,
		ttl:        ttl,
		logger:     log,
	}
}

// Middleware pops the pending message, if any, into the gin context.
func (f *Flash) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetFlashCookie(c, f.cookieName)
		if token == "" {
			c.Next()
			return
		}

		utils.ClearFlashCookie(c, f.cookieName)

		msg, err := f.store.Take(c.Request.Context(), token)
		if err != nil {
			f.logger.Warnw("failed to read flash message", "error", err)
		} else if msg != nil {
			c.Set(constants.ContextKeyFlash, msg)
		}

		c.Next()
	}
}

// Add queues a message for the next page the browser loads. Failures are
// logged and otherwise ignored: losing a flash never fails the action.
func (f *Flash) Add(c *gin.Context, kind, text string) {
	token := uuid.NewString()
	msg := cache.FlashMessage{Kind: kind, Text: text, CreatedAt: time.Now().UTC()}

	if err := f.store.Put(c.Request.Context(), token, msg); err != nil {
		f.logger.Warnw("failed to store flash message", "error", err)
		return
	}
	utils.SetFlashCookie(c, f.cookieName, token, int(f.ttl/time.Second))
}
