package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey        = "userId"
	storeCheckWindow = 2 * time.Second
)

// userIdMiddleware accepts "Bearer <token>" as well as the bare token.
func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": msgMissingAuth,
		})
		return
	}

	token, ok := extractToken(header)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": msgInvalidAuth,
		})
		return
	}

	userId, err := h.services.ParseToken(token)
	if err != nil {
		if h.log != nil {
			h.log.Debugw("auth_token_rejected", "err", err)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": msgInvalidToken,
		})
		return
	}

	// store in Gin context
	c.Set(userIDKey, userId)
	c.Next()
}

func extractToken(header string) (string, bool) {
	parts := strings.Fields(header)
	switch len(parts) {
	case 1:
		if strings.EqualFold(parts[0], "Bearer") {
			return "", false
		}
		return parts[0], true
	case 2:
		if !strings.EqualFold(parts[0], "Bearer") {
			return "", false
		}
		return parts[1], true
	default:
		return "", false
	}
}

// currentUserID reads the id stored by userIdMiddleware.
func currentUserID(c *gin.Context) (int, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok && id > 0
}

// storeCheckMiddleware answers 503 while the database is unreachable.
func (h *Handler) storeCheckMiddleware(c *gin.Context) {
	if h.services.Health == nil {
		c.Next()
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeCheckWindow)
	defer cancel()

	if err := h.services.PingStore(ctx); err != nil {
		if h.log != nil {
			h.log.Warnw("store_unavailable", "path", c.FullPath(), "err", err)
		}
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"message": msgStoreUnavailable,
		})
		return
	}
	c.Next()
}
