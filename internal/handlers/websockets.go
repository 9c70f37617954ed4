package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"second_brain/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 5 * time.Second
	maxInterval      = 60 * time.Second
	maxIntervalMilli = 60_000
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// The live feed exposes the same public data as GET /brain/:shareLink.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsSharedBrain godoc
// @Summary      Live view of a shared collection (WebSocket)
// @Description  Sends {"type":"brain","data":{...}} immediately and then every interval.
// @Tags         brain
// @Param        shareLink    path   string  true   "Share hash"
// @Param        interval     query  string  false  "Go duration, e.g. 2s (max 60s)"
// @Param        interval_ms  query  int     false  "Interval in milliseconds"
// @Failure      404          {object}  messageResponse
// @Router       /api/v1/brain/{shareLink}/live [get]
func (h *Handler) wsSharedBrain(c *gin.Context) {
	hash := c.Param("shareLink")
	interval := h.parseInterval(c)

	// unknown hashes are refused before the upgrade
	if _, err := h.services.Shared(c.Request.Context(), hash); err != nil {
		if errors.Is(err, service.ErrShareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		h.internalError(c, "ws_brain_lookup_failed", err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	if err := h.sendBrain(ctx, conn, hash); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendBrain(ctx, conn, hash); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "hash", hash, "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return defaultInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Debugw("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// sendBrain writes the current shared collection. A link removed while the
// feed is open produces a final error envelope and ends the stream.
func (h *Handler) sendBrain(ctx context.Context, conn *websocket.Conn, hash string) error {
	brain, err := h.services.Shared(ctx, hash)
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err != nil {
		msg := msgInternal
		if errors.Is(err, service.ErrShareNotFound) {
			msg = err.Error()
		} else if h.log != nil {
			h.log.Errorw("ws_get_brain_failed", "hash", hash, "err", err)
		}
		_ = conn.WriteJSON(wsEnvelope{Type: "error", Error: msg})
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, msg))
		return err
	}
	return conn.WriteJSON(wsEnvelope{Type: "brain", Data: brain})
}
