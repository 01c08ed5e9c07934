package realtime

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pKa1/loveSonia/internal/intent"
	"github.com/pKa1/loveSonia/pkg/response"
)

const defaultHeartbeat = 25 * time.Second

// Topics a client may subscribe to.
var allowedTopics = map[string]bool{
	intent.TopicEvents: true,
	intent.TopicTasks:  true,
}

// Handler streams hub messages to browsers as server-sent events.
type Handler struct {
	hub       *Hub
	heartbeat time.Duration
}

// NewHandler creates the SSE handler. heartbeat <= 0 uses 25s.
func NewHandler(hub *Hub, heartbeat time.Duration) *Handler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &Handler{hub: hub, heartbeat: heartbeat}
}

// Stream subscribes to the topic given in the query string and writes every
// message as an SSE frame until the client goes away.
// @Summary Realtime change stream
// @Description Server-sent events with {action,id,title} notices for the given topic
// @Tags Realtime
// @Produce text/event-stream
// @Param topic query string true "events or tasks"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} response.Resp
// @Router /api/v1/realtime [get]
func (h *Handler) Stream(c *gin.Context) {
	topic := strings.ToLower(strings.TrimSpace(c.Query("topic")))
	if !allowedTopics[topic] {
		response.ErrorWithStatus(c, http.StatusBadRequest, http.StatusBadRequest, "unknown topic")
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		response.ErrorWithStatus(c, http.StatusInternalServerError, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w := c.Writer
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	sub := h.hub.Subscribe(topic)
	defer h.hub.Unsubscribe(sub)

	c.SSEvent("connected", gin.H{"topic": topic})
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.C():
			if !ok {
				return
			}
			c.SSEvent(msg.Topic, string(msg.Data))
			flusher.Flush()
		case <-ticker.C:
			// comment line; the sse encoder has no form for it
			fmt.Fprint(w, ": heartbeat\n\n")
			flusher.Flush()
		}
	}
}
