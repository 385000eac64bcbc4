package handlers

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
)

// streamHeartbeat keeps idle Server-Sent Event connections open through proxies.
var streamHeartbeat = 25 * time.Second

func startStream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
}

// streamEvents forwards events to the client as Server-Sent Events named
// name until the client goes away or events is closed.
func streamEvents[T any](c *gin.Context, name string, events <-chan T) {
	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	c.Stream(func(io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case v, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(name, v)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			return true
		}
	})
}
