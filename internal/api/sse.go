package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// countdownSSE streams the live countdown via Server-Sent Events, one
// tick per second. The UI's remaining-time display subscribes here
// instead of polling /api/countdown.
func (s *Server) countdownSSE(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("Access-Control-Allow-Origin", "*")

	assignee := c.Query("assignee")
	clientGone := c.Request.Context().Done()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-clientGone:
			return
		case <-ticker.C:
			countdown := s.poller.Countdown(assignee, s.now())

			payload, err := json.Marshal(countdown)
			if err != nil {
				continue
			}

			fmt.Fprintf(c.Writer, "event: countdown\n")
			fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
			c.Writer.Flush()
		}
	}
}
