package api

import (
	"net/http"
	"time"

	"laneboard/internal/poller"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Server exposes the projected schedule to dashboard UIs.
type Server struct {
	poller *poller.Poller
	now    func() time.Time
}

// NewServer creates the HTTP surface over a running poller. now is
// injectable for tests; pass nil for wall-clock time.
func NewServer(p *poller.Poller, now func() time.Time) *Server {
	if now == nil {
		now = time.Now
	}
	return &Server{poller: p, now: now}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.health)
	r.GET("/api/schedule", s.getSchedule)
	r.GET("/api/tickets", s.getTickets)
	r.GET("/api/countdown", s.getCountdown)
	r.GET("/api/events/countdown", s.countdownSSE)

	return r
}

// Serve blocks on the listener.
func (s *Server) Serve(addr string) error {
	log.Info().Str("addr", addr).Msg("Dashboard API listening")
	return s.Router().Run(addr)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getSchedule(c *gin.Context) {
	snap, err := s.poller.Snapshot()
	if snap == nil {
		s.noSnapshot(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) getTickets(c *gin.Context) {
	snap, err := s.poller.Snapshot()
	if snap == nil {
		s.noSnapshot(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"fetchedAt": snap.FetchedAt,
		"tickets":   snap.Tickets,
	})
}

func (s *Server) getCountdown(c *gin.Context) {
	snap, err := s.poller.Snapshot()
	if snap == nil {
		s.noSnapshot(c, err)
		return
	}
	countdown := s.poller.Countdown(c.Query("assignee"), s.now())
	c.JSON(http.StatusOK, countdown)
}

// noSnapshot is the only error surface of the API: no cycle has ever
// succeeded. Once a snapshot exists, a failing upstream keeps serving
// the stale one instead of this.
func (s *Server) noSnapshot(c *gin.Context, err error) {
	body := gin.H{"error": "no snapshot available yet"}
	if err != nil {
		body["cause"] = err.Error()
	}
	c.JSON(http.StatusServiceUnavailable, body)
}
