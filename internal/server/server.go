// Package server is the web front-end adapter: image uploads come in over
// HTTP, the shared core performs extraction, normalization and merging, and
// the refreshed report goes back out as JSON, CSV, or websocket pushes.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/grovetools/core/logging"
	"github.com/grovetools/rollcall/internal/extract"
	"github.com/grovetools/rollcall/internal/roster"
	"github.com/sirupsen/logrus"
)

// Server holds one in-memory ledger for its lifetime, mirroring the session
// state of the original web front-end. gin serves requests concurrently, so
// the ledger is mutex-guarded here; the core itself stays lock-free.
type Server struct {
	engine extract.Engine
	opts   roster.NormalizeOptions
	logger *logrus.Entry

	mu     sync.Mutex
	ledger *roster.Ledger

	upgrader websocket.Upgrader

	watchersMu sync.Mutex
	watchers   map[*websocket.Conn]bool
}

// New creates a server around an extraction engine.
func New(engine extract.Engine, opts roster.NormalizeOptions) *Server {
	return &Server{
		engine: engine,
		opts:   opts,
		logger: logging.NewLogger("rollcall-server"),
		ledger: roster.NewLedger(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		watchers: make(map[*websocket.Conn]bool),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.POST("/scan", s.handleScan)
	router.GET("/attendance", s.handleAttendance)
	router.GET("/export.csv", s.handleExport)
	router.POST("/clear", s.handleClear)
	router.GET("/live", s.handleLive)
	return router
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.WithField("addr", addr).Info("Starting rollcall server")
	return s.Router().Run(addr)
}

type scanResponse struct {
	Detected int          `json:"detected"`
	New      int          `json:"new"`
	Total    int          `json:"total"`
	Warning  string       `json:"warning,omitempty"`
	Rows     []roster.Row `json:"rows"`
}

func (s *Server) handleScan(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'image' upload"})
		return
	}
	defer file.Close()

	img, err := io.ReadAll(file)
	if err != nil || len(img) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty image upload"})
		return
	}

	res, err := s.engine.Extract(c.Request.Context(), extract.Input{
		Image:  img,
		Format: extract.ImageFormatPNG,
	})
	if err != nil {
		s.logger.WithError(err).Error("Extraction failed")
		status := http.StatusBadGateway
		if errors.Is(err, extract.ErrTimeout) {
			status = http.StatusGatewayTimeout
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	names := roster.Normalize(res.RawText, s.opts)
	if len(names) == 0 {
		c.JSON(http.StatusOK, scanResponse{
			Warning: roster.ErrNoNames.Error(),
			Rows:    s.report(),
		})
		return
	}

	s.mu.Lock()
	newCount := s.ledger.Merge(names, time.Now())
	total := s.ledger.Len()
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"detected": len(names),
		"new":      newCount,
	}).Info("Merged submission")

	rows := s.report()
	s.broadcast(rows)
	c.JSON(http.StatusOK, scanResponse{
		Detected: len(names),
		New:      newCount,
		Total:    total,
		Rows:     rows,
	})
}

func (s *Server) handleAttendance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rows": s.report()})
}

func (s *Server) handleExport(c *gin.Context) {
	var buf bytes.Buffer
	if err := roster.WriteCSV(&buf, s.report()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	filename := fmt.Sprintf("rollcall_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (s *Server) handleClear(c *gin.Context) {
	s.mu.Lock()
	s.ledger.Clear()
	s.mu.Unlock()

	s.broadcast(nil)
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// handleLive upgrades to a websocket and pushes the refreshed report after
// every merge or clear, for a live wall display.
func (s *Server) handleLive(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.WithError(err).Error("Failed to upgrade to WebSocket")
		return
	}

	// Register and send the current state under the watchers lock: broadcast
	// writes under the same lock, and a Conn permits only one writer at a time.
	rows := s.report()
	s.watchersMu.Lock()
	s.watchers[conn] = true
	writeErr := conn.WriteJSON(gin.H{"rows": rows})
	s.watchersMu.Unlock()
	if writeErr != nil {
		s.dropWatcher(conn)
		return
	}

	// Reads only serve to detect disconnect.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.dropWatcher(conn)
				return
			}
		}
	}()
}

func (s *Server) report() []roster.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return roster.BuildReport(s.ledger)
}

func (s *Server) broadcast(rows []roster.Row) {
	if rows == nil {
		rows = []roster.Row{}
	}
	s.watchersMu.Lock()
	defer s.watchersMu.Unlock()
	for conn := range s.watchers {
		if err := conn.WriteJSON(gin.H{"rows": rows}); err != nil {
			s.logger.WithError(err).Debug("Dropping disconnected watcher")
			conn.Close()
			delete(s.watchers, conn)
		}
	}
}

func (s *Server) dropWatcher(conn *websocket.Conn) {
	s.watchersMu.Lock()
	defer s.watchersMu.Unlock()
	if s.watchers[conn] {
		conn.Close()
		delete(s.watchers, conn)
	}
}
