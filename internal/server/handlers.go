package server

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/ndelaney/excusegen/internal/excuse"
	"github.com/ndelaney/excusegen/internal/llm"
)

// metrics holds the request counters exposed on /metrics.
type metrics struct {
	generateRequests atomic.Int64
	generateFailures atomic.Int64
}

// handleGenerateExcuse is the main API endpoint: validate, build the
// prompt, call the serving endpoint, normalize the reply. Validation
// problems are client errors; anything downstream comes back in the
// response shape with success=false, never as a raw transport fault.
func (s *Server) handleGenerateExcuse(c *gin.Context) {
	s.metrics.generateRequests.Add(1)

	var req excuse.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, excuse.Response{Error: "invalid request body: " + err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, excuse.Response{Error: err.Error()})
		return
	}

	slog.Info("generating excuse",
		"category", req.Category,
		"tone", req.Tone,
		"seriousness", req.Seriousness,
		"request_id", c.GetString(requestIDKey),
	)

	reply, err := s.llm.Complete(c.Request.Context(), excuse.BuildPrompt(req))
	if err != nil {
		s.metrics.generateFailures.Add(1)
		s.health.SetUnhealthy("llm", err)
		slog.Error("serving endpoint call failed", "error", err, "request_id", c.GetString(requestIDKey))

		msg := "LLM service error: " + err.Error()
		if errors.Is(err, llm.ErrMissingToken) {
			msg = "DATABRICKS_API_TOKEN not configured"
		}
		c.JSON(http.StatusBadGateway, excuse.Response{Error: msg})
		return
	}
	s.health.SetHealthy("llm", "last call succeeded")

	draft := excuse.Normalize(reply, req)
	c.JSON(http.StatusOK, excuse.Response{
		Subject: draft.Subject,
		Body:    draft.Body,
		Success: true,
	})
}

// handleHealth answers the liveness/readiness probes. A failing serving
// endpoint degrades the reported status but keeps the probe at 200: the
// process itself is fine.
func (s *Server) handleHealth(c *gin.Context) {
	status := "healthy"
	if !s.health.IsOverallHealthy() {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     status,
		"service":    serviceName,
		"components": s.health.Snapshot(),
	})
}

func (s *Server) handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":           serviceName,
		"status":            "running",
		"version":           serviceVersion,
		"generate_requests": s.metrics.generateRequests.Load(),
		"generate_failures": s.metrics.generateFailures.Load(),
	})
}

// handleDebug reports the effective environment with the token redacted.
func (s *Server) handleDebug(c *gin.Context) {
	token := "Not set"
	if s.cfg.APIToken != "" {
		token = "***"
	}

	cwd, _ := os.Getwd()
	staticDir, _ := filepath.Abs(s.cfg.StaticDir)

	c.JSON(http.StatusOK, gin.H{
		"environment": gin.H{
			"DATABRICKS_API_TOKEN":    token,
			"DATABRICKS_ENDPOINT_URL": s.cfg.EndpointURL,
			"PORT":                    s.cfg.Port,
			"HOST":                    s.cfg.Host,
		},
		"paths": gin.H{
			"current_dir": cwd,
			"static_dir":  staticDir,
			"index_html":  filepath.Join(staticDir, "index.html"),
		},
	})
}
