package server

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// missingBundlePage is shown when the frontend bundle has not been built
// or mounted.
const missingBundlePage = `<html>
    <head><title>Excuse Email Tool</title></head>
    <body>
        <h1>Excuse Email Draft Tool</h1>
        <p>Frontend app not found. Please ensure index.html is in the static directory.</p>
    </body>
</html>`

func (s *Server) registerStatic(r *gin.Engine) {
	r.Static("/static", s.cfg.StaticDir)
	r.GET("/", s.serveIndex)
}

// serveIndex serves the frontend entry point, falling back to a plain
// HTML notice when the bundle is missing.
func (s *Server) serveIndex(c *gin.Context) {
	index := filepath.Join(s.cfg.StaticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		slog.Warn("static bundle not found", "path", index)
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(missingBundlePage))
		return
	}
	c.File(index)
}
