package v1

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"soa-bango-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// StaticFallback serves the pre-built front-end bundle for any route the API
// did not match. Existing files are served directly; everything else gets
// index.html so deep links land on the single page. API paths and non-GET
// methods stay JSON 404s.
func StaticFallback(staticDir string) gin.HandlerFunc {
	indexFile := filepath.Join(staticDir, "index.html")

	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.Method != http.MethodGet {
			response.Error(c, http.StatusNotFound, "Route introuvable")
			return
		}

		// Clean rejects traversal out of the bundle directory.
		rel := filepath.Clean(strings.TrimPrefix(c.Request.URL.Path, "/"))
		if rel == "." || strings.HasPrefix(rel, "..") {
			c.File(indexFile)
			return
		}

		path := filepath.Join(staticDir, rel)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		c.File(indexFile)
	}
}
