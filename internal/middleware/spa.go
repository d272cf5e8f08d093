package middleware

import (
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hello-api-go/internal/constants"
)

const indexFile = "index.html"

// SPAFallback serves the single-page application for GET and HEAD requests
// that matched no route. Existing static assets are served as files; any
// other path whose last segment has no extension gets index.html so the
// client-side router can take over. Everything else falls through to the
// next NoRoute handler. Paths under apiPrefix never fall back.
func SPAFallback(static fs.FS, apiPrefix string, logger *zap.Logger) gin.HandlerFunc {
	fileSystem := http.FS(static)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Next()
			return
		}

		requestPath := c.Request.URL.Path
		if apiPrefix != "" && (requestPath == apiPrefix || strings.HasPrefix(requestPath, apiPrefix+"/")) {
			c.Next()
			return
		}

		name := strings.TrimPrefix(path.Clean("/"+requestPath), "/")
		if name != "" && name != indexFile {
			if info, err := fs.Stat(static, name); err == nil && !info.IsDir() {
				c.FileFromFS(name, fileSystem)
				c.Abort()
				return
			}
		}

		if path.Ext(name) != "" && name != indexFile {
			c.Next()
			return
		}

		index, err := fs.ReadFile(static, indexFile)
		if err != nil {
			logger.Warn(fmt.Sprintf("%s SPA index not available", constants.APIName()), zap.Error(err))
			c.Next()
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
		c.Abort()
	}
}
