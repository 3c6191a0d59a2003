package middleware

import (
	"strings"

	"go-blog-backend/config"
	"go-blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers for the React client.
//
// The whitelist is configuration-driven: production only allows the listed
// domains, development additionally allows any localhost port so Vite can
// pick a free one.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	whitelist := make(map[string]bool, len(cfg.WhitelistOrigins))
	for _, origin := range cfg.WhitelistOrigins {
		whitelist[origin] = true
	}
	isProduction := cfg.IsProduction()

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var isAllowed bool

		if whitelist[origin] {
			isAllowed = true
		}

		// Development: any localhost origin works regardless of port
		if !isProduction && (strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "http://127.0.0.1:")) {
			isAllowed = true
		}

		// Empty origin (same-origin or non-browser requests) - allow
		if origin == "" {
			isAllowed = true
		}

		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		} else {
			logger.Log.Warn("CORS origin rejected", "origin", origin)
		}
		// If not allowed, no CORS headers are sent - browser will block the request

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
