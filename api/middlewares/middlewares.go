package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/jaekwan-dev/soccer-schedule-manager/api/auth"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates operator routes behind the admin session token.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.ValidateAdminToken(c.Request); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}

// This enables us interact with the frontend during local dev and when
// deployed behind a different origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowedOrigins := []string{
			"http://localhost:3000", // local dev
		}
		if configured := strings.TrimSpace(os.Getenv("FRONTEND_ORIGIN")); configured != "" {
			allowedOrigins = append(allowedOrigins, configured)
		}

		for _, o := range allowedOrigins {
			if o == origin {
				c.Writer.Header().Set("Access-Control-Allow-Origin", o)
				break
			}
		}

		c.Writer.Header().Set("Vary", "Origin")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, Content-Length, X-CSRF-Token, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods",
			"POST, GET, OPTIONS, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
