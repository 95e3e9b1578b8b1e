package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware opens the API to any origin. The POI map is embedded on
// third-party pages, so there is no allow-list.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Any origin may read the response
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")

		// 2. Read-only API: GET plus the preflight
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Requested-With, X-Request-ID")

		// 3. Answer the preflight with "204 No Content"
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
