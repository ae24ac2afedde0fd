package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS lets a dev frontend on another port call the API. OPTIONS requests
// stop here with 204.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		// wildcard origin, so the API stays cookie-free
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Vary", "Origin")
		c.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,DELETE,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Requested-With")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
