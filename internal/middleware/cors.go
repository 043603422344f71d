package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// corsHeaders is everything the embedded dashboard needs when it is served
// from a different origin during development. In production the pages share
// the API origin, so the headers are inert.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":   "*",
	"Access-Control-Allow-Methods":  "GET, POST, PUT, DELETE, OPTIONS",
	"Access-Control-Allow-Headers":  "Content-Type, X-Request-ID",
	"Access-Control-Expose-Headers": "X-Request-ID",
}

// CORS applies the header set above and short-circuits preflight requests.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		for k, v := range corsHeaders {
			c.Header(k, v)
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
