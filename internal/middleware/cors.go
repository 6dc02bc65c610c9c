package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSPolicy lists the methods and headers advertised to browsers
type CORSPolicy struct {
	AllowMethods string
	AllowHeaders string
}

var (
	// RecipeCORS is the policy of the macros extraction endpoint
	RecipeCORS = CORSPolicy{
		AllowMethods: "POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}

	// BroadCORS is the policy of the basic extraction endpoint
	BroadCORS = CORSPolicy{
		AllowMethods: "GET,OPTIONS,PATCH,DELETE,POST,PUT",
		AllowHeaders: "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version",
	}
)

// CORS sets permissive CORS headers on every response and answers
// preflight requests with an empty 200.
func CORS(policy CORSPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", policy.AllowMethods)
		h.Set("Access-Control-Allow-Headers", policy.AllowHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
