// controllers/health.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the public liveness probe; it answers regardless of auth state.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// About is the public informational page; it also renders for
// unauthenticated visitors.
func About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":      "Car Wash Manager",
		"languages": []string{"ar", "en"},
	})
}
