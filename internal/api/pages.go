package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home is the public landing page context.
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":   "RecipeBook",
		"message": "Browse, search and share recipes.",
	})
}

// About is the informational page context.
func About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name": "Rocky",
		"bio":  "Home cook and developer. I built RecipeBook to keep my favorite dishes in one place. Bon appetit!",
		"sections": gin.H{
			"Technology Used": []string{"Go", "Gin", "GORM", "PostgreSQL", "Redis"},
		},
	})
}
