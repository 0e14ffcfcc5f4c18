package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/saucepan-labs/recipebook/backend/internal/service"
)

type RecipeHandler struct {
	recipes *service.RecipeService
	media   service.MediaStore
	logger  *zap.Logger
}

func NewRecipeHandler(recipes *service.RecipeService, media service.MediaStore, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		media:   media,
		logger:  logger,
	}
}

// ListRecipes returns all recipes.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRecipe returns one recipe by id. A malformed id is treated the
// same as an unknown one.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		h.logger.Error("failed to fetch recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe":     recipe,
		"difficulty": recipe.Difficulty(),
		"url":        recipe.AbsoluteURL(),
	})
}
