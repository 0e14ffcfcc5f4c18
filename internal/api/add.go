package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saucepan-labs/recipebook/backend/internal/model"
)

// MaxIngredients caps how many comma-separated entries a submitted
// recipe may carry.
const MaxIngredients = 10

// NewRecipeForm serves the empty add-recipe form context.
func (h *RecipeHandler) NewRecipeForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form": gin.H{
			"fields":          []string{"name", "cooking_time", "ingredients", "picture"},
			"max_ingredients": MaxIngredients,
		},
	})
}

// AddRecipe accepts a multipart submission, validates it, stores the
// picture when one was uploaded, persists the recipe and sends the
// caller back to the recipe list.
func (h *RecipeHandler) AddRecipe(c *gin.Context) {
	fieldErrors := make(map[string]string)

	recipe := model.Recipe{
		Name:        c.PostForm("name"),
		Ingredients: c.PostForm("ingredients"),
	}

	timeStr := c.PostForm("cooking_time")
	if timeStr == "" {
		fieldErrors["cooking_time"] = "cooking time is required"
	} else if t, err := strconv.ParseFloat(timeStr, 64); err != nil {
		fieldErrors["cooking_time"] = "cooking time must be a number"
	} else {
		recipe.CookingTime = t
	}

	if err := recipe.Validate(); err != nil {
		for _, v := range entityFieldErrors {
			if !errors.Is(err, v.err) {
				continue
			}
			if _, taken := fieldErrors[v.field]; !taken {
				fieldErrors[v.field] = v.err.Error()
			}
		}
	}
	if len(recipe.IngredientList()) > MaxIngredients {
		fieldErrors["ingredients"] = "please limit to 10 ingredients"
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	if file, err := c.FormFile("picture"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"picture": "could not read uploaded picture"}})
			return
		}
		defer src.Close()

		url, err := h.media.Save(c.Request.Context(), file.Filename, src)
		if err != nil {
			h.logger.Error("failed to store picture", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store picture"})
			return
		}
		recipe.PictureURL = url
	}

	if err := h.recipes.CreateRecipe(c.Request.Context(), &recipe); err != nil {
		h.logger.Error("failed to create recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create recipe"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/recipes/")
}

// entityFieldErrors maps each entity validation error onto its form
// field. Validate joins violations, so every matching entry is
// reported.
var entityFieldErrors = []struct {
	field string
	err   error
}{
	{"name", model.ErrNameRequired},
	{"name", model.ErrNameTooLong},
	{"cooking_time", model.ErrNegativeCookingTime},
	{"ingredients", model.ErrIngredientsRequired},
	{"ingredients", model.ErrIngredientsTooLong},
}
