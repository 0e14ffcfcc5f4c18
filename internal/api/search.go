package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saucepan-labs/recipebook/backend/internal/chart"
	"github.com/saucepan-labs/recipebook/backend/internal/service"
)

// SearchRequest carries the submitted criteria. Accepted as a form
// post or as JSON.
type SearchRequest struct {
	Name        string   `form:"name" json:"name"`
	Ingredients []string `form:"ingredients" json:"ingredients"`
	ChartKind   string   `form:"chart_kind" json:"chart_kind"`
}

// SearchForm serves the empty criteria form: the selectable ingredient
// index and the chart kinds. The index is recomputed from the store on
// every request.
func (h *RecipeHandler) SearchForm(c *gin.Context) {
	form, err := h.searchFormContext(c)
	if err != nil {
		h.logger.Error("failed to build search form", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load search form"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": form})
}

// Search validates the criteria, filters the collection and assembles
// the response context: the form options, the filtered recipes, the
// summary table and the optional chart.
func (h *RecipeHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search request"})
		return
	}

	criteria := service.SearchCriteria{
		Name:        req.Name,
		Ingredients: req.Ingredients,
		ChartKind:   req.ChartKind,
	}

	recipes, err := h.recipes.SearchRecipes(c.Request.Context(), criteria)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCriteria) {
			form, formErr := h.searchFormContext(c)
			if formErr != nil {
				h.logger.Error("failed to build search form", zap.Error(formErr))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load search form"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{
				"error": service.ErrInvalidCriteria.Error(),
				"form":  form,
			})
			return
		}
		h.logger.Error("search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	summary := chart.Summarize(recipes)

	response := gin.H{"recipes": recipes}

	if form, err := h.searchFormContext(c); err == nil {
		response["form"] = form
	} else {
		h.logger.Warn("failed to rebuild search form", zap.Error(err))
	}

	if table, err := summary.HTMLTable(); err == nil && table != "" {
		response["table"] = table
	} else if err != nil {
		h.logger.Warn("failed to render summary table", zap.Error(err))
	}

	// A failed render is logged and the chart omitted; it never fails
	// the search.
	if img, err := chart.Render(chart.Kind(req.ChartKind), summary); err == nil && img != "" {
		response["chart"] = img
	} else if err != nil {
		h.logger.Warn("failed to render chart", zap.String("kind", req.ChartKind), zap.Error(err))
	}

	c.JSON(http.StatusOK, response)
}

func (h *RecipeHandler) searchFormContext(c *gin.Context) (gin.H, error) {
	index, err := h.recipes.IngredientIndex(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return gin.H{
		"ingredient_options": index,
		"chart_kinds":        chart.Kinds(),
	}, nil
}
