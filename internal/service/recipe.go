package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saucepan-labs/recipebook/backend/internal/model"
)

// ErrInvalidCriteria is returned when a search names neither a recipe
// name nor any ingredients.
var ErrInvalidCriteria = errors.New("please enter a recipe name or select ingredients")

// SearchCriteria is the per-request filter input. ChartKind travels
// with it but is consumed by the chart package, not the query.
type SearchCriteria struct {
	Name        string
	Ingredients []string
	ChartKind   string
}

// Validate enforces the search precondition: at least one of name or
// ingredients must be present.
func (c SearchCriteria) Validate() error {
	if strings.TrimSpace(c.Name) != "" {
		return nil
	}
	for _, ing := range c.Ingredients {
		if strings.TrimSpace(ing) != "" {
			return nil
		}
	}
	return ErrInvalidCriteria
}

// RecipeService handles recipe reads, creation and search.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipes returns all recipes in store order.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID. Returns gorm.ErrRecordNotFound
// for unknown ids.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe validates and persists a new recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(recipe).Error
}

// SearchRecipes applies the criteria to the collection. The name is a
// case-insensitive substring match; each selected ingredient token is a
// case-insensitive substring match against the ingredients field, and
// tokens combine with AND. Result order is store order.
func (s *RecipeService) SearchRecipes(ctx context.Context, criteria SearchCriteria) ([]model.Recipe, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx)

	if name := strings.TrimSpace(criteria.Name); name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	for _, ing := range criteria.Ingredients {
		ing = strings.TrimSpace(ing)
		if ing == "" {
			continue
		}
		query = query.Where("LOWER(ingredients) LIKE ?", "%"+strings.ToLower(ing)+"%")
	}

	var recipes []model.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// IngredientIndex returns the sorted set of distinct ingredient tokens
// across all stored recipes. Recomputed from the store on every call;
// cost is linear in the stored ingredient text.
func (s *RecipeService) IngredientIndex(ctx context.Context) ([]string, error) {
	var fields []string
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Pluck("ingredients", &fields).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, field := range fields {
		r := model.Recipe{Ingredients: field}
		for _, token := range r.IngredientList() {
			seen[token] = struct{}{}
		}
	}

	index := make([]string, 0, len(seen))
	for token := range seen {
		index = append(index, token)
	}
	sort.Strings(index)
	return index, nil
}
