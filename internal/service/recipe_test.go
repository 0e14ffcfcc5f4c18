package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saucepan-labs/recipebook/backend/internal/model"
)

func TestSearchCriteriaValidate(t *testing.T) {
	assert.ErrorIs(t, SearchCriteria{}.Validate(), ErrInvalidCriteria)
	assert.ErrorIs(t, SearchCriteria{Name: "  "}.Validate(), ErrInvalidCriteria)
	assert.ErrorIs(t, SearchCriteria{Ingredients: []string{"", " "}}.Validate(), ErrInvalidCriteria)
	assert.NoError(t, SearchCriteria{Name: "Pasta"}.Validate())
	assert.NoError(t, SearchCriteria{Ingredients: []string{"Tomato"}}.Validate())
	// A chart kind alone does not make the criteria valid.
	assert.ErrorIs(t, SearchCriteria{ChartKind: "pie"}.Validate(), ErrInvalidCriteria)
}

func TestSearchRecipesRejectsEmptyCriteria(t *testing.T) {
	svc := NewRecipeService(newTestDB(t))

	_, err := svc.SearchRecipes(context.Background(), SearchCriteria{})
	assert.ErrorIs(t, err, ErrInvalidCriteria)
}

func TestSearchRecipesByName(t *testing.T) {
	db := newTestDB(t)
	seedRecipes(t, db,
		model.Recipe{Name: "Pasta", CookingTime: 30, Ingredients: "Tomato, Pasta"},
		model.Recipe{Name: "Salad", CookingTime: 10, Ingredients: "Lettuce, Tomato, Cucumber"},
	)
	svc := NewRecipeService(db)

	got, err := svc.SearchRecipes(context.Background(), SearchCriteria{Name: "Pasta"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pasta", got[0].Name)

	// Case-insensitive substring.
	got, err = svc.SearchRecipes(context.Background(), SearchCriteria{Name: "past"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pasta", got[0].Name)
}

func TestSearchRecipesByIngredientsIsConjunctive(t *testing.T) {
	db := newTestDB(t)
	seedRecipes(t, db,
		model.Recipe{Name: "Pasta", CookingTime: 30, Ingredients: "Tomato, Pasta"},
		model.Recipe{Name: "Salad", CookingTime: 10, Ingredients: "Lettuce, Tomato, Cucumber"},
	)
	svc := NewRecipeService(db)

	// One token matches both recipes.
	got, err := svc.SearchRecipes(context.Background(), SearchCriteria{Ingredients: []string{"tomato"}})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Both tokens must match; only the salad has lettuce too.
	got, err = svc.SearchRecipes(context.Background(), SearchCriteria{Ingredients: []string{"tomato", "lettuce"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Salad", got[0].Name)
}

func TestSearchRecipesNoMatches(t *testing.T) {
	db := newTestDB(t)
	seedRecipes(t, db, model.Recipe{Name: "Pasta", CookingTime: 30, Ingredients: "Tomato, Pasta"})
	svc := NewRecipeService(db)

	got, err := svc.SearchRecipes(context.Background(), SearchCriteria{Name: "quiche"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIngredientIndex(t *testing.T) {
	db := newTestDB(t)
	seedRecipes(t, db,
		model.Recipe{Name: "Tea", CookingTime: 5, Ingredients: "tea-leaves, water, sugar"},
		model.Recipe{Name: "Pasta", CookingTime: 30, Ingredients: "Tomato, Pasta"},
	)
	svc := NewRecipeService(db)

	index, err := svc.IngredientIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Pasta", "Tomato", "sugar", "tea-leaves", "water"}, index)
}

func TestIngredientIndexDeduplicates(t *testing.T) {
	db := newTestDB(t)
	seedRecipes(t, db,
		model.Recipe{Name: "Pasta", CookingTime: 30, Ingredients: "Tomato, Pasta"},
		model.Recipe{Name: "Salad", CookingTime: 10, Ingredients: "Lettuce, Tomato"},
	)
	svc := NewRecipeService(db)

	index, err := svc.IngredientIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Lettuce", "Pasta", "Tomato"}, index)
}

func TestIngredientIndexEmptyStore(t *testing.T) {
	svc := NewRecipeService(newTestDB(t))

	index, err := svc.IngredientIndex(context.Background())
	require.NoError(t, err)
	assert.Empty(t, index)
}

func TestCreateAndGetRecipe(t *testing.T) {
	svc := NewRecipeService(newTestDB(t))

	recipe := model.Recipe{Name: "Tea", CookingTime: 5, Ingredients: "tea-leaves, water, sugar"}
	require.NoError(t, svc.CreateRecipe(context.Background(), &recipe))
	require.NotEqual(t, uuid.Nil, recipe.ID)
	assert.Equal(t, model.DefaultPictureURL, recipe.PictureURL)

	got, err := svc.GetRecipe(context.Background(), recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tea", got.Name)
	assert.Equal(t, model.DifficultyEasy, got.Difficulty())
}

func TestCreateRecipeRejectsInvalid(t *testing.T) {
	svc := NewRecipeService(newTestDB(t))

	err := svc.CreateRecipe(context.Background(), &model.Recipe{Name: "Empty"})
	assert.ErrorIs(t, err, model.ErrIngredientsRequired)
}

func TestGetRecipeNotFound(t *testing.T) {
	svc := NewRecipeService(newTestDB(t))

	_, err := svc.GetRecipe(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
