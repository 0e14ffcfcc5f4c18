// Integration tests run the service layer against real Postgres. They
// need Docker and are opt-in: RUN_DB_TESTS=1 go test ./internal/integration/...
package integration

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saucepan-labs/recipebook/backend/internal/model"
	"github.com/saucepan-labs/recipebook/backend/internal/service"
	"github.com/saucepan-labs/recipebook/backend/internal/testdb"
)

func requireDockerTests(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_DB_TESTS") == "" {
		t.Skip("set RUN_DB_TESTS=1 to run database integration tests")
	}
}

func TestRecipeServiceOnPostgres(t *testing.T) {
	requireDockerTests(t)

	td := testdb.Setup(t)
	recipes := service.NewRecipeService(td.DB)
	ctx := context.Background()

	seed := []model.Recipe{
		{Name: "Tea", CookingTime: 5, Ingredients: "tea-leaves, water, sugar"},
		{Name: "Pasta", CookingTime: 30, Ingredients: "Tomato, Pasta"},
		{Name: "Salad", CookingTime: 10, Ingredients: "Lettuce, Tomato, Cucumber"},
	}
	for i := range seed {
		require.NoError(t, recipes.CreateRecipe(ctx, &seed[i]))
	}

	t.Run("name filter is case-insensitive", func(t *testing.T) {
		found, err := recipes.SearchRecipes(ctx, service.SearchCriteria{Name: "PAST"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Pasta", found[0].Name)
	})

	t.Run("ingredient filter is conjunctive", func(t *testing.T) {
		found, err := recipes.SearchRecipes(ctx, service.SearchCriteria{
			Ingredients: []string{"Tomato", "Cucumber"},
		})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Salad", found[0].Name)
	})

	t.Run("ingredient index is deduplicated and sorted", func(t *testing.T) {
		index, err := recipes.IngredientIndex(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Cucumber", "Lettuce", "Pasta", "Tomato",
			"sugar", "tea-leaves", "water",
		}, index)
	})

	t.Run("fetch by id", func(t *testing.T) {
		got, err := recipes.GetRecipe(ctx, seed[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Tea", got.Name)
		assert.Equal(t, model.DifficultyEasy, got.Difficulty())
	})
}

func TestAuthServiceOnPostgres(t *testing.T) {
	requireDockerTests(t)

	td := testdb.Setup(t)
	auth := service.NewAuthService(td.DB, td.Config.JWTSecret, service.NewMemoryTokenRevoker())
	ctx := context.Background()

	token, err := auth.Register(ctx, "Cook", "cook@example.com", "secretpass")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, token))
	_, err = auth.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, service.ErrTokenRevoked)
	assert.NotEqual(t, "", claims.TokenID)
}
