package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saucepan-labs/recipebook/backend/config"
	"github.com/saucepan-labs/recipebook/backend/internal/api"
	"github.com/saucepan-labs/recipebook/backend/internal/middleware"
	"github.com/saucepan-labs/recipebook/backend/internal/service"
)

// Deps collects everything the route table needs.
type Deps struct {
	Config       *config.Config
	Logger       *zap.Logger
	Auth         *service.AuthService
	Recipes      *service.RecipeService
	Media        service.MediaStore
	LoginLimiter *middleware.RateLimiter
}

// Setup configures the application routes.
func Setup(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(d.Logger))
	router.Use(middleware.CORS([]string{"http://localhost:5173"}))

	if d.Config.MediaRoot != "" {
		router.Static("/media", d.Config.MediaRoot)
	}

	authHandler := api.NewAuthHandler(d.Auth, d.Logger)
	recipeHandler := api.NewRecipeHandler(d.Recipes, d.Media, d.Logger)

	router.GET("/", api.Home)
	router.POST("/register/", authHandler.Register)

	login := router.Group("")
	if d.LoginLimiter != nil {
		login.Use(d.LoginLimiter.Middleware())
	}
	login.POST("/login/", authHandler.Login)

	protected := router.Group("")
	protected.Use(middleware.RequireLogin(d.Auth))
	{
		protected.POST("/logout/", authHandler.Logout)
		protected.GET("/about/", api.About)

		protected.GET("/recipes/", recipeHandler.ListRecipes)
		protected.GET("/recipes/:id", recipeHandler.GetRecipe)

		protected.GET("/search/", recipeHandler.SearchForm)
		protected.POST("/search/", recipeHandler.Search)

		protected.GET("/add/", recipeHandler.NewRecipeForm)
		protected.POST("/add/", recipeHandler.AddRecipe)
	}

	return router
}

// DefaultLoginLimit is the brute-force guard applied to the login
// endpoint when Redis is available.
func DefaultLoginLimit() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Window:    time.Minute,
		Limit:     10,
		KeyPrefix: "login_rate",
	}
}
