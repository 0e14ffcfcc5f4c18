package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/saucepan-labs/recipebook/backend/config"
	"github.com/saucepan-labs/recipebook/backend/internal/database"
	"github.com/saucepan-labs/recipebook/backend/internal/model"
)

var sampleRecipes = []model.Recipe{
	{Name: "Tea", CookingTime: 5, Ingredients: "tea-leaves, water, sugar"},
	{Name: "Pasta", CookingTime: 30, Ingredients: "Tomato, Pasta"},
	{Name: "Salad", CookingTime: 10, Ingredients: "Lettuce, Tomato, Cucumber"},
	{Name: "Beef Stew", CookingTime: 120, Ingredients: "beef, onion, carrot, potato, stock"},
	{Name: "Omelette", CookingTime: 8, Ingredients: "eggs, butter, cheese, chives"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	user := model.User{
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: string(hashed),
	}
	if err := db.Where("email = ?", user.Email).FirstOrCreate(&user).Error; err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}

	for _, recipe := range sampleRecipes {
		r := recipe
		if err := db.Where("name = ?", r.Name).FirstOrCreate(&r).Error; err != nil {
			log.Fatalf("failed to seed recipe %q: %v", recipe.Name, err)
		}
	}

	log.Printf("seeded %d recipes and user %s", len(sampleRecipes), user.Email)
}
