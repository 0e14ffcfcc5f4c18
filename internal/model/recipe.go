package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultPictureURL is served when a recipe was created without an upload.
const DefaultPictureURL = "/media/no_picture.jpg"

const (
	MaxNameLength        = 120
	MaxIngredientsLength = 400
)

var (
	ErrNameRequired        = errors.New("name is required")
	ErrNameTooLong         = errors.New("name must be at most 120 characters")
	ErrNegativeCookingTime = errors.New("cooking time must not be negative")
	ErrIngredientsRequired = errors.New("ingredients must contain at least one entry")
	ErrIngredientsTooLong  = errors.New("ingredients must be at most 400 characters")
)

// Recipe is one dish in the catalog. Ingredients is a single
// comma-separated text field; IngredientList is the canonical way to
// read it.
type Recipe struct {
	ID          uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Name        string         `gorm:"size:120;not null" json:"name"`
	CookingTime float64        `gorm:"not null" json:"cooking_time"`
	Ingredients string         `gorm:"size:400;not null" json:"ingredients"`
	PictureURL  string         `gorm:"size:255" json:"picture_url"`
}

// BeforeCreate assigns the identifier and the placeholder picture.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.PictureURL == "" {
		r.PictureURL = DefaultPictureURL
	}
	return nil
}

// IngredientList splits the ingredients field on commas and trims each
// token, dropping empties. Every consumer of the field goes through
// this method so the tokenization cannot drift between components.
func (r *Recipe) IngredientList() []string {
	parts := strings.Split(r.Ingredients, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Difficulty derives the difficulty label from cooking time and
// ingredient count. Never persisted.
func (r *Recipe) Difficulty() Difficulty {
	return ClassifyDifficulty(r.CookingTime, len(r.IngredientList()))
}

// AbsoluteURL returns the detail route for this recipe.
func (r *Recipe) AbsoluteURL() string {
	return "/recipes/" + r.ID.String()
}

// Validate enforces the entity invariants. Violations are joined so a
// submission failing several fields reports all of them; callers match
// with errors.Is. Non-emptiness of the ingredient list is checked here
// so a blank field cannot be persisted through any entry point.
func (r *Recipe) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, ErrNameRequired)
	} else if len(r.Name) > MaxNameLength {
		errs = append(errs, ErrNameTooLong)
	}
	if r.CookingTime < 0 {
		errs = append(errs, ErrNegativeCookingTime)
	}
	if len(r.Ingredients) > MaxIngredientsLength {
		errs = append(errs, ErrIngredientsTooLong)
	} else if len(r.IngredientList()) == 0 {
		errs = append(errs, ErrIngredientsRequired)
	}
	return errors.Join(errs...)
}
