package model

// Difficulty is a derived label, computed on demand and never stored.
type Difficulty string

const (
	DifficultyEasy         Difficulty = "Easy"
	DifficultyMedium       Difficulty = "Medium"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyHard         Difficulty = "Hard"
)

// ClassifyDifficulty maps cooking time (minutes) and ingredient count
// onto one of the four labels. Ten minutes and four ingredients are the
// boundaries; both fall on the harder side.
func ClassifyDifficulty(cookingTime float64, ingredientCount int) Difficulty {
	if cookingTime < 10 {
		if ingredientCount < 4 {
			return DifficultyEasy
		}
		return DifficultyMedium
	}
	if ingredientCount < 4 {
		return DifficultyIntermediate
	}
	return DifficultyHard
}
