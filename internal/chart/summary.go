// Package chart turns a filtered recipe sequence into a summary table
// and an optional rendered chart.
package chart

import (
	"github.com/saucepan-labs/recipebook/backend/internal/model"
)

// Row is one line of the summary table.
type Row struct {
	Name        string           `json:"name"`
	CookingTime float64          `json:"cooking_time"`
	Difficulty  model.Difficulty `json:"difficulty"`
}

// Summary is the tabular aggregation of a filtered result set.
type Summary struct {
	Rows []Row `json:"rows"`
}

// Summarize computes the summary rows, classifying each recipe's
// difficulty on the way.
func Summarize(recipes []model.Recipe) Summary {
	rows := make([]Row, 0, len(recipes))
	for i := range recipes {
		rows = append(rows, Row{
			Name:        recipes[i].Name,
			CookingTime: recipes[i].CookingTime,
			Difficulty:  recipes[i].Difficulty(),
		})
	}
	return Summary{Rows: rows}
}

// Empty reports whether the summary has no rows.
func (s Summary) Empty() bool {
	return len(s.Rows) == 0
}
