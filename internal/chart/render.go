package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/saucepan-labs/recipebook/backend/internal/model"
)

// Kind selects the chart to render.
type Kind string

const (
	KindBar  Kind = "bar"
	KindPie  Kind = "pie"
	KindLine Kind = "line"
)

// Kinds lists the selectable chart kinds for form population.
func Kinds() []Kind {
	return []Kind{KindBar, KindPie, KindLine}
}

const (
	timeChartTitle = "Cooking Time by Recipe"
	pieChartTitle  = "Recipe Difficulty Breakdown"
	xAxisLabel     = "Recipe Name"
	yAxisLabel     = "Cooking Time (minutes)"

	chartWidth  = 600
	chartHeight = 300
)

// difficultyOrder fixes the slice order of the pie chart.
var difficultyOrder = []model.Difficulty{
	model.DifficultyEasy,
	model.DifficultyMedium,
	model.DifficultyIntermediate,
	model.DifficultyHard,
}

// Render draws the requested chart for the summary and returns it as a
// base64-encoded PNG. An empty summary or an unrecognized kind yields
// an empty string and no error. Each call draws onto its own buffer;
// nothing is shared between invocations.
func Render(kind Kind, s Summary) (string, error) {
	if s.Empty() {
		return "", nil
	}

	var buf bytes.Buffer
	var err error
	switch kind {
	case KindBar:
		err = renderBar(s, &buf)
	case KindPie:
		err = renderPie(s, &buf)
	case KindLine:
		err = renderLine(s, &buf)
	default:
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to render %s chart: %w", kind, err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func renderBar(s Summary, buf *bytes.Buffer) error {
	bars := make([]gochart.Value, 0, len(s.Rows))
	for _, row := range s.Rows {
		bars = append(bars, gochart.Value{Label: row.Name, Value: row.CookingTime})
	}

	bc := gochart.BarChart{
		Title:  timeChartTitle,
		Width:  chartWidth,
		Height: chartHeight,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40},
		},
		YAxis: gochart.YAxis{Name: yAxisLabel},
		Bars:  bars,
	}
	return bc.Render(gochart.PNG, buf)
}

func renderLine(s Summary, buf *bytes.Buffer) error {
	xs := make([]float64, 0, len(s.Rows))
	ys := make([]float64, 0, len(s.Rows))
	ticks := make([]gochart.Tick, 0, len(s.Rows))
	for i, row := range s.Rows {
		xs = append(xs, float64(i))
		ys = append(ys, row.CookingTime)
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: row.Name})
	}

	lc := gochart.Chart{
		Title:  timeChartTitle,
		Width:  chartWidth,
		Height: chartHeight,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40},
		},
		XAxis: gochart.XAxis{
			Name:  xAxisLabel,
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{Name: yAxisLabel},
		Series: []gochart.Series{
			gochart.ContinuousSeries{XValues: xs, YValues: ys},
		},
	}
	return lc.Render(gochart.PNG, buf)
}

func renderPie(s Summary, buf *bytes.Buffer) error {
	pc := gochart.PieChart{
		Title:  pieChartTitle,
		Width:  chartHeight,
		Height: chartHeight,
		Values: pieSlices(s),
	}
	return pc.Render(gochart.PNG, buf)
}

// pieSlices groups rows by difficulty and labels each slice with its
// share of the total row count to one decimal.
func pieSlices(s Summary) []gochart.Value {
	counts := make(map[model.Difficulty]int)
	for _, row := range s.Rows {
		counts[row.Difficulty]++
	}

	total := float64(len(s.Rows))
	slices := make([]gochart.Value, 0, len(counts))
	for _, label := range difficultyOrder {
		count := counts[label]
		if count == 0 {
			continue
		}
		pct := float64(count) / total * 100
		slices = append(slices, gochart.Value{
			Value: float64(count),
			Label: fmt.Sprintf("%s: %.1f%%", label, pct),
		})
	}
	return slices
}
