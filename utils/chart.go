package utils

import (
	"io"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
)

// ErrNotEnoughData is returned when fewer than two generations were recorded
var ErrNotEnoughData = errors.New("not enough generations to chart")

// WritePopulationChart renders population per generation as a PNG line chart
func WritePopulationChart(w io.Writer, s *Stats) error {
	if len(s.Populations) < 2 {
		return errors.Wrapf(ErrNotEnoughData, "[WritePopulationChart] %d generation(s) recorded", len(s.Populations))
	}

	xs := make([]float64, len(s.Populations))
	ys := make([]float64, len(s.Populations))
	for i, p := range s.Populations {
		xs[i] = float64(i)
		ys[i] = float64(p)
	}

	graph := chart.Chart{
		Title: "Population",
		XAxis: chart.XAxis{Name: "Generation"},
		YAxis: chart.YAxis{
			Name: "Living cells",
			// A fixed range keeps still lifes (flat lines) renderable
			Range: &chart.ContinuousRange{Min: 0, Max: float64(max(s.PeakPopulation, 1))},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "living cells",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return errors.Wrap(err, "[WritePopulationChart] render failed")
	}
	return nil
}
