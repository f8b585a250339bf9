package chart

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"netdash/internal/artifact"
	"netdash/pkg/errors"
)

var seriesColors = []drawing.Color{
	drawing.ColorBlue,
	{R: 0x6c, G: 0x5c, B: 0xe7, A: 0xff},
	{R: 0x3b, G: 0x73, B: 0x8f, A: 0xff},
	{R: 0xb2, G: 0xbe, B: 0xc3, A: 0xff},
}

// Users renders the mutual connection distribution: one continuous series
// per statistics column, users ordered as they appear in the table. The
// columns are positional, so series carry positional names.
func Users(stats artifact.UserStats) ([]byte, error) {
	// go-chart needs at least two points per series.
	if stats.Rows() < 2 {
		return placeholder("No user statistics available"), nil
	}

	xs := make([]float64, stats.Rows())
	for i := range xs {
		xs[i] = float64(i + 1)
	}

	series := make([]chart.Series, 0, len(stats.Columns))
	for col, values := range stats.Columns {
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("Series %d", col),
			XValues: xs,
			YValues: values,
			Style: chart.Style{
				StrokeColor: seriesColors[col%len(seriesColors)],
				StrokeWidth: 2,
			},
		})
	}

	ch := chart.Chart{
		Width:  640,
		Height: 320,
		Background: chart.Style{
			Padding: chart.Box{Top: 16, Left: 12, Right: 12, Bottom: 8},
		},
		XAxis:  chart.XAxis{Name: "User"},
		YAxis:  chart.YAxis{Name: "Connections"},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, errors.NewChartRender("users", err)
	}
	return buf.Bytes(), nil
}
