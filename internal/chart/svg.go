// Package chart renders the dashboard figures as SVG. Every renderer accepts
// numeric arrays and labels and degrades to a valid empty figure on empty
// input; callers never need to pre-validate chart data.
package chart

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"netdash/pkg/errors"
)

const emptyFigure = `<svg xmlns="http://www.w3.org/2000/svg" width="640" height="320"><rect width="100%%" height="100%%" fill="#ffffff"/><text x="320" y="160" text-anchor="middle" fill="#636e72" font-family="sans-serif" font-size="14">%s</text></svg>`

// placeholder returns a minimal standalone figure carrying a message, used
// when a renderer has nothing to draw.
func placeholder(message string) []byte {
	return []byte(fmt.Sprintf(emptyFigure, message))
}

func writeSVG(p *plot.Plot, w, h vg.Length, name string) ([]byte, error) {
	wt, err := p.WriterTo(w, h, "svg")
	if err != nil {
		return nil, errors.NewChartRender(name, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, errors.NewChartRender(name, err)
	}
	return buf.Bytes(), nil
}
