package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"netdash/internal/artifact"
)

// matrixGrid adapts a square matrix to the plotter.GridXYZ interface.
type matrixGrid struct {
	m [][]float64
}

func (g matrixGrid) Dims() (c, r int)   { return len(g.m), len(g.m) }
func (g matrixGrid) Z(c, r int) float64 { return g.m[r][c] }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }

// Closeness renders the inter-cluster affinity matrix as a heatmap. Darker
// cells mark cluster pairs with high mutual interaction.
func Closeness(res artifact.ClusterResult) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Inter-Cluster Affinity"
	p.HideAxes()

	if len(res.Closeness) == 0 {
		return writeSVG(p, 4*vg.Inch, 2.6*vg.Inch, "closeness")
	}

	h := plotter.NewHeatMap(matrixGrid{m: res.Closeness}, palette.Heat(12, 1))
	if h.Min == h.Max {
		// A uniform matrix would give the palette a zero-width range.
		h.Max = h.Min + 1
	}
	p.Add(h)

	return writeSVG(p, 4*vg.Inch, 2.6*vg.Inch, "closeness")
}
