package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"netdash/internal/artifact"
)

// ClusterPaths renders the per-cluster path-length distribution: one
// vertical min-to-max segment per cluster with a marker at the average.
// Shorter segments indicate tight-knit clusters.
func ClusterPaths(res artifact.ClusterResult) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Cluster Path Distribution"
	p.Y.Label.Text = "Path length"

	n := len(res.ClusterAvg)
	if n == 0 || len(res.ClusterMin) != n || len(res.ClusterMax) != n {
		return writeSVG(p, 4*vg.Inch, 2.6*vg.Inch, "cluster_paths")
	}

	for i := 0; i < n; i++ {
		seg, err := plotter.NewLine(plotter.XYs{
			{X: float64(i), Y: res.ClusterMin[i]},
			{X: float64(i), Y: res.ClusterMax[i]},
		})
		if err != nil {
			continue
		}
		seg.LineStyle.Color = plotutil.Color(i)
		seg.LineStyle.Width = vg.Points(2)
		p.Add(seg)
	}

	avgs := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		avgs[i] = plotter.XY{X: float64(i), Y: res.ClusterAvg[i]}
	}
	scatter, err := plotter.NewScatter(avgs)
	if err == nil {
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(scatter)
	}

	if len(res.ClusterNames) == n {
		p.NominalX(res.ClusterNames...)
		p.X.Tick.Label.Rotation = 0.9
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	return writeSVG(p, 4*vg.Inch, 2.6*vg.Inch, "cluster_paths")
}
