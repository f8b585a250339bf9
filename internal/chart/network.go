package chart

import (
	"image/color"
	"math"
	"math/rand"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"netdash/internal/artifact"
)

var edgeColor = color.RGBA{R: 0xb2, G: 0xbe, B: 0xc3, A: 0xff}

// Network renders the social network layout for one cluster resolution.
// Node placement is derived from the render seed, so repeated rendering in
// the same process produces the same figure. Clusters are anchored on a
// circle and their members jittered around the anchor, which keeps
// friendship circles visually tight and bridge nodes in between.
func Network(res artifact.ClusterResult, seed int64) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Social Network"
	p.HideAxes()

	if res.Nodes() == 0 {
		return writeSVG(p, 7*vg.Inch, 5.5*vg.Inch, "network")
	}

	xs, ys := nodePositions(res, seed)

	// Edges first so nodes draw on top of them.
	edges, err := res.Graph().Edges()
	if err == nil {
		for _, e := range edges {
			line, err := plotter.NewLine(plotter.XYs{
				{X: xs[e.Source], Y: ys[e.Source]},
				{X: xs[e.Target], Y: ys[e.Target]},
			})
			if err != nil {
				continue
			}
			line.LineStyle.Color = edgeColor
			line.LineStyle.Width = vg.Points(0.5)
			p.Add(line)
		}
	}

	// One scatter per cluster so the legend lists cluster names.
	for id := range res.ClusterNames {
		var pts plotter.XYs
		for node, assigned := range res.Clusters {
			if assigned == id {
				pts = append(pts, plotter.XY{X: xs[node], Y: ys[node]})
			}
		}
		if len(pts) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			continue
		}
		scatter.GlyphStyle.Color = plotutil.Color(id)
		scatter.GlyphStyle.Radius = vg.Points(3.5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(res.ClusterName(id), scatter)
	}
	p.Legend.Top = true

	return writeSVG(p, 7*vg.Inch, 5.5*vg.Inch, "network")
}

// nodePositions places each cluster's anchor on a circle and scatters its
// members around the anchor with seeded jitter.
func nodePositions(res artifact.ClusterResult, seed int64) (xs, ys []float64) {
	rng := rand.New(rand.NewSource(seed))
	n := res.Nodes()
	k := len(res.ClusterNames)
	if k == 0 {
		k = 1
	}

	xs = make([]float64, n)
	ys = make([]float64, n)
	for node := 0; node < n; node++ {
		id := 0
		if node < len(res.Clusters) {
			id = res.Clusters[node]
		}
		angle := 2 * math.Pi * float64(id) / float64(k)
		ax, ay := 10*math.Cos(angle), 10*math.Sin(angle)

		// Uniform jitter over a disc around the anchor.
		r := 3.5 * math.Sqrt(rng.Float64())
		theta := 2 * math.Pi * rng.Float64()
		xs[node] = ax + r*math.Cos(theta)
		ys[node] = ay + r*math.Sin(theta)
	}
	return xs, ys
}
