// Package layout composes the dashboard page once at startup. The composer
// hands artifact data to the chart renderers and embeds whatever figures
// come back; it never inspects chart output.
package layout

import (
	"bytes"
	"context"
	"html/template"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"netdash/internal/artifact"
	"netdash/internal/chart"
	"netdash/pkg/errors"
)

// Input carries everything the composer needs: the loaded artifacts and the
// render seed drawn once per process. The same seed feeds both resolution
// tabs so their network layouts stay stable within one running instance.
type Input struct {
	Bundle artifact.Bundle
	Seed   int64
}

// Page is the fully composed dashboard, built once and served read-only.
type Page struct {
	Dashboard []byte
}

type tabData struct {
	ID        string
	Label     string
	Network   template.HTML
	Paths     template.HTML
	Closeness template.HTML
}

type pageData struct {
	Users template.HTML
	Tabs  []tabData
}

type loginData struct {
	Error string
}

var (
	dashboardTmpl = template.Must(template.New("dashboard").Parse(tmplDashboard))
	loginTmpl     = template.Must(template.New("login").Parse(tmplLogin))
)

// Compose renders all figures and assembles the static page tree. The tab
// charts render concurrently; a failure here is fatal to startup since the
// page is built exactly once.
func Compose(ctx context.Context, in Input, log *zap.Logger) (*Page, error) {
	tabs := []struct {
		id    string
		label string
		res   artifact.ClusterResult
	}{
		{id: "community", label: "Community View (8 Clusters)", res: in.Bundle.Community},
		{id: "granular", label: "Granular View (16 Clusters)", res: in.Bundle.Granular},
	}

	var usersSVG []byte
	tabSVGs := make([]struct{ network, paths, closeness []byte }, len(tabs))

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		svg, err := chart.Users(in.Bundle.Users)
		if err != nil {
			return err
		}
		usersSVG = svg
		return nil
	})
	for i := range tabs {
		i := i
		g.Go(func() error {
			svg, err := chart.Network(tabs[i].res, in.Seed)
			if err != nil {
				return err
			}
			tabSVGs[i].network = svg
			return nil
		})
		g.Go(func() error {
			svg, err := chart.ClusterPaths(tabs[i].res)
			if err != nil {
				return err
			}
			tabSVGs[i].paths = svg
			return nil
		})
		g.Go(func() error {
			svg, err := chart.Closeness(tabs[i].res)
			if err != nil {
				return err
			}
			tabSVGs[i].closeness = svg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data := pageData{Users: template.HTML(usersSVG)}
	for i, t := range tabs {
		data.Tabs = append(data.Tabs, tabData{
			ID:        t.id,
			Label:     t.label,
			Network:   template.HTML(tabSVGs[i].network),
			Paths:     template.HTML(tabSVGs[i].paths),
			Closeness: template.HTML(tabSVGs[i].closeness),
		})
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, data); err != nil {
		return nil, errors.NewLayoutCompose("dashboard", err)
	}

	log.Info("dashboard layout composed",
		zap.Int("bytes", buf.Len()),
		zap.Int64("seed", in.Seed),
		zap.Int("community_nodes", in.Bundle.Community.Nodes()),
		zap.Int("granular_nodes", in.Bundle.Granular.Nodes()),
		zap.Int("user_rows", in.Bundle.Users.Rows()),
	)

	return &Page{Dashboard: buf.Bytes()}, nil
}

// RenderLogin renders the login form, optionally with an inline error
// message under the heading.
func RenderLogin(errMsg string) ([]byte, error) {
	var buf bytes.Buffer
	if err := loginTmpl.Execute(&buf, loginData{Error: errMsg}); err != nil {
		return nil, errors.NewLayoutCompose("login", err)
	}
	return buf.Bytes(), nil
}
