package commands

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitebuilder/internal/config"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
	"git.home.luguber.info/inful/sitebuilder/internal/metrics"
	"git.home.luguber.info/inful/sitebuilder/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	ProjectPath string `name:"project-path" short:"p" help:"Project directory containing config.yml" default:"." type:"path"`
	Drafts      string `help:"Override the draft policy from config.yml (build, dev or hide)"`
	MetricsFile string `name:"metrics-file" help:"Write build metrics in Prometheus textfile format" type:"path"`
}

func (b *BuildCmd) Run(g *Global, _ *CLI) error {
	cfg, err := config.Load(b.ProjectPath)
	if err != nil {
		return err
	}

	opts := []site.Option{site.WithLogger(g.Logger)}
	if b.Drafts != "" {
		policy, err := config.ParseDraftPolicy(b.Drafts)
		if err != nil {
			return err
		}
		g.Logger.Info("Draft policy overridden via CLI flag", logfields.DraftPolicy(string(policy)))
		opts = append(opts, site.WithDraftPolicy(policy))
	}

	var reg *prom.Registry
	if b.MetricsFile != "" {
		reg = prom.NewRegistry()
		opts = append(opts, site.WithRecorder(metrics.NewPrometheusRecorder(reg)))
	}

	_, _ = fmt.Fprintln(g.Out, "Building", cfg.Title)
	report, buildErr := site.NewBuilder(cfg, opts...).Build()

	// Metrics are written for failed builds too.
	if reg != nil {
		if err := metrics.WriteTextfile(b.MetricsFile, reg); err != nil {
			g.Logger.Warn("Failed to write metrics file", logfields.Path(b.MetricsFile), logfields.Error(err))
		}
	}
	if buildErr != nil {
		return buildErr
	}

	_, _ = fmt.Fprintf(g.Out, "Built %d pages and %d blog entries (%d listed, %d drafts, %d index pages) in %s\n",
		report.Pages, report.Entries, report.Listed, report.Drafts, report.IndexPages, report.Duration.Round(time.Millisecond))
	_, _ = fmt.Fprintf(g.Out, "Output written to %s\n", report.OutputDir)
	return nil
}
