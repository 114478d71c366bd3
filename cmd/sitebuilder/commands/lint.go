package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitebuilder/internal/config"
	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sitebuilder/internal/lint"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	ProjectPath string `name:"project-path" short:"p" help:"Project directory containing config.yml" default:"." type:"path"`
	Format      string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet       bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
}

func (l *LintCmd) Run(g *Global, _ *CLI) error {
	cfg, err := config.Load(l.ProjectPath)
	if err != nil {
		return err
	}

	linter := lint.NewLinter(&lint.Config{Quiet: l.Quiet, Format: l.Format})
	result, err := linter.LintProject(cfg)
	if err != nil {
		return fmt.Errorf("linting failed: %w", err)
	}

	if err := lint.NewFormatter(l.Format).Format(g.Out, result, l.ProjectPath); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if n := result.ErrorCount(); n > 0 {
		return errors.ValidationError(fmt.Sprintf("lint found %d error(s)", n)).
			WithPath(l.ProjectPath).
			Build()
	}
	return nil
}
