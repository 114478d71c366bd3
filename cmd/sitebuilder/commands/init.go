package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitebuilder/internal/scaffold"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	ProjectPath string `name:"project-path" short:"p" help:"Directory to create the sample project in" default:"." type:"path"`
	OverrideGit bool   `name:"override-git" help:"Write the project even when the directory is not inside a git repository"`
}

func (i *InitCmd) Run(g *Global, _ *CLI) error {
	root, err := scaffold.Generate(i.ProjectPath, scaffold.Options{
		OverrideGit: i.OverrideGit,
		Logger:      g.Logger,
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.Out, "Sample project created in %s\n", root)
	_, _ = fmt.Fprintf(g.Out, "Run: sitebuilder build --project-path %s\n", root)
	return nil
}
