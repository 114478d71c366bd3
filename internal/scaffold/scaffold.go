// Package scaffold writes a ready-to-build sample project.
package scaffold

import (
	"embed"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sitebuilder/internal/fsutil"
	"git.home.luguber.info/inful/sitebuilder/internal/git"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
)

// ProjectDir is the directory created inside the target path.
const ProjectDir = "sitebuilder-project"

const (
	sampleRoot  = "sample"
	samplePost  = "content/blog/hello-world.md"
	datePattern = "DATE"
)

//go:embed sample
var sampleFS embed.FS

// Options controls project generation.
type Options struct {
	// OverrideGit allows writing outside a git working tree.
	OverrideGit bool
	Logger      *slog.Logger
	Now         func() time.Time
}

// Generate writes the sample project into {target}/sitebuilder-project and
// returns its path. Existing files with the same names are overwritten, so
// target must be inside a git repository unless OverrideGit is set.
func Generate(target string, opts Options) (string, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if !opts.OverrideGit && !git.IsRepository(target) {
		return "", errors.ValidationError("target is not inside a git repository; files could be overwritten irreversibly (use --override-git to continue)").
			WithPath(target).
			Build()
	}

	root := filepath.Join(target, ProjectDir)
	today := opts.Now().Format(time.DateOnly)

	err := fs.WalkDir(sampleFS, sampleRoot, func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := sampleFS.ReadFile(name)
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(name, sampleRoot+"/")
		if rel == samplePost {
			data = []byte(strings.ReplaceAll(string(data), datePattern, today))
			rel = path.Join(path.Dir(rel), today+"-"+path.Base(rel))
		}

		dest := filepath.Join(root, filepath.FromSlash(rel))
		if err := fsutil.WriteFile(dest, data); err != nil {
			return errors.WrapError(err, errors.CategoryIO, "cannot write sample file").
				WithPath(dest).
				Build()
		}
		opts.Logger.Debug("Wrote sample file", logfields.Path(dest))
		return nil
	})
	if err != nil {
		return "", err
	}

	opts.Logger.Info("Sample project created", logfields.Path(root))
	return root, nil
}
