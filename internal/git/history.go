package git

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
)

// DateLayout is the calendar date format used for last-modified dates.
const DateLayout = "2006-01-02"

// History answers last-modified queries from the repository enclosing each file.
type History struct {
	repos  map[string]*repository
	logger *slog.Logger
}

type repository struct {
	repo *git.Repository
	root string
}

// NewHistory creates a history reader. Repositories are opened on first use.
func NewHistory(logger *slog.Logger) *History {
	if logger == nil {
		logger = slog.Default()
	}
	return &History{repos: make(map[string]*repository), logger: logger}
}

// LastModified returns the committer date of the latest commit touching path.
// ok is false when no history is available; ok is true with an empty date
// when the file is inside a repository but has never been committed.
func (h *History) LastModified(path string) (date string, ok bool) {
	abs, err := resolve(path)
	if err != nil {
		h.logger.Debug("Cannot resolve path for history lookup", logfields.Path(path), logfields.Error(err))
		return "", false
	}

	r := h.open(filepath.Dir(abs))
	if r == nil {
		return "", false
	}

	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)

	iter, err := r.repo.Log(&git.LogOptions{FileName: &rel})
	if err != nil {
		// An empty repository has no HEAD yet.
		h.logger.Debug("History lookup failed", logfields.Path(path), logfields.Error(err))
		return "", false
	}
	defer iter.Close()

	commit, err := iter.Next()
	if errors.Is(err, io.EOF) {
		return "", true
	}
	if err != nil {
		h.logger.Debug("History lookup failed", logfields.Path(path), logfields.Error(err))
		return "", false
	}
	return commit.Committer.When.Format(DateLayout), true
}

func (h *History) open(dir string) *repository {
	if r, seen := h.repos[dir]; seen {
		return r
	}

	var r *repository
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err == nil {
		if wt, wtErr := repo.Worktree(); wtErr == nil {
			if root, rootErr := resolve(wt.Filesystem.Root()); rootErr == nil {
				r = &repository{repo: repo, root: root}
			}
		}
	}
	h.repos[dir] = r
	return r
}

func resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}
