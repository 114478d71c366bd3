package git

import (
	"github.com/go-git/go-git/v5"
)

// IsRepository reports whether dir is inside a git working tree.
func IsRepository(dir string) bool {
	_, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// HeadCommit returns the abbreviated HEAD commit of the repository enclosing
// dir, or "" when there is none.
func HeadCommit(dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	ref, err := repo.Head()
	if err != nil {
		return ""
	}
	return ref.Hash().String()[:8]
}
