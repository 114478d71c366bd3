// Package git reads version-control history for source documents.
//
// Lookups are best-effort: a missing repository, an unreadable history or an
// untracked file never fails a build, callers fall back to declared dates.
package git
