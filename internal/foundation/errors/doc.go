// Package errors provides the classified error type used across sitebuilder.
//
// Every failure the content pipeline can produce has its own category
// (missing frontmatter, malformed metadata, invalid date, template problems,
// io) so callers and tests can tell them apart with HasCategory, and the CLI
// can map them to exit codes.
//
// Example usage:
//
//	err := errors.InvalidDate("publish date is not YYYY-MM-DD").
//		WithPath(sourcePath).
//		WithContext(errors.ContextField, "publish_date").
//		WithCause(parseErr).
//		Build()
package errors
