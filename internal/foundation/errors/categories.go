package errors

import "maps"

// ErrorCategory classifies a failure so the CLI can report it and pick an exit code.
type ErrorCategory string

const (
	// Content pipeline failures.
	CategoryMissingFrontmatter    ErrorCategory = "missing_frontmatter"
	CategoryMalformedMetadata     ErrorCategory = "malformed_metadata"
	CategoryInvalidDate           ErrorCategory = "invalid_date"
	CategoryMissingTemplateMarker ErrorCategory = "missing_template_marker"
	CategoryTemplateNotFound      ErrorCategory = "template_not_found"
	CategoryRender                ErrorCategory = "render"

	// Project setup failures.
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	CategoryIO       ErrorCategory = "io"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Aborts the run
	SeverityError   ErrorSeverity = "error"   // Fails the current page
	SeverityWarning ErrorSeverity = "warning" // Reported, output still written
	SeverityInfo    ErrorSeverity = "info"
)

// Context keys used across the pipeline.
const (
	ContextPath     = "path"
	ContextTemplate = "template"
	ContextField    = "field"
)

// ErrorContext provides structured context for errors.
type ErrorContext map[string]any

// Set adds or updates a context value.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}

// Get retrieves a context value.
func (c ErrorContext) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	value, exists := c[key]
	return value, exists
}

// GetString retrieves a string context value.
func (c ErrorContext) GetString(key string) (string, bool) {
	if value, exists := c.Get(key); exists {
		if str, ok := value.(string); ok {
			return str, true
		}
	}
	return "", false
}

// Merge combines two contexts, with other taking precedence.
func (c ErrorContext) Merge(other ErrorContext) ErrorContext {
	if c == nil {
		return other
	}
	if other == nil {
		return c
	}
	result := make(ErrorContext, len(c)+len(other))
	maps.Copy(result, c)
	maps.Copy(result, other)
	return result
}
