package config

import (
	"strings"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
)

// DefaultLanguage is the feed language when none is configured.
const DefaultLanguage = "en-us"

// normalizeLanguage validates a BCP 47 tag and returns it in the lower-case
// form used by RSS channels.
func normalizeLanguage(raw string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryConfig, "invalid language tag "+raw).
			Fatal().
			WithContext(errors.ContextField, "language").
			Build()
	}
	return strings.ToLower(tag.String()), nil
}
