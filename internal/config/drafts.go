package config

import (
	"strings"

	"git.home.luguber.info/inful/sitebuilder/internal/foundation"
	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
)

// DraftPolicy decides what happens to draft pages.
type DraftPolicy string

const (
	DraftsBuild DraftPolicy = "build" // written, left out of listings
	DraftsDev   DraftPolicy = "dev"   // written and listed
	DraftsHide  DraftPolicy = "hide"  // neither written nor listed
)

var draftPolicies = foundation.NewNormalizer(map[string]DraftPolicy{
	string(DraftsBuild): DraftsBuild,
	string(DraftsDev):   DraftsDev,
	string(DraftsHide):  DraftsHide,
})

// ParseDraftPolicy canonicalizes user input. An empty value selects DraftsBuild.
func ParseDraftPolicy(raw string) (DraftPolicy, error) {
	if strings.TrimSpace(raw) == "" {
		return DraftsBuild, nil
	}
	if p, ok := draftPolicies.Normalize(raw); ok {
		return p, nil
	}
	return "", errors.ConfigError("unknown draft policy " + raw + " (want one of " + strings.Join(draftPolicies.Names(), ", ") + ")").
		WithContext(errors.ContextField, "drafts").
		Build()
}

// Writes reports whether a draft page is written to disk.
func (p DraftPolicy) Writes() bool {
	return p != DraftsHide
}

// Lists reports whether a draft page appears in listings and feeds.
func (p DraftPolicy) Lists() bool {
	return p == DraftsDev
}
