package foundation

import (
	"slices"
	"strings"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalizer maps user-facing names to enum values, ignoring case and
// surrounding whitespace.
type Normalizer[T comparable] struct {
	values map[string]T
	names  []string
}

// NewNormalizer creates a normalizer from name->value pairs.
func NewNormalizer[T comparable](values map[string]T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	names := make([]string, 0, len(values))
	for k, v := range values {
		key := normalize(k)
		normalized[key] = v
		names = append(names, key)
	}
	slices.Sort(names)
	return &Normalizer[T]{values: normalized, names: names}
}

// Normalize returns the value for raw and whether it was recognized.
func (n *Normalizer[T]) Normalize(raw string) (T, bool) {
	v, ok := n.values[normalize(raw)]
	return v, ok
}

// Names lists the accepted names in sorted order.
func (n *Normalizer[T]) Names() []string {
	return slices.Clone(n.names)
}
