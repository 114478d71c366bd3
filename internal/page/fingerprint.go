package page

import (
	"strings"

	"github.com/inful/mdfp"
	"gopkg.in/yaml.v3"
)

// Fingerprint computes the content fingerprint of a document from its
// metadata block and body. A fingerprint field already present in the block
// is excluded, so a stored fingerprint can be verified against the document.
func Fingerprint(block []byte, body string) (string, error) {
	fields := map[string]any{}
	if err := yaml.Unmarshal(block, &fields); err != nil {
		return "", err
	}
	delete(fields, mdfp.FingerprintField)

	canonical := ""
	if len(fields) > 0 {
		out, err := yaml.Marshal(fields)
		if err != nil {
			return "", err
		}
		canonical = strings.TrimSuffix(string(out), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(canonical, body), nil
}
