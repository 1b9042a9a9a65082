package richtext

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicyOnce sync.Once
	richTextPolicy     *bluemonday.Policy
)

// Sanitize strips every HTML construct except the tags the converter
// recognizes (b, i, u, br and anchors with an href). It is an optional
// pre-pass for snapshots whose rich text comes from untrusted editors; the
// default pipeline skips it so unrecognized markup passes through verbatim.
func Sanitize(markup string) string {
	if markup == "" {
		return ""
	}
	return strings.TrimSpace(sanitizer().Sanitize(markup))
}

func sanitizer() *bluemonday.Policy {
	richTextPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "i", "u", "br")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		richTextPolicy = policy
	})
	return richTextPolicy
}
