package richtext

import "regexp"

// The conversion is a fixed ordered sequence of independent pattern
// substitutions. Each substitution matches against original tag boundaries;
// nested or overlapping tags are not supported and produce deterministic but
// unspecified output (pinned by tests, see convert_test.go).
var substitutions = []struct {
	pattern *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`(?s)<b>(.*?)</b>`), `**$1**`},
	{regexp.MustCompile(`(?s)<i>(.*?)</i>`), `_${1}_`},
	// <u> pairs pass through unchanged: markdown has no native underline.
	{regexp.MustCompile(`(?s)<a href="([^"]*)"[^>]*>(.*?)</a>`), `[$2]($1)`},
	{regexp.MustCompile(`<br\s*/?>`), "\n"},
}

// ToProse converts a rich-text tag stream into prose markup. It is a total
// function: empty input maps to empty output, unrecognized tags pass through
// unchanged, and already-converted prose is left alone.
func ToProse(markup string) string {
	if markup == "" {
		return ""
	}
	out := markup
	for _, sub := range substitutions {
		out = sub.pattern.ReplaceAllString(out, sub.replace)
	}
	return out
}
