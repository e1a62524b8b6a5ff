package cssns

import "regexp"

// Pattern decides whether a class token matches.
// *regexp.Regexp satisfies it, as do the matchers in package tw.
type Pattern interface {
	MatchString(s string) bool
}

// Config is the raw options object accepted by Normalize.
// Nil patterns fall back to the defaults below.
type Config struct {
	// Namespace is the prefix applied to matching tokens. Only the last
	// path segment is kept, so "components/Button.jsx" becomes "Button".
	Namespace string

	// Include selects tokens eligible for prefixing.
	// Default: DefaultInclude (tokens starting with a lowercase letter)
	Include Pattern

	// Exclude exempts tokens even if Include matched them.
	// Default: DefaultExclude (the empty token only)
	Exclude Pattern

	// Self selects tokens replaced by the bare namespace.
	// Default: DefaultSelf (exactly "this")
	Self Pattern
}

// Default pattern sources. Lowercase-first includes keep already
// namespaced tokens ("Button-row") from being prefixed twice.
const (
	DefaultInclude = `^[a-z]`
	DefaultExclude = `^$`
	DefaultSelf    = `^this$`
)

var (
	defaultInclude = regexp.MustCompile(DefaultInclude)
	defaultExclude = regexp.MustCompile(DefaultExclude)
	defaultSelf    = regexp.MustCompile(DefaultSelf)
)

// AnyOf returns a Pattern matching when any of patterns matches.
// Nil entries are skipped.
func AnyOf(patterns ...Pattern) Pattern {
	kept := make(anyOf, 0, len(patterns))
	for _, p := range patterns {
		if p != nil && !isNil(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

type anyOf []Pattern

func (a anyOf) MatchString(s string) bool {
	for _, p := range a {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
