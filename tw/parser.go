package tw

import "strings"

// Parse splits a class token into variant modifiers and base utility.
// "hover:dark:bg-blue-500" → Class{State: StateHover, DarkMode: true, Base: "bg-blue-500"}
// "md:w-[33%]" → Class{Breakpoint: BreakpointMD, Arbitrary: {Property: "w", Value: "33%"}}
func Parse(token string) Class {
	parts := splitVariants(token)

	c := Class{
		Raw:        token,
		Breakpoint: BreakpointBase,
		State:      StateDefault,
		Base:       parts[len(parts)-1], // Last part is always the base utility
	}
	if len(parts) > 1 {
		c.Variants = parts[:len(parts)-1]
	}

	for _, v := range c.Variants {
		switch v {
		// State variants
		case "hover":
			c.State = StateHover
		case "focus":
			c.State = StateFocus
		case "active":
			c.State = StateActive
		case "disabled":
			c.State = StateDisabled
		case "placeholder":
			c.State = StatePlaceholder

		// Dark mode
		case "dark":
			c.DarkMode = true

		// Responsive breakpoints
		case "sm":
			c.Breakpoint = BreakpointSM
		case "md":
			c.Breakpoint = BreakpointMD
		case "lg":
			c.Breakpoint = BreakpointLG
		case "xl":
			c.Breakpoint = BreakpointXL
		case "2xl":
			c.Breakpoint = Breakpoint2XL
		}
	}

	if strings.HasPrefix(c.Base, "!") {
		c.Important = true
		c.Base = c.Base[1:]
	} else if len(c.Base) > 1 && strings.HasSuffix(c.Base, "!") {
		c.Important = true
		c.Base = c.Base[:len(c.Base)-1]
	}
	if len(c.Base) > 1 && c.Base[0] == '-' {
		c.Negative = true
		c.Base = c.Base[1:]
	}

	// Check if base class is an arbitrary value: property-[value]
	if strings.Contains(c.Base, "[") && strings.HasSuffix(c.Base, "]") {
		c.Arbitrary = extractArbitraryValue(c.Base)
		c.Base = "" // Clear base class since we're using arbitrary
	}

	return c
}

// splitVariants splits on ":" outside of brackets and parentheses, so
// "bg-[url(https://x)]" stays one part.
func splitVariants(token string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				parts = append(parts, token[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, token[start:])
}

// extractArbitraryValue parses arbitrary value syntax
// "w-[33%]" → ArbitraryValue{Property: "w", Value: "33%"}
// "[mask-type:alpha]" → ArbitraryValue{Property: "", Value: "mask-type:alpha"}
func extractArbitraryValue(class string) *ArbitraryValue {
	// Find the opening bracket
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	property := strings.TrimSuffix(class[:bracketIdx], "-") // Remove trailing dash
	value := strings.TrimSuffix(class[bracketIdx+1:], "]")

	return &ArbitraryValue{
		Property: property,
		Value:    value,
	}
}

// IsUtility reports whether token is a Tailwind utility class, with or
// without variants.
func IsUtility(token string) bool {
	return Utilities.MatchString(token)
}

// Matcher matches Tailwind utility tokens. It satisfies cssns.Pattern,
// so it can serve as an exclude pattern that keeps utilities unprefixed.
type Matcher struct {
	names    map[string]struct{}
	prefixes []string
}

// Utilities matches the built-in utility set.
var Utilities = Matcher{}

// NewMatcher extends the built-in set with theme-specific utilities.
// Names ending in "-" are families ("brand-" matches "brand-500"),
// anything else is matched exactly.
func NewMatcher(extra ...string) Matcher {
	m := Matcher{names: make(map[string]struct{})}
	for _, e := range extra {
		if strings.HasSuffix(e, "-") {
			m.prefixes = append(m.prefixes, e)
		} else {
			m.names[e] = struct{}{}
		}
	}
	return m
}

// MatchString implements cssns.Pattern.
func (m Matcher) MatchString(token string) bool {
	c := Parse(token)
	if c.Arbitrary != nil {
		return c.Arbitrary.Property == "" || m.isName(c.Arbitrary.Property) || m.isFamily(c.Arbitrary.Property+"-")
	}
	if c.Base == "" {
		return false
	}
	return m.isName(c.Base) || m.hasPrefix(c.Base)
}

func (m Matcher) isName(s string) bool {
	if _, ok := utilities[s]; ok {
		return true
	}
	_, ok := m.names[s]
	return ok
}

func (m Matcher) hasPrefix(s string) bool {
	for _, p := range prefixes {
		if len(s) > len(p) && strings.HasPrefix(s, p) {
			return true
		}
	}
	for _, p := range m.prefixes {
		if len(s) > len(p) && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func (m Matcher) isFamily(p string) bool {
	for _, f := range prefixes {
		if f == p {
			return true
		}
	}
	for _, f := range m.prefixes {
		if f == p {
			return true
		}
	}
	return false
}
