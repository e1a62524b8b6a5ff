package cssns

import "github.com/agiangrant/cssns/tw"

// TailwindConfig returns a Config for components mixing their own class
// names with Tailwind utilities: "card flex p-4" becomes
// "Card-card flex p-4". Extra patterns are also excluded.
func TailwindConfig(namespace string, exclude ...Pattern) Config {
	return Config{
		Namespace: namespace,
		Exclude:   AnyOf(append([]Pattern{DefaultExcludePattern(), tw.Utilities}, exclude...)...),
	}
}

// DefaultExcludePattern returns the compiled DefaultExclude.
func DefaultExcludePattern() Pattern {
	return defaultExclude
}
