package tw

import "testing"

func TestParseWithVariants(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, Class)
	}{
		{
			name:  "plain utility",
			input: "bg-blue-500",
			validate: func(t *testing.T, c Class) {
				if c.Base != "bg-blue-500" {
					t.Errorf("expected Base=bg-blue-500, got %q", c.Base)
				}
				if c.Variants != nil {
					t.Errorf("expected no variants, got %v", c.Variants)
				}
			},
		},
		{
			name:  "hover and dark variants",
			input: "hover:dark:bg-blue-600",
			validate: func(t *testing.T, c Class) {
				if c.State != StateHover {
					t.Errorf("expected StateHover, got %v", c.State)
				}
				if !c.DarkMode {
					t.Error("expected DarkMode to be set")
				}
				if c.Base != "bg-blue-600" {
					t.Errorf("expected Base=bg-blue-600, got %q", c.Base)
				}
				if len(c.Variants) != 2 {
					t.Errorf("expected 2 variants, got %v", c.Variants)
				}
			},
		},
		{
			name:  "responsive breakpoint",
			input: "2xl:flex",
			validate: func(t *testing.T, c Class) {
				if c.Breakpoint != Breakpoint2XL {
					t.Errorf("expected Breakpoint2XL, got %v", c.Breakpoint)
				}
			},
		},
		{
			name:  "arbitrary value",
			input: "md:w-[33%]",
			validate: func(t *testing.T, c Class) {
				if c.Arbitrary == nil {
					t.Fatal("expected arbitrary value")
				}
				if c.Arbitrary.Property != "w" || c.Arbitrary.Value != "33%" {
					t.Errorf("unexpected arbitrary value %+v", *c.Arbitrary)
				}
				if c.Base != "" {
					t.Errorf("expected Base to be cleared, got %q", c.Base)
				}
			},
		},
		{
			name:  "colon inside brackets",
			input: "bg-[url(https://example.com/a.png)]",
			validate: func(t *testing.T, c Class) {
				if c.Variants != nil {
					t.Errorf("expected no variants, got %v", c.Variants)
				}
				if c.Arbitrary == nil || c.Arbitrary.Property != "bg" {
					t.Errorf("expected bg arbitrary value, got %+v", c.Arbitrary)
				}
			},
		},
		{
			name:  "important and negative",
			input: "!-mt-4",
			validate: func(t *testing.T, c Class) {
				if !c.Important || !c.Negative {
					t.Errorf("expected important negative class, got %+v", c)
				}
				if c.Base != "mt-4" {
					t.Errorf("expected Base=mt-4, got %q", c.Base)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Parse(tt.input))
		})
	}
}

func TestIsUtility(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"flex", true},
		{"hidden", true},
		{"bg-blue-500", true},
		{"hover:bg-blue-600", true},
		{"px-4", true},
		{"-mt-2", true},
		{"w-[80%]", true},
		{"[mask-type:alpha]", true},
		{"rounded", true},
		{"rounded-lg", true},
		{"row", false},
		{"column", false},
		{"this", false},
		{"bg-", false},
		{"hover:row", false},
		{"MyComponent-row", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := IsUtility(tt.token); got != tt.want {
				t.Errorf("IsUtility(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestNewMatcherExtendsUtilities(t *testing.T) {
	m := NewMatcher("brand-", "prose")

	for _, token := range []string{"brand-500", "prose", "text-brand-500", "flex"} {
		if !m.MatchString(token) {
			t.Errorf("expected %q to match", token)
		}
	}
	if m.MatchString("brand") {
		t.Error("family prefix should not match its bare name")
	}
	if Utilities.MatchString("prose") {
		t.Error("extensions must not leak into the built-in matcher")
	}
}

func BenchmarkIsUtility(b *testing.B) {
	input := []string{"bg-white", "dark:bg-gray-800", "hover:bg-gray-100", "row", "md:flex", "w-[33%]"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, token := range input {
			IsUtility(token)
		}
	}
}
