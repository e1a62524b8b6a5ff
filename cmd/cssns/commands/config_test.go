package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/cssns"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "cssns.toml",
			content: `namespace = "components/Card.tsx"
exclude = "^js-"
tailwind = true
cache_size = 64

[log]
level = "debug"
`,
		},
		{
			name: "yaml",
			file: "cssns.yaml",
			content: `namespace: components/Card.tsx
exclude: "^js-"
tailwind: true
cache_size: 64
log:
  level: debug
`,
		},
		{
			name: "jsonc",
			file: "cssns.jsonc",
			content: `{
  // shared with the frontend build
  "namespace": "components/Card.tsx",
  "exclude": "^js-",
  "tailwind": true,
  "cache_size": 64,
  "log": {"level": "debug"},
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, "components/Card.tsx", config.Namespace)
			assert.Equal(t, "^js-", config.Exclude)
			assert.Equal(t, cssns.DefaultInclude, config.Include, "unset keys keep defaults")
			assert.True(t, config.Tailwind)
			assert.Equal(t, 64, config.CacheSize)
			assert.Equal(t, "debug", config.Log.Level)
		})
	}
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "failed to read")

	_, err = LoadConfig(writeFile(t, "broken.toml", "namespace = "))
	assert.ErrorContains(t, err, "failed to parse")
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProjectConfig)
		wantErr string
	}{
		{"valid", func(c *ProjectConfig) {}, ""},
		{"missing namespace", func(c *ProjectConfig) { c.Namespace = "" }, "namespace failed validation for tag 'required'"},
		{"bad include", func(c *ProjectConfig) { c.Include = "(" }, "include failed validation for tag 'regexp'"},
		{"negative cache", func(c *ProjectConfig) { c.CacheSize = -1 }, "cachesize failed validation for tag 'min'"},
		{"unknown log level", func(c *ProjectConfig) { c.Log.Level = "loud" }, "log.level failed validation for tag 'oneof'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.Namespace = "Card"
			tt.mutate(&config)

			err := ValidateConfig(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCompileTailwind(t *testing.T) {
	config := DefaultConfig()
	config.Namespace = "Card"
	config.Exclude = "^js-"
	config.Tailwind = true
	config.Utilities = []string{"brand-"}

	compiled, err := config.Compile()
	require.NoError(t, err)

	ns, err := cssns.New(compiled)
	require.NoError(t, err)
	assert.Equal(t, "Card Card-card brand-500 js-hook", ns.Classes("this card brand-500 js-hook"))
}

func TestCompileEmptyPatternsUseDefaults(t *testing.T) {
	config := ProjectConfig{Namespace: "Card"}
	compiled, err := config.Compile()
	require.NoError(t, err)
	assert.Nil(t, compiled.Include)

	opts, err := cssns.Normalize(compiled)
	require.NoError(t, err)
	assert.Equal(t, "Card-row", opts.Token("row"))
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	config := DefaultConfig()
	config.Namespace = "Panel"
	config.Tailwind = true

	require.NoError(t, SaveConfig(path, config))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Panel", loaded.Namespace)
	assert.True(t, loaded.Tailwind)
	assert.Equal(t, config.Self, loaded.Self)
}
