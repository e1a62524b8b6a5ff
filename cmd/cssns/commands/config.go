package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/agiangrant/cssns"
	"github.com/agiangrant/cssns/tw"
)

// ConfigFile is the default project configuration file.
const ConfigFile = "cssns.toml"

// configCandidates are searched in order when no --config is given.
var configCandidates = []string{ConfigFile, "cssns.yaml", "cssns.yml", "cssns.json", "cssns.jsonc"}

// ProjectConfig represents the cssns.toml configuration file
type ProjectConfig struct {
	// Namespace prefix, or a path whose last segment is used
	Namespace string `toml:"namespace" yaml:"namespace" json:"namespace" validate:"required"`
	// Regular expressions; empty means the library default
	Include string `toml:"include" yaml:"include" json:"include" validate:"omitempty,regexp"`
	Exclude string `toml:"exclude" yaml:"exclude" json:"exclude" validate:"omitempty,regexp"`
	Self    string `toml:"self" yaml:"self" json:"self" validate:"omitempty,regexp"`
	// Keep Tailwind utility classes unprefixed
	Tailwind bool `toml:"tailwind" yaml:"tailwind" json:"tailwind"`
	// Extra utilities for the Tailwind matcher; "brand-" matches a family
	Utilities []string `toml:"utilities" yaml:"utilities" json:"utilities"`
	// Number of class strings memoized per run; 0 disables the cache
	CacheSize int `toml:"cache_size" yaml:"cache_size" json:"cache_size" validate:"min=0"`

	Log LogConfig `toml:"log" yaml:"log" json:"log"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level" json:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Human bool   `toml:"human" yaml:"human" json:"human"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Include:   cssns.DefaultInclude,
		Exclude:   cssns.DefaultExclude,
		Self:      cssns.DefaultSelf,
		CacheSize: 512,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the project configuration from path. With an empty
// path the current directory is searched and, if nothing is found, the
// defaults are returned.
func LoadConfig(path string) (ProjectConfig, error) {
	config := DefaultConfig()

	if path == "" {
		for _, candidate := range configCandidates {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return config, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), &config)
	default:
		err = toml.Unmarshal(data, &config)
	}
	if err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig writes the configuration as TOML to path
func SaveConfig(path string, config ProjectConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("regexp", func(fl validator.FieldLevel) bool {
			_, err := regexp.Compile(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig checks the configuration before it is compiled.
func ValidateConfig(config ProjectConfig) error {
	if err := validatorInstance().Struct(config); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			ve := ves[0]
			return fmt.Errorf("invalid config: %s failed validation for tag '%s'", fieldName(ve), ve.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	// Drop the root struct name.
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}

// Compile validates the configuration and turns it into library options.
func (c ProjectConfig) Compile() (cssns.Config, error) {
	if err := ValidateConfig(c); err != nil {
		return cssns.Config{}, err
	}

	out := cssns.Config{Namespace: c.Namespace}
	var err error
	if out.Include, err = compilePattern("include", c.Include); err != nil {
		return cssns.Config{}, err
	}
	if out.Exclude, err = compilePattern("exclude", c.Exclude); err != nil {
		return cssns.Config{}, err
	}
	if out.Self, err = compilePattern("self", c.Self); err != nil {
		return cssns.Config{}, err
	}

	if c.Tailwind {
		utilities := tw.Utilities
		if len(c.Utilities) > 0 {
			utilities = tw.NewMatcher(c.Utilities...)
		}
		exclude := out.Exclude
		if exclude == nil {
			exclude = cssns.DefaultExcludePattern()
		}
		out.Exclude = cssns.AnyOf(exclude, utilities)
	}
	return out, nil
}

// compilePattern returns nil for an empty source so the library default
// applies.
func compilePattern(name, source string) (cssns.Pattern, error) {
	if source == "" {
		return nil, nil
	}
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s pattern: %w", name, err)
	}
	return re, nil
}
