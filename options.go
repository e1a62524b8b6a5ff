package cssns

import (
	"reflect"
	"regexp"
)

// namespaceSegment keeps the final path-like segment of a namespace.
// Names without a separator pass through unchanged.
var namespaceSegment = regexp.MustCompile(`.*/([\w-]+).*`)

// Options is a validated, defaulted and immutable configuration.
// Obtain one from Normalize; the zero value is rejected everywhere.
type Options struct {
	namespace  string
	include    Pattern
	exclude    Pattern
	self       Pattern
	normalized bool
}

func (o Options) Namespace() string { return o.namespace }
func (o Options) Include() Pattern  { return o.include }
func (o Options) Exclude() Pattern  { return o.exclude }
func (o Options) Self() Pattern     { return o.self }

// Normalized reports whether o came out of Normalize.
func (o Options) Normalized() bool { return o.normalized }

// Normalize validates raw and fills in defaults. raw may be a namespace
// string, a Config (or pointer), a map[string]any with the keys
// "namespace", "include", "exclude" and "self", or an already normalized
// Options, which is returned unchanged.
//
// Pattern options are checked in the order include, exclude, self and the
// first failure is returned.
func Normalize(raw any) (Options, error) {
	switch r := raw.(type) {
	case Options:
		if r.normalized {
			return r, nil
		}
	case *Options:
		if r != nil && r.normalized {
			return *r, nil
		}
	case string:
		return build(r, nil, nil, nil)
	case Config:
		return build(r.Namespace, r.Include, r.Exclude, r.Self)
	case *Config:
		if r != nil {
			return build(r.Namespace, r.Include, r.Exclude, r.Self)
		}
	case map[string]any:
		ns, ok := r["namespace"].(string)
		if !ok {
			return Options{}, newValidationError("namespace", r["namespace"], "option must be provided as a string")
		}
		return build(ns, r["include"], r["exclude"], r["self"])
	}
	return Options{}, newValidationError("", raw, "options must be provided either as a Config or a namespace string")
}

// MustNormalize is like Normalize but panics on invalid input.
func MustNormalize(raw any) Options {
	opts, err := Normalize(raw)
	if err != nil {
		panic(err)
	}
	return opts
}

func build(namespace string, include, exclude, self any) (Options, error) {
	ns := extractNamespace(namespace)
	if ns == "" {
		return Options{}, newValidationError("namespace", namespace, "option must not be empty")
	}

	opts := Options{namespace: ns, normalized: true}
	var err error
	if opts.include, err = patternOption("include", include, defaultInclude); err != nil {
		return Options{}, err
	}
	if opts.exclude, err = patternOption("exclude", exclude, defaultExclude); err != nil {
		return Options{}, err
	}
	if opts.self, err = patternOption("self", self, defaultSelf); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// extractNamespace replaces only the first segment match; later lines of a
// multi-line name are kept as is.
func extractNamespace(namespace string) string {
	m := namespaceSegment.FindStringSubmatchIndex(namespace)
	if m == nil {
		return namespace
	}
	return namespace[:m[0]] + namespace[m[2]:m[3]] + namespace[m[1]:]
}

func patternOption(name string, value any, fallback Pattern) (Pattern, error) {
	if value == nil || isNil(value) {
		return fallback, nil
	}
	p, ok := value.(Pattern)
	if !ok {
		return nil, newValidationError(name, value, "option must be provided as a Pattern such as *regexp.Regexp")
	}
	return p, nil
}

// isNil reports typed nils hidden behind an interface.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
