package cssns

import (
	"math"
	"reflect"
	"regexp"
	"sort"
	"strings"
)

// whitespace also covers \v, NBSP, the Unicode space separators and BOM.
var whitespace = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)

// ValueKind identifies which branch of the token rewriter handles a Value.
type ValueKind uint8

const (
	KindEmpty  ValueKind = iota // nil, false, numbers, anything unrecognized
	KindString                  // a whitespace separated class list
	KindList                    // ordered values, rewritten one by one
	KindMap                     // conditional classes, already filtered to the enabled keys
)

// Value is a class list input resolved once into one of the ValueKinds.
type Value struct {
	kind  ValueKind
	str   string
	items []Value
}

func (v Value) Kind() ValueKind { return v.kind }

// String wraps a class list string.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// List wraps an ordered sequence of class list inputs.
func List(xs ...any) Value {
	items := make([]Value, len(xs))
	for i, x := range xs {
		items[i] = ValueOf(x)
	}
	return Value{kind: KindList, items: items}
}

// Toggle pairs a class list with the condition enabling it.
type Toggle struct {
	Class string
	On    bool
}

// If is shorthand for Toggle{class, on}.
func If(class string, on bool) Toggle {
	return Toggle{Class: class, On: on}
}

// Toggles is a conditional class map that keeps its order.
// Prefer it over map[string]bool when output order matters.
type Toggles []Toggle

// ValueOf resolves an arbitrary input into a Value. Strings, slices and
// arrays, Toggles and string-keyed maps are recognized. Keys of built-in
// maps are visited in sorted order. Anything else, including nil, booleans
// and numbers, is an empty class list.
func ValueOf(x any) Value {
	switch v := x.(type) {
	case nil:
		return Value{}
	case Value:
		return v
	case string:
		return String(v)
	case []string:
		items := make([]Value, len(v))
		for i, s := range v {
			items[i] = String(s)
		}
		return Value{kind: KindList, items: items}
	case []any:
		return List(v...)
	case []Value:
		return Value{kind: KindList, items: v}
	case Toggle:
		return enabled(Toggles{v})
	case Toggles:
		return enabled(v)
	case map[string]bool:
		keys := make([]string, 0, len(v))
		for k, on := range v {
			if on {
				keys = append(keys, k)
			}
		}
		return keyList(keys)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k, flag := range v {
			if truthy(flag) {
				keys = append(keys, k)
			}
		}
		return keyList(keys)
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Value{}
		}
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = ValueOf(rv.Index(i).Interface())
		}
		return Value{kind: KindList, items: items}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}
		}
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			if truthy(iter.Value().Interface()) {
				keys = append(keys, iter.Key().String())
			}
		}
		return keyList(keys)
	}
	return Value{}
}

func enabled(ts Toggles) Value {
	items := make([]Value, 0, len(ts))
	for _, t := range ts {
		if t.On {
			items = append(items, String(t.Class))
		}
	}
	return Value{kind: KindMap, items: items}
}

func keyList(keys []string) Value {
	sort.Strings(keys)
	items := make([]Value, len(keys))
	for i, k := range keys {
		items[i] = String(k)
	}
	return Value{kind: KindMap, items: items}
}

// truthy follows the usual templating notion of a set flag.
func truthy(x any) bool {
	if x == nil {
		return false
	}
	switch v := x.(type) {
	case bool:
		return v
	case string:
		return v != ""
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// Rule is the decision taken for a single token.
type Rule uint8

const (
	RuleKeep   Rule = iota // left untouched
	RulePrefix             // became namespace + "-" + token
	RuleSelf               // replaced by the bare namespace
)

func (r Rule) String() string {
	switch r {
	case RulePrefix:
		return "prefix"
	case RuleSelf:
		return "self"
	default:
		return "keep"
	}
}

// Classify decides what happens to token. The self pattern always wins
// over include and exclude.
func (o Options) Classify(token string) Rule {
	if !o.normalized {
		return RuleKeep
	}
	if o.self.MatchString(token) {
		return RuleSelf
	}
	if o.include.MatchString(token) && !o.exclude.MatchString(token) {
		return RulePrefix
	}
	return RuleKeep
}

// Token returns the rewritten form of a single token.
func (o Options) Token(token string) string {
	switch o.Classify(token) {
	case RuleSelf:
		return o.namespace
	case RulePrefix:
		return o.namespace + "-" + token
	}
	return token
}

// Classes rewrites a class list input without caching or logging.
func (o Options) Classes(x any) string {
	return newNamespacer(o).value(ValueOf(x))
}

// Decision records how one token of a class list was rewritten.
type Decision struct {
	Token  string
	Rule   Rule
	Result string
}

// Explain reports the per-token decisions for a class list string.
func Explain(raw any, classes string) ([]Decision, error) {
	opts, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	var out []Decision
	for _, t := range whitespace.Split(classes, -1) {
		if t == "" {
			continue
		}
		out = append(out, Decision{Token: t, Rule: opts.Classify(t), Result: opts.Token(t)})
	}
	return out, nil
}

// RewriteTokens rewrites a class list input (see ValueOf) and returns the
// joined class string. Unrecognized or falsy input yields "".
func RewriteTokens(raw any, x any) (string, error) {
	opts, err := Normalize(raw)
	if err != nil {
		return "", err
	}
	return newNamespacer(opts).value(ValueOf(x)), nil
}

func (n *Namespacer) value(v Value) string {
	switch v.kind {
	case KindString:
		return n.str(v.str)
	case KindList, KindMap:
		parts := make([]string, 0, len(v.items))
		for _, item := range v.items {
			if s := n.value(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	}
	return ""
}

func (n *Namespacer) str(s string) string {
	if n.cache != nil {
		if out, ok := n.cache.Get(s); ok {
			return out
		}
	}

	tokens := whitespace.Split(s, -1)
	for i, t := range tokens {
		tokens[i] = n.opts.Token(t)
	}
	out := strings.TrimSpace(strings.Join(tokens, " "))

	if n.cache != nil {
		n.cache.Add(s, out)
	}
	n.log.Debug().Str("in", s).Str("out", out).Msg("rewrote class list")
	return out
}
