// Package cssns scopes CSS class names to a namespace.
//
// Tokens matching an include pattern are prefixed with the namespace,
// the "this" token becomes the bare namespace, and everything else is
// left alone:
//
//	ns, _ := cssns.New("components/Button.jsx")
//	ns.Classes("this row Legacy") // "Button Button-row Legacy"
//
// The same rewriting applies to lists, conditional class maps and whole
// UI trees (see Element, Widget and package htmltree).
package cssns

import (
	"github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// Namespacer applies one set of normalized options to any number of
// inputs. It is safe for concurrent use.
type Namespacer struct {
	opts  Options
	cache *lru.Cache[string, string]
	log   zerolog.Logger
}

// Option configures a Namespacer.
type Option func(*Namespacer) error

// WithLogger traces every rewritten class list at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(n *Namespacer) error {
		n.log = log
		return nil
	}
}

func newNamespacer(opts Options) *Namespacer {
	return &Namespacer{opts: opts, log: zerolog.Nop()}
}

// New validates raw once (see Normalize) and returns a Namespacer bound
// to the result.
func New(raw any, options ...Option) (*Namespacer, error) {
	opts, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	n := newNamespacer(opts)
	for _, o := range options {
		if err := o(n); err != nil {
			return nil, err
		}
	}
	n.log = n.log.With().Str("namespace", opts.namespace).Logger()
	return n, nil
}

// Options returns the normalized options the Namespacer was built with.
func (n *Namespacer) Options() Options {
	return n.opts
}

// Classes rewrites a class list input. It never fails.
func (n *Namespacer) Classes(x any) string {
	return n.value(ValueOf(x))
}

// Tree rewrites a UI tree. See RewriteTree.
func (n *Namespacer) Tree(el Element) (Element, error) {
	return n.tree(el)
}

// Apply dispatches x: falsy input yields nil, a valid Element is rewritten
// as a tree, and anything else as a class list string.
func (n *Namespacer) Apply(x any) (any, error) {
	if !truthy(x) {
		return nil, nil
	}
	if IsElement(x) {
		return n.tree(x.(Element))
	}
	return n.Classes(x), nil
}

// Func returns Apply as a plain function value.
func (n *Namespacer) Func() func(any) (any, error) {
	return n.Apply
}

// Dispatch normalizes raw and applies it to x. See Namespacer.Apply.
func Dispatch(raw any, x any) (any, error) {
	opts, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	return newNamespacer(opts).Apply(x)
}

// MakeFactory validates raw once and returns Dispatch with the options
// bound.
func MakeFactory(raw any) (func(any) (any, error), error) {
	n, err := New(raw)
	if err != nil {
		return nil, err
	}
	return n.Func(), nil
}
