package cssns

// Element is the capability set the tree rewriter needs from a UI node.
// Implementations must treat the receiver as read-only: the With methods
// return new nodes and leave the original subtree untouched.
type Element interface {
	// ClassName returns the node's class list and whether it has one.
	ClassName() (string, bool)
	// WithClassName returns a copy of the node carrying classes.
	WithClassName(classes string) Element
	// ChildElements returns the child nodes, or nil when the node has none.
	ChildElements() []Element
	// WithChildElements returns a copy of the node with children replaced.
	WithChildElements(children []Element) Element
}

// validator is implemented by elements that can be structurally invalid,
// such as a Widget without a kind.
type validator interface {
	Valid() bool
}

// IsElement reports whether x is a usable Element: non-nil, and valid if
// it can tell.
func IsElement(x any) bool {
	el, ok := x.(Element)
	if !ok || isNil(el) {
		return false
	}
	if v, ok := el.(validator); ok {
		return v.Valid()
	}
	return true
}

// RewriteTree rewrites the class name of el and, recursively, of all its
// children. The input tree is never modified.
func RewriteTree(raw any, el Element) (Element, error) {
	opts, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	return newNamespacer(opts).tree(el)
}

func (n *Namespacer) tree(el Element) (Element, error) {
	if !IsElement(el) {
		return nil, newValidationError("element", el, "must be a valid UI element")
	}

	out := el
	if classes, ok := el.ClassName(); ok && classes != "" {
		out = out.WithClassName(n.str(classes))
	}

	children := el.ChildElements()
	if children == nil {
		return out, nil
	}

	rewritten := make([]Element, len(children))
	for i, child := range children {
		c, err := n.tree(child)
		if err != nil {
			return nil, err
		}
		rewritten[i] = c
	}
	return out.WithChildElements(rewritten), nil
}
