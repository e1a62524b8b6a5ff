// Package htmltree adapts golang.org/x/net/html parse trees to
// cssns.Element so server-rendered markup can be namespaced after the
// fact. Rewriting never touches the parsed input; it builds new nodes.
package htmltree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/agiangrant/cssns"
)

// TreeRewriter is satisfied by *cssns.Namespacer.
type TreeRewriter interface {
	Tree(el cssns.Element) (cssns.Element, error)
}

// Node wraps an *html.Node as a cssns.Element.
type Node struct {
	n *html.Node
	// src holds the children of n while they have not been copied yet.
	src *html.Node
}

// Wrap adapts n. A nil n yields an invalid element.
func Wrap(n *html.Node) Node {
	return Node{n: n}
}

// HTML returns the wrapped node, copying in any children still shared
// with the source tree.
func (n Node) HTML() *html.Node {
	if n.n != nil && n.src != nil && n.n.FirstChild == nil {
		for c := n.src.FirstChild; c != nil; c = c.NextSibling {
			n.n.AppendChild(deepClone(c))
		}
	}
	return n.n
}

// Valid implements the optional validity check of cssns.Element.
func (n Node) Valid() bool {
	return n.n != nil
}

// ClassName returns the class attribute of element nodes.
func (n Node) ClassName() (string, bool) {
	if n.n == nil || n.n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			return a.Val, true
		}
	}
	return "", false
}

// WithClassName returns a detached copy with the class attribute
// replaced. Children are copied lazily, so a following WithChildElements
// never pays for them.
func (n Node) WithClassName(classes string) cssns.Element {
	c := shallowClone(n.n)
	out := Node{n: c, src: n.parent()}
	for i, a := range c.Attr {
		if a.Namespace == "" && a.Key == "class" {
			c.Attr[i].Val = classes
			return out
		}
	}
	c.Attr = append(c.Attr, html.Attribute{Key: "class", Val: classes})
	return out
}

// parent returns the node whose children n currently stands for.
func (n Node) parent() *html.Node {
	if n.src != nil && n.n.FirstChild == nil {
		return n.src
	}
	return n.n
}

// ChildElements returns the child nodes, or nil for a leaf.
func (n Node) ChildElements() []cssns.Element {
	if n.n == nil {
		return nil
	}
	p := n.parent()
	if p.FirstChild == nil {
		return nil
	}
	var out []cssns.Element
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, Node{n: c})
	}
	return out
}

// WithChildElements returns a detached copy of the node holding
// children. Children still attached to another tree are copied first;
// elements that are not Nodes are skipped.
func (n Node) WithChildElements(children []cssns.Element) cssns.Element {
	c := shallowClone(n.n)
	for _, child := range children {
		cn, ok := child.(Node)
		if !ok || cn.n == nil {
			continue
		}
		kid := cn.HTML()
		if kid.Parent != nil || kid.PrevSibling != nil || kid.NextSibling != nil {
			kid = deepClone(kid)
		}
		c.AppendChild(kid)
	}
	return Node{n: c}
}

func shallowClone(n *html.Node) *html.Node {
	return &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
}

func deepClone(n *html.Node) *html.Node {
	c := shallowClone(n)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(deepClone(child))
	}
	return c
}

// RewriteNode rewrites the class attributes of n and its descendants.
func RewriteNode(rw TreeRewriter, n *html.Node) (*html.Node, error) {
	el, err := rw.Tree(Wrap(n))
	if err != nil {
		return nil, err
	}
	return el.(Node).HTML(), nil
}

// RewriteDocument parses a full HTML document from r, rewrites it and
// renders the result to w.
func RewriteDocument(rw TreeRewriter, r io.Reader, w io.Writer) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("failed to parse html: %w", err)
	}
	out, err := RewriteNode(rw, doc)
	if err != nil {
		return err
	}
	if err := html.Render(w, out); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}

// RewriteFragment rewrites an HTML fragment parsed in a <body> context,
// such as the output of a markdown renderer or a template partial.
func RewriteFragment(rw TreeRewriter, fragment string) (string, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", fmt.Errorf("failed to parse html fragment: %w", err)
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		out, err := RewriteNode(rw, n)
		if err != nil {
			return "", err
		}
		if err := html.Render(&buf, out); err != nil {
			return "", fmt.Errorf("failed to render html: %w", err)
		}
	}
	return buf.String(), nil
}
