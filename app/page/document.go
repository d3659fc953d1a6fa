// Package page wraps a parsed HTML document and exposes the dark-mode marker
// on its root element.
package page

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DarkClass is the class on the root element that stylesheets key dark rules off.
const DarkClass = "dark"

// Document is a parsed HTML page.
type Document struct {
	doc  *html.Node
	root *html.Node
}

// Parse reads an HTML page. Fragments get the implied <html> root that html.Parse synthesizes.
func Parse(r io.Reader) (*Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	root := findNode(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.DataAtom == atom.Html })
	return &Document{doc: doc, root: root}, nil
}

// ElementByID returns the first element with the given id, or nil.
func (d *Document) ElementByID(id string) *html.Node {
	if id == "" {
		return nil
	}
	return findNode(d.doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		v, ok := attr(n, "id")
		return ok && v == id
	})
}

// HasElement reports whether an element with the given id exists.
func (d *Document) HasElement(id string) bool {
	return d.ElementByID(id) != nil
}

// IsDark reports whether the root element carries the dark class.
func (d *Document) IsDark() bool {
	return d.HasRootClass(DarkClass)
}

// SetDark adds or removes the dark class on the root element.
func (d *Document) SetDark(dark bool) {
	if dark {
		d.AddRootClass(DarkClass)
		return
	}
	d.RemoveRootClass(DarkClass)
}

// HasRootClass reports whether the root element has the class.
func (d *Document) HasRootClass(name string) bool {
	v, _ := attr(d.root, "class")
	for _, c := range strings.Fields(v) {
		if c == name {
			return true
		}
	}
	return false
}

// AddRootClass adds a class to the root element unless already present.
func (d *Document) AddRootClass(name string) {
	if d.HasRootClass(name) {
		return
	}
	v, _ := attr(d.root, "class")
	setAttr(d.root, "class", strings.Join(append(strings.Fields(v), name), " "))
}

// RemoveRootClass drops every occurrence of a class from the root element.
// The class attribute itself is removed once empty.
func (d *Document) RemoveRootClass(name string) {
	v, ok := attr(d.root, "class")
	if !ok {
		return
	}
	var kept []string
	for _, c := range strings.Fields(v) {
		if c != name {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		removeAttr(d.root, "class")
		return
	}
	setAttr(d.root, "class", strings.Join(kept, " "))
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.doc); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// findNode walks the tree depth-first and returns the first node matching fn.
func findNode(n *html.Node, fn func(*html.Node) bool) *html.Node {
	if fn(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, fn); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		attrs = append(attrs, a)
	}
	n.Attr = attrs
}
