// Package feedparse normalizes RSS 2.0, Atom and RDF feed documents into
// the common item shape. Parsing is done over a generic element tree rather
// than per-dialect structs, because real-world feeds mix namespaces and
// dialect quirks that rigid struct decoding cannot absorb.
package feedparse

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Node is a generic XML element. Child elements are keyed by their
// qualified name; repeated names form a sequence. Attributes are merged
// into the children map as text-only nodes, so `<link href="x"/>` and
// `<link>x</link>` are both reachable through the same API.
type Node struct {
	Text     string
	Children map[string][]*Node
}

// First returns the first child with the given name, or nil.
func (n *Node) First(name string) *Node {
	if n == nil {
		return nil
	}
	if cs := n.Children[name]; len(cs) > 0 {
		return cs[0]
	}
	return nil
}

// All returns every child with the given name.
func (n *Node) All(name string) []*Node {
	if n == nil {
		return nil
	}
	return n.Children[name]
}

// ChildText returns the trimmed text of the first child with the given
// name, or the empty string when the child is absent.
func (n *Node) ChildText(name string) string {
	if c := n.First(name); c != nil {
		return c.Text
	}
	return ""
}

func (n *Node) add(name string, c *Node) {
	if n.Children == nil {
		n.Children = map[string][]*Node{}
	}
	n.Children[name] = append(n.Children[name], c)
}

// nsPrefix maps well-known namespace URLs to the canonical prefix used as
// the child key. Namespaces mapped to "" contribute unprefixed keys, which
// keeps Atom and RSS 1.0 elements addressable by their local names.
var nsPrefix = map[string]string{
	"http://purl.org/dc/elements/1.1/":             "dc",
	"http://purl.org/rss/1.0/modules/content/":     "content",
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#":  "rdf",
	"http://www.w3.org/2005/Atom":                  "",
	"http://purl.org/atom/ns#":                     "",
	"http://purl.org/rss/1.0/":                     "",
	"http://search.yahoo.com/mrss/":                "media",
	"http://www.w3.org/XML/1998/namespace":         "xml",
}

// qualify converts an xml.Name into the tree key. Undeclared prefixes
// survive as-is (encoding/xml leaves the raw prefix in Space), while
// namespace URLs we do not recognize collapse to the local name.
func qualify(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	if p, ok := nsPrefix[name.Space]; ok {
		if p == "" {
			return name.Local
		}
		return p + ":" + name.Local
	}
	if strings.ContainsAny(name.Space, "/:") {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

// Parse decodes an XML document into a generic node tree. The returned
// node represents the document itself: it has a single child keyed by the
// root element name. Character set conversion follows the XML declaration.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	dec.Strict = false

	doc := &Node{Children: map[string][]*Node{}}
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Parse: decode: %w", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			child, err := parseElement(dec, se)
			if err != nil {
				return nil, err
			}
			doc.add(qualify(se.Name), child)
		}
	}
	if len(doc.Children) == 0 {
		return nil, errors.New("Parse: document has no root element")
	}
	return doc, nil
}

func parseElement(dec *xml.Decoder, se xml.StartElement) (*Node, error) {
	n := &Node{Children: map[string][]*Node{}}
	for _, a := range se.Attr {
		// namespace declarations are bookkeeping, not data
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		n.add(qualify(a.Name), &Node{Text: a.Value})
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("Parse: decode: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseElement(dec, t)
			if err != nil {
				return nil, err
			}
			n.add(qualify(t.Name), child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			n.Text = strings.TrimSpace(text.String())
			return n, nil
		}
	}
}
