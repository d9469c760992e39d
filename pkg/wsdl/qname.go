package wsdl

import (
	"encoding/xml"

	"aqwari.net/xml/xmltree"
)

// Ref resolves a QName-valued attribute (like "tns:GetRequest") against the
// element's own namespace scope. The second return value is false when the
// attribute is absent or empty; absence is for the caller to judge, not an
// error here.
func Ref(el *xmltree.Element, attr string) (xml.Name, bool) {
	v := el.Attr("", attr)
	if v == "" {
		return xml.Name{}, false
	}
	return el.Resolve(v), true
}

// DeclaredName returns the qualified name an element declares through its
// "name" attribute. Unprefixed names are qualified with targetNS, matching
// how WSDL and XSD scope top-level declarations to their target namespace.
func DeclaredName(el *xmltree.Element, targetNS string) xml.Name {
	return el.ResolveDefault(el.Attr("", "name"), targetNS)
}

// FindDeclaration searches the direct children of root for a declaration with
// the given tag whose declared name matches target. Returns nil when nothing
// matches; the pointer stays valid only until root's children are modified.
func FindDeclaration(root *xmltree.Element, tag xml.Name, targetNS string, target xml.Name) *xmltree.Element {
	for i := range root.Children {
		el := &root.Children[i]
		if el.Name != tag {
			continue
		}
		if DeclaredName(el, targetNS) == target {
			return el
		}
	}
	return nil
}

// ChildElements returns pointers to the direct children of el carrying the
// given tag name.
func ChildElements(el *xmltree.Element, space, local string) []*xmltree.Element {
	var out []*xmltree.Element
	for i := range el.Children {
		c := &el.Children[i]
		if c.Name.Space == space && c.Name.Local == local {
			out = append(out, c)
		}
	}
	return out
}
