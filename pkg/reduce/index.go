package reduce

import (
	"encoding/xml"

	"aqwari.net/xml/xmltree"

	"github.com/wsdltrim/wsdltrim/pkg/wsdl"
)

// declarationKinds are the top-level schema declarations that participate in
// reachability. Element, complex-type and simple-type names are separate
// symbol spaces in XML Schema, so several declarations may legitimately share
// one (namespace, local) key.
var declarationKinds = map[string]bool{
	"element":     true,
	"complexType": true,
	"simpleType":  true,
}

// DeclarationIndex maps (namespace, local-name) keys to the top-level schema
// declarations carrying that name, across every schema fragment embedded in
// the document. Built once per run and read-only afterward; the indexed
// pointers stay valid until the schemas are structurally modified.
type DeclarationIndex struct {
	decls map[xml.Name][]*xmltree.Element
}

// NewDeclarationIndex scans the given schema fragments and indexes their
// named top-level declarations in document order. Anonymous (inline)
// declarations are not indexed; they live and die with their parent.
func NewDeclarationIndex(schemas []*xmltree.Element) *DeclarationIndex {
	ix := &DeclarationIndex{decls: make(map[xml.Name][]*xmltree.Element)}
	for _, schema := range schemas {
		tns := schema.Attr("", "targetNamespace")
		for i := range schema.Children {
			decl := &schema.Children[i]
			if decl.Name.Space != wsdl.NamespaceXSD || !declarationKinds[decl.Name.Local] {
				continue
			}
			name := decl.Attr("", "name")
			if name == "" {
				continue
			}
			key := xml.Name{Space: tns, Local: name}
			ix.decls[key] = append(ix.decls[key], decl)
		}
	}
	return ix
}

// Lookup returns the declarations indexed under key, or nil when the key has
// no declaration in this document (a built-in type or an external import).
func (ix *DeclarationIndex) Lookup(key xml.Name) []*xmltree.Element {
	return ix.decls[key]
}

// Len returns the number of distinct keys in the index.
func (ix *DeclarationIndex) Len() int {
	return len(ix.decls)
}
