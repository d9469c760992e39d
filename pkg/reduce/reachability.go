package reduce

import (
	"encoding/xml"

	"aqwari.net/xml/xmltree"

	"github.com/wsdltrim/wsdltrim/pkg/wsdl"
)

// referenceAttrs are the attributes that denote a cross-declaration reference
// in XML Schema: type references, structural element/attribute references,
// and extension/restriction base references.
var referenceAttrs = [...]string{"type", "ref", "base"}

// Resolver computes reachability closures over the schema reference graph.
// The graph is extracted from the declaration index up front, one full
// attribute scan per declaring node, so how references are spelled in the
// tree stays separate from how reachability is computed.
type Resolver struct {
	adjacency map[xml.Name][]xml.Name
}

// NewResolver builds the adjacency structure for every indexed declaration.
func NewResolver(index *DeclarationIndex) *Resolver {
	adjacency := make(map[xml.Name][]xml.Name, index.Len())
	for key, decls := range index.decls {
		var refs []xml.Name
		for _, decl := range decls {
			refs = append(refs, References(decl)...)
		}
		adjacency[key] = refs
	}
	return &Resolver{adjacency: adjacency}
}

// Reachable returns the closure of keys reachable from seeds. Keys with no
// declaration in the document (built-in primitives, externally imported
// types) are retained as leaves and expand no further. Marking happens before
// expansion, so self-referential and mutually recursive declarations
// terminate after being visited once.
func (r *Resolver) Reachable(seeds []xml.Name) map[xml.Name]bool {
	keep := make(map[xml.Name]bool, len(seeds))
	work := append([]xml.Name(nil), seeds...)
	for len(work) > 0 {
		key := work[len(work)-1]
		work = work[:len(work)-1]
		if keep[key] {
			continue
		}
		keep[key] = true
		work = append(work, r.adjacency[key]...)
	}
	return keep
}

// References collects every qualified key the given declaration subtree
// refers to. Each reference is resolved against the namespace scope of the
// element that spells it, not the scope of the declaration root.
func References(decl *xmltree.Element) []xml.Name {
	var refs []xml.Name
	walk(decl, func(el *xmltree.Element) {
		for _, attr := range referenceAttrs {
			if name, ok := wsdl.Ref(el, attr); ok {
				refs = append(refs, name)
			}
		}
	})
	return refs
}

func walk(el *xmltree.Element, fn func(*xmltree.Element)) {
	fn(el)
	for i := range el.Children {
		walk(&el.Children[i], fn)
	}
}

// MessageRefs collects the qualified names of every message referenced by the
// operations of a port type through input, output, or fault children. Run
// after operation pruning, this is the message layer's keep-set.
func MessageRefs(portType *xmltree.Element) map[xml.Name]bool {
	refs := make(map[xml.Name]bool)
	for _, op := range wsdl.ChildElements(portType, wsdl.NamespaceWSDL, "operation") {
		for i := range op.Children {
			child := &op.Children[i]
			if child.Name.Space != wsdl.NamespaceWSDL {
				continue
			}
			switch child.Name.Local {
			case "input", "output", "fault":
				if ref, ok := wsdl.Ref(child, "message"); ok {
					refs[ref] = true
				}
			}
		}
	}
	return refs
}

// SchemaSeeds collects the element and type references of every part of the
// given messages. Run after message pruning, this seeds the schema layer.
func SchemaSeeds(messages []*xmltree.Element) []xml.Name {
	var seeds []xml.Name
	for _, msg := range messages {
		for _, part := range wsdl.ChildElements(msg, wsdl.NamespaceWSDL, "part") {
			for _, attr := range [...]string{"element", "type"} {
				if ref, ok := wsdl.Ref(part, attr); ok {
					seeds = append(seeds, ref)
				}
			}
		}
	}
	return seeds
}
