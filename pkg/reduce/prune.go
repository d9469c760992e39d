package reduce

import (
	"encoding/xml"

	"aqwari.net/xml/xmltree"

	"github.com/wsdltrim/wsdltrim/pkg/wsdl"
)

// The pruning stages below run in a fixed order (operations, messages,
// schemas, bindings, ports, port types) and are each stateless over the tree:
// every stage locates its elements fresh from the root, because removing a
// child shifts its siblings within the backing array and invalidates any
// pointer taken before the sweep. Given the same keep-sets, each stage is
// idempotent.

// removeChildren deletes every direct child of parent for which drop returns
// true. This is the pipeline's only deletion primitive.
func removeChildren(parent *xmltree.Element, drop func(*xmltree.Element) bool) {
	dropped := 0
	kept := parent.Children[:0]
	for i := range parent.Children {
		if drop(&parent.Children[i]) {
			dropped++
			continue
		}
		kept = append(kept, parent.Children[i])
	}
	parent.Children = kept
	// Content holds the raw bytes between the start and end tags, and the
	// serializer falls back to it for childless elements. A container emptied
	// here must not resurrect its deleted children from those bytes.
	if dropped > 0 && len(parent.Children) == 0 {
		parent.Content = nil
	}
}

func isTag(el *xmltree.Element, space, local string) bool {
	return el.Name.Space == space && el.Name.Local == local
}

// PruneOperations removes from the named port type every operation whose name
// attribute is not in keep.
func PruneOperations(doc *wsdl.Document, portType xml.Name, keep map[string]bool) {
	pt := findPortType(doc, portType)
	if pt == nil {
		return
	}
	removeChildren(pt, func(el *xmltree.Element) bool {
		return isTag(el, wsdl.NamespaceWSDL, "operation") && !keep[el.Attr("", "name")]
	})
}

// PruneMessages removes every top-level message whose qualified name is not
// in keep.
func PruneMessages(doc *wsdl.Document, keep map[xml.Name]bool) {
	tns := doc.TargetNamespace()
	removeChildren(doc.Root, func(el *xmltree.Element) bool {
		return isTag(el, wsdl.NamespaceWSDL, "message") && !keep[wsdl.DeclaredName(el, tns)]
	})
}

// PruneSchemas removes from every embedded schema each named top-level
// declaration whose (namespace, local-name) key is not in keep, then drops
// all import and include declarations unconditionally: the output is always
// flattened to a self-contained types section rather than pruning the import
// graph. Anonymous declarations are never deletion candidates; they survive
// or vanish with their parent.
func PruneSchemas(doc *wsdl.Document, keep map[xml.Name]bool) {
	for _, schema := range doc.Schemas() {
		tns := schema.Attr("", "targetNamespace")
		removeChildren(schema, func(el *xmltree.Element) bool {
			if el.Name.Space != wsdl.NamespaceXSD {
				return false
			}
			if el.Name.Local == "import" || el.Name.Local == "include" {
				return true
			}
			if !declarationKinds[el.Name.Local] {
				return false
			}
			name := el.Attr("", "name")
			if name == "" {
				return false
			}
			return !keep[xml.Name{Space: tns, Local: name}]
		})
	}
}

// PruneBindings removes every binding operation not in keepOps from the
// target binding, then deletes every other top-level binding. The binding
// operation survival set therefore matches the interface operation survival
// set by construction.
func PruneBindings(doc *wsdl.Document, target xml.Name, keepOps map[string]bool) {
	tns := doc.TargetNamespace()
	if b := findBinding(doc, target); b != nil {
		removeChildren(b, func(el *xmltree.Element) bool {
			return isTag(el, wsdl.NamespaceWSDL, "operation") && !keepOps[el.Attr("", "name")]
		})
	}
	removeChildren(doc.Root, func(el *xmltree.Element) bool {
		return isTag(el, wsdl.NamespaceWSDL, "binding") && wsdl.DeclaredName(el, tns) != target
	})
}

// PrunePorts removes from every service each port that does not reference the
// surviving binding, then deletes services left with no ports.
func PrunePorts(doc *wsdl.Document, binding xml.Name) {
	for _, svc := range doc.Services() {
		removeChildren(svc, func(el *xmltree.Element) bool {
			if !isTag(el, wsdl.NamespaceWSDL, "port") {
				return false
			}
			ref, ok := wsdl.Ref(el, "binding")
			return !ok || ref != binding
		})
	}
	removeChildren(doc.Root, func(el *xmltree.Element) bool {
		return isTag(el, wsdl.NamespaceWSDL, "service") &&
			len(wsdl.ChildElements(el, wsdl.NamespaceWSDL, "port")) == 0
	})
}

// PrunePortTypes deletes every port type other than target.
func PrunePortTypes(doc *wsdl.Document, target xml.Name) {
	tns := doc.TargetNamespace()
	removeChildren(doc.Root, func(el *xmltree.Element) bool {
		return isTag(el, wsdl.NamespaceWSDL, "portType") && wsdl.DeclaredName(el, tns) != target
	})
}

func findPortType(doc *wsdl.Document, name xml.Name) *xmltree.Element {
	return wsdl.FindDeclaration(doc.Root, xml.Name{Space: wsdl.NamespaceWSDL, Local: "portType"}, doc.TargetNamespace(), name)
}

func findBinding(doc *wsdl.Document, name xml.Name) *xmltree.Element {
	return wsdl.FindDeclaration(doc.Root, xml.Name{Space: wsdl.NamespaceWSDL, Local: "binding"}, doc.TargetNamespace(), name)
}
