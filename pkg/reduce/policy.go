package reduce

import (
	"fmt"
	"slices"

	"aqwari.net/xml/xmltree"

	"github.com/wsdltrim/wsdltrim/pkg/wsdl"
)

// PolicyFragment is an externally supplied WS-Policy pair to splice into the
// surviving binding: one wsp:UsingPolicy declaration and one wsp:Policy
// declaration.
type PolicyFragment struct {
	UsingPolicy xmltree.Element
	Policy      xmltree.Element
}

// ParsePolicyFragment parses a standalone policy document. A fragment that
// does not hold exactly one wsp:UsingPolicy and exactly one wsp:Policy is a
// configuration error.
func ParsePolicyFragment(data []byte) (*PolicyFragment, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing policy fragment: %w", err)
	}
	using, err := exactlyOne(root, "UsingPolicy")
	if err != nil {
		return nil, err
	}
	policy, err := exactlyOne(root, "Policy")
	if err != nil {
		return nil, err
	}
	return &PolicyFragment{UsingPolicy: *using, Policy: *policy}, nil
}

func exactlyOne(root *xmltree.Element, local string) (*xmltree.Element, error) {
	nodes := root.SearchFunc(func(el *xmltree.Element) bool {
		return isTag(el, wsdl.NamespacePolicy, local)
	})
	if isTag(root, wsdl.NamespacePolicy, local) {
		nodes = append([]*xmltree.Element{root}, nodes...)
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("policy fragment: expected exactly one wsp:%s, found %d", local, len(nodes))
	}
	return nodes[0], nil
}

// AttachPolicy replaces the binding's policy attachment with the fragment's
// pair: any existing wsp:UsingPolicy or wsp:Policy children are removed, then
// UsingPolicy and Policy are inserted immediately after the transport binding
// child, ahead of every binding operation. The fragment is copied into the
// tree, never aliased, so one fragment can serve repeated runs.
func AttachPolicy(binding *xmltree.Element, frag *PolicyFragment) {
	removeChildren(binding, func(el *xmltree.Element) bool {
		return isTag(el, wsdl.NamespacePolicy, "UsingPolicy") || isTag(el, wsdl.NamespacePolicy, "Policy")
	})
	pos := 0
	for i := range binding.Children {
		name := binding.Children[i].Name
		if name.Local == "binding" && (name.Space == wsdl.NamespaceSOAP11 || name.Space == wsdl.NamespaceSOAP12) {
			pos = i + 1
			break
		}
	}
	binding.Children = slices.Insert(binding.Children, pos, frag.UsingPolicy, frag.Policy)
}
