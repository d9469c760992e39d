// Package wsdl models a WSDL 1.1 document as a mutable element tree and
// provides the qualified-name lookups the reduction pipeline is built on.
//
// The package deliberately keeps the document as a generic xmltree.Element
// tree instead of decoding it into structs: the reducer's output is the same
// document with fewer nodes, so every attribute, comment and vendor extension
// it does not understand must survive untouched.
package wsdl

import (
	"encoding/xml"
	"fmt"

	"aqwari.net/xml/xmltree"
)

// Document is a parsed WSDL definitions tree.
type Document struct {
	Root *xmltree.Element

	targetNS string
}

// Parse reads a WSDL document into a Document. It rejects trees whose root is
// not a wsdl:definitions element; everything below the root is taken as-is.
func Parse(data []byte) (*Document, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing wsdl: %w", err)
	}
	if root.Name.Space != NamespaceWSDL || root.Name.Local != "definitions" {
		return nil, fmt.Errorf("parsing wsdl: root element is %s, expected wsdl:definitions", root.Name.Local)
	}
	return &Document{Root: root, targetNS: root.Attr("", "targetNamespace")}, nil
}

// TargetNamespace returns the definitions' target namespace.
func (d *Document) TargetNamespace() string {
	return d.targetNS
}

// Marshal serializes the document with two-space indentation. Formatting is
// the only opinion this layer has about output.
func (d *Document) Marshal() []byte {
	return xmltree.MarshalIndent(d.Root, "", "  ")
}

// Services returns the document's top-level wsdl:service elements.
func (d *Document) Services() []*xmltree.Element {
	return ChildElements(d.Root, NamespaceWSDL, "service")
}

// FindService returns the wsdl:service with the given name attribute, or nil.
func (d *Document) FindService(name string) *xmltree.Element {
	for _, svc := range d.Services() {
		if svc.Attr("", "name") == name {
			return svc
		}
	}
	return nil
}

// FirstPort returns the first wsdl:port of a service, or nil when the service
// declares none. Only the first port's binding is ever targeted by a
// reduction; services with multiple differently-bound ports are unsupported
// and lose their other ports.
func FirstPort(service *xmltree.Element) *xmltree.Element {
	ports := ChildElements(service, NamespaceWSDL, "port")
	if len(ports) == 0 {
		return nil
	}
	return ports[0]
}

// BindingForPort resolves a port's binding attribute to the top-level
// wsdl:binding it names, or nil when unresolved.
func (d *Document) BindingForPort(port *xmltree.Element) *xmltree.Element {
	ref, ok := Ref(port, "binding")
	if !ok {
		return nil
	}
	return FindDeclaration(d.Root, xml.Name{Space: NamespaceWSDL, Local: "binding"}, d.targetNS, ref)
}

// PortTypeForBinding resolves a binding's type attribute to the top-level
// wsdl:portType it names, or nil when unresolved.
func (d *Document) PortTypeForBinding(binding *xmltree.Element) *xmltree.Element {
	ref, ok := Ref(binding, "type")
	if !ok {
		return nil
	}
	return FindDeclaration(d.Root, xml.Name{Space: NamespaceWSDL, Local: "portType"}, d.targetNS, ref)
}

// Messages returns the document's top-level wsdl:message elements.
func (d *Document) Messages() []*xmltree.Element {
	return ChildElements(d.Root, NamespaceWSDL, "message")
}

// Schemas returns every xsd:schema embedded under any wsdl:types section.
// A document may carry several schema fragments with distinct target
// namespaces; callers treat them as one merged, namespace-partitioned graph.
func (d *Document) Schemas() []*xmltree.Element {
	var schemas []*xmltree.Element
	for _, types := range ChildElements(d.Root, NamespaceWSDL, "types") {
		schemas = append(schemas, ChildElements(types, NamespaceXSD, "schema")...)
	}
	return schemas
}

// SOAPVersion reports the SOAP version of a binding's transport ("1.1" or
// "1.2") from the namespace of its soap binding child, or "" for bindings
// with no SOAP transport child.
func SOAPVersion(binding *xmltree.Element) string {
	for i := range binding.Children {
		name := binding.Children[i].Name
		if name.Local != "binding" {
			continue
		}
		switch name.Space {
		case NamespaceSOAP11:
			return "1.1"
		case NamespaceSOAP12:
			return "1.2"
		}
	}
	return ""
}
