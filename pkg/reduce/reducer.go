// Package reduce prunes a WSDL document to the minimal self-consistent
// subset required by a chosen set of operations: it computes the transitive
// closure of messages and schema declarations reachable from the kept
// operations, deletes everything outside that closure, reduces the document
// to a single binding, port and port type, and optionally splices a WS-Policy
// pair into the surviving SOAP 1.2 binding.
package reduce

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/wsdltrim/wsdltrim/pkg/wsdl"
)

// Options configure one reduction run.
type Options struct {
	// KeepOperations are the interface operations to retain. Everything not
	// transitively required by them is deleted.
	KeepOperations []string
	// Policy, when set, replaces the surviving binding's policy attachment.
	// It only applies to SOAP 1.2 bindings; for other transports the fragment
	// is ignored.
	Policy *PolicyFragment
}

// Reduce prunes doc in place to the subset needed by the named service's kept
// operations. The target is the binding of the service's first port; services
// exposing several ports with different bindings are unsupported and lose
// their remaining ports.
//
// Every fatal precondition (service, port, binding and port type lookups; the
// policy fragment's shape, checked at parse time) is established before the
// first deletion, so a failed run leaves the tree untouched. Reduction is
// destructive and not safely repeatable on a shared tree across different
// configurations; re-running with the same options is a structural no-op.
func Reduce(doc *wsdl.Document, serviceName string, opts Options) error {
	if len(opts.KeepOperations) == 0 {
		return fmt.Errorf("reduce service %q: no operations to keep", serviceName)
	}

	svc := doc.FindService(serviceName)
	if svc == nil {
		return fmt.Errorf("reduce: service %q not found", serviceName)
	}
	port := wsdl.FirstPort(svc)
	if port == nil {
		return fmt.Errorf("reduce: service %q declares no port", serviceName)
	}
	binding := doc.BindingForPort(port)
	if binding == nil {
		return fmt.Errorf("reduce: binding %q of service %q not found", port.Attr("", "binding"), serviceName)
	}
	portType := doc.PortTypeForBinding(binding)
	if portType == nil {
		return fmt.Errorf("reduce: port type %q of binding %q not found", binding.Attr("", "type"), binding.Attr("", "name"))
	}

	tns := doc.TargetNamespace()
	bindingName := wsdl.DeclaredName(binding, tns)
	portTypeName := wsdl.DeclaredName(portType, tns)
	soapVersion := wsdl.SOAPVersion(binding)

	keepOps := make(map[string]bool, len(opts.KeepOperations))
	for _, op := range opts.KeepOperations {
		keepOps[op] = true
	}

	log.Debug().
		Str("service", serviceName).
		Str("binding", bindingName.Local).
		Str("portType", portTypeName.Local).
		Int("keep_operations", len(keepOps)).
		Msg("Reducing WSDL")

	// Interface operations, then the message layer recomputed from the
	// pruned interface.
	PruneOperations(doc, portTypeName, keepOps)
	msgKeep := MessageRefs(findPortType(doc, portTypeName))
	PruneMessages(doc, msgKeep)

	// Schema layer: closure over the surviving parts' references, then the
	// sweep across every embedded schema.
	index := NewDeclarationIndex(doc.Schemas())
	seeds := SchemaSeeds(doc.Messages())
	keepKeys := NewResolver(index).Reachable(seeds)
	PruneSchemas(doc, keepKeys)

	log.Debug().
		Int("messages", len(msgKeep)).
		Int("schema_keys", len(keepKeys)).
		Msg("Computed retained sets")

	// Transport layer and policy attachment.
	PruneBindings(doc, bindingName, keepOps)
	if opts.Policy != nil && soapVersion == "1.2" {
		AttachPolicy(findBinding(doc, bindingName), opts.Policy)
	}

	// Endpoints and remaining interface declarations.
	PrunePorts(doc, bindingName)
	PrunePortTypes(doc, portTypeName)

	return nil
}
