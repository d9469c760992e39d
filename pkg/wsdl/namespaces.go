package wsdl

// Namespace URIs of the document vocabularies the reducer understands.
const (
	NamespaceWSDL = "http://schemas.xmlsoap.org/wsdl/"
	NamespaceXSD  = "http://www.w3.org/2001/XMLSchema"

	NamespaceSOAP11 = "http://schemas.xmlsoap.org/wsdl/soap/"
	NamespaceSOAP12 = "http://schemas.xmlsoap.org/wsdl/soap12/"
	NamespaceHTTP   = "http://schemas.xmlsoap.org/wsdl/http/"
	NamespaceMIME   = "http://schemas.xmlsoap.org/wsdl/mime/"

	NamespacePolicy          = "http://schemas.xmlsoap.org/ws/2004/09/policy"
	NamespaceSecurityPolicy  = "http://docs.oasis-open.org/wss-wssecurity-policy/200702"
	NamespaceSecurityUtility = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-utility-1.0.xsd"
)
