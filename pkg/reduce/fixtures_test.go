package reduce

// Test documents. The human-resources WSDL declares three operations on the
// target port type ({Get, List, Delete}), a second port type and binding over
// SOAP 1.1, a second service, a recursive complex type, an intentionally
// unreferenced type, and import/include declarations, so one document covers
// the closure, minimality, recursion and single-target properties.

const hrWSDL = `<wsdl:definitions name="HumanResources"
  targetNamespace="urn:example:hr"
  xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
  xmlns:xsd="http://www.w3.org/2001/XMLSchema"
  xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
  xmlns:soap12="http://schemas.xmlsoap.org/wsdl/soap12/"
  xmlns:tns="urn:example:hr">
  <wsdl:types>
    <xsd:schema targetNamespace="urn:example:hr">
      <xsd:import namespace="urn:example:common" schemaLocation="common.xsd"/>
      <xsd:include schemaLocation="extra.xsd"/>
      <xsd:element name="GetRequestElt" type="tns:GetRequestType"/>
      <xsd:complexType name="GetRequestType">
        <xsd:sequence>
          <xsd:element name="id" type="tns:IdType"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:simpleType name="IdType">
        <xsd:restriction base="xsd:string"/>
      </xsd:simpleType>
      <xsd:element name="GetResponseElt" type="tns:GetResponseType"/>
      <xsd:complexType name="GetResponseType">
        <xsd:sequence>
          <xsd:element name="org" type="tns:OrgUnitType"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="OrgUnitType">
        <xsd:sequence>
          <xsd:element name="child" type="tns:OrgUnitType" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:element name="ListRequestElt" type="tns:ListRequestType"/>
      <xsd:complexType name="ListRequestType">
        <xsd:sequence>
          <xsd:element name="page" type="xsd:int"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:element name="LookupRequestElt" type="tns:LookupRequestType"/>
      <xsd:complexType name="LookupRequestType">
        <xsd:sequence/>
      </xsd:complexType>
      <xsd:complexType name="UnusedType">
        <xsd:sequence/>
      </xsd:complexType>
    </xsd:schema>
  </wsdl:types>
  <wsdl:message name="GetRequest">
    <wsdl:part name="body" element="tns:GetRequestElt"/>
  </wsdl:message>
  <wsdl:message name="GetResponse">
    <wsdl:part name="body" element="tns:GetResponseElt"/>
  </wsdl:message>
  <wsdl:message name="ListRequest">
    <wsdl:part name="body" element="tns:ListRequestElt"/>
  </wsdl:message>
  <wsdl:message name="DeleteRequest">
    <wsdl:part name="id" type="tns:IdType"/>
  </wsdl:message>
  <wsdl:message name="LookupRequest">
    <wsdl:part name="body" element="tns:LookupRequestElt"/>
  </wsdl:message>
  <wsdl:portType name="HumanResourcesPortType">
    <wsdl:operation name="Get">
      <wsdl:input message="tns:GetRequest"/>
      <wsdl:output message="tns:GetResponse"/>
    </wsdl:operation>
    <wsdl:operation name="List">
      <wsdl:input message="tns:ListRequest"/>
      <wsdl:output message="tns:GetResponse"/>
    </wsdl:operation>
    <wsdl:operation name="Delete">
      <wsdl:input message="tns:DeleteRequest"/>
    </wsdl:operation>
  </wsdl:portType>
  <wsdl:portType name="DirectoryPortType">
    <wsdl:operation name="Lookup">
      <wsdl:input message="tns:LookupRequest"/>
    </wsdl:operation>
  </wsdl:portType>
  <wsdl:binding name="HumanResourcesBinding" type="tns:HumanResourcesPortType">
    <soap12:binding transport="http://schemas.xmlsoap.org/soap/http"/>
    <wsdl:operation name="Get">
      <soap12:operation soapAction="urn:example:hr/Get"/>
    </wsdl:operation>
    <wsdl:operation name="List">
      <soap12:operation soapAction="urn:example:hr/List"/>
    </wsdl:operation>
    <wsdl:operation name="Delete">
      <soap12:operation soapAction="urn:example:hr/Delete"/>
    </wsdl:operation>
  </wsdl:binding>
  <wsdl:binding name="DirectoryBinding" type="tns:DirectoryPortType">
    <soap:binding transport="http://schemas.xmlsoap.org/soap/http"/>
    <wsdl:operation name="Lookup">
      <soap:operation soapAction="urn:example:hr/Lookup"/>
    </wsdl:operation>
  </wsdl:binding>
  <wsdl:service name="Human_Resources">
    <wsdl:port name="HumanResourcesPort" binding="tns:HumanResourcesBinding">
      <soap12:address location="https://example.invalid/hr"/>
    </wsdl:port>
    <wsdl:port name="DirectoryPort" binding="tns:DirectoryBinding">
      <soap:address location="https://example.invalid/directory"/>
    </wsdl:port>
  </wsdl:service>
  <wsdl:service name="Directory">
    <wsdl:port name="DirectoryOnlyPort" binding="tns:DirectoryBinding">
      <soap:address location="https://example.invalid/directory"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>`

// The claims WSDL covers the reference kinds the human-resources document
// does not: an operation carrying a fault message, and a structural
// xsd:element ref edge closing a multi-item type cycle
// (SubmitRequestType, AttachmentElt, AttachmentType, SubmitRequestType).

const claimsNS = "urn:example:claims"

const claimsWSDL = `<wsdl:definitions name="Claims"
  targetNamespace="urn:example:claims"
  xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
  xmlns:xsd="http://www.w3.org/2001/XMLSchema"
  xmlns:soap12="http://schemas.xmlsoap.org/wsdl/soap12/"
  xmlns:tns="urn:example:claims">
  <wsdl:types>
    <xsd:schema targetNamespace="urn:example:claims">
      <xsd:element name="SubmitRequestElt" type="tns:SubmitRequestType"/>
      <xsd:complexType name="SubmitRequestType">
        <xsd:sequence>
          <xsd:element ref="tns:AttachmentElt"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:element name="AttachmentElt" type="tns:AttachmentType"/>
      <xsd:complexType name="AttachmentType">
        <xsd:sequence>
          <xsd:element name="claim" type="tns:SubmitRequestType" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:element name="SubmitFaultElt" type="xsd:string"/>
      <xsd:element name="CancelRequestElt" type="xsd:string"/>
      <xsd:complexType name="UnusedType">
        <xsd:sequence/>
      </xsd:complexType>
    </xsd:schema>
  </wsdl:types>
  <wsdl:message name="SubmitRequest">
    <wsdl:part name="body" element="tns:SubmitRequestElt"/>
  </wsdl:message>
  <wsdl:message name="SubmitFault">
    <wsdl:part name="fault" element="tns:SubmitFaultElt"/>
  </wsdl:message>
  <wsdl:message name="CancelRequest">
    <wsdl:part name="body" element="tns:CancelRequestElt"/>
  </wsdl:message>
  <wsdl:portType name="ClaimsPortType">
    <wsdl:operation name="Submit">
      <wsdl:input message="tns:SubmitRequest"/>
      <wsdl:fault name="error" message="tns:SubmitFault"/>
    </wsdl:operation>
    <wsdl:operation name="Cancel">
      <wsdl:input message="tns:CancelRequest"/>
    </wsdl:operation>
  </wsdl:portType>
  <wsdl:binding name="ClaimsBinding" type="tns:ClaimsPortType">
    <soap12:binding transport="http://schemas.xmlsoap.org/soap/http"/>
    <wsdl:operation name="Submit">
      <soap12:operation soapAction="urn:example:claims/Submit"/>
    </wsdl:operation>
    <wsdl:operation name="Cancel">
      <soap12:operation soapAction="urn:example:claims/Cancel"/>
    </wsdl:operation>
  </wsdl:binding>
  <wsdl:service name="Claims">
    <wsdl:port name="ClaimsPort" binding="tns:ClaimsBinding">
      <soap12:address location="https://example.invalid/claims"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>`

const policyDoc = `<attachment
  xmlns:wsp="http://schemas.xmlsoap.org/ws/2004/09/policy"
  xmlns:wsu="http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-utility-1.0.xsd">
  <wsp:UsingPolicy/>
  <wsp:Policy wsu:Id="TransportSecurity">
    <wsp:ExactlyOne>
      <wsp:All/>
    </wsp:ExactlyOne>
  </wsp:Policy>
</attachment>`

const policyDocNoUsingPolicy = `<attachment
  xmlns:wsp="http://schemas.xmlsoap.org/ws/2004/09/policy">
  <wsp:Policy/>
</attachment>`

const policyDocTwoPolicies = `<attachment
  xmlns:wsp="http://schemas.xmlsoap.org/ws/2004/09/policy">
  <wsp:UsingPolicy/>
  <wsp:Policy/>
  <wsp:Policy/>
</attachment>`
