// Package kg defines the statement model of the knowledge graph and the
// identifier spaces pages map into. Everything here is pure: the same title
// always yields the same identifier, so statements built from different
// pages merge correctly into one graph.
package kg

// Well-known vocabulary IRIs used by the extraction engine
const (
	SchemaNS = "http://schema.org/"
	RDFNS    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNS   = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNS    = "http://www.w3.org/2002/07/owl#"

	// RDFType is the instance-of predicate
	RDFType = RDFNS + "type"
	// RDFSLabel is the display-label predicate
	RDFSLabel = RDFSNS + "label"
	// OWLSameAs links an entity to an equivalent external identifier
	OWLSameAs = OWLNS + "sameAs"

	// SchemaAbout links a document to the entity it describes
	SchemaAbout = SchemaNS + "about"
	// SchemaURL is the canonical web-address predicate. Field values mapped
	// onto it must resolve to well-formed IRIs, never literals.
	SchemaURL = SchemaNS + "url"
	// SchemaRelatedTo links an entity to another entity its page references
	SchemaRelatedTo = SchemaNS + "relatedTo"
)
