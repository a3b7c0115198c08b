package kg

// ObjectKind discriminates the three object forms a statement can carry
type ObjectKind int

const (
	// ObjectIRI is a reference to another node by absolute IRI
	ObjectIRI ObjectKind = iota
	// ObjectLiteral is a plain string literal
	ObjectLiteral
	// ObjectLangLiteral is a string literal with a language tag
	ObjectLangLiteral
)

// Object is the object position of a statement
type Object struct {
	Kind  ObjectKind
	Value string
	Lang  string // set only for ObjectLangLiteral
}

// IRI builds an IRI-reference object
func IRI(value string) Object {
	return Object{Kind: ObjectIRI, Value: value}
}

// Literal builds a plain literal object
func Literal(value string) Object {
	return Object{Kind: ObjectLiteral, Value: value}
}

// LangLiteral builds a language-tagged literal object
func LangLiteral(value, lang string) Object {
	return Object{Kind: ObjectLangLiteral, Value: value, Lang: lang}
}

// Statement is a subject-predicate-object triple, the atomic unit of the
// knowledge graph. Subject and Predicate are absolute IRIs. Statements are
// comparable so a Graph can hold them as a set.
type Statement struct {
	Subject   string
	Predicate string
	Object    Object
}
