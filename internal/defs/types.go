package defs

// Kind distinguishes quoted string values from macro references.
type Kind int

const (
	// Literal values are emitted as quoted C string literals.
	Literal Kind = iota
	// MacroRef values are emitted verbatim as preprocessor tokens.
	MacroRef
)

// Value is the right-hand side of a #define line.
type Value struct {
	Kind Kind
	Text string
}

// LiteralValue wraps s as a quoted string literal.
func LiteralValue(s string) Value {
	return Value{Kind: Literal, Text: s}
}

// MacroRefValue wraps expr as an unquoted macro expression.
func MacroRefValue(expr string) Value {
	return Value{Kind: MacroRef, Text: expr}
}

// String renders the value as it appears in the header. Literal text is not
// escaped.
func (v Value) String() string {
	if v.Kind == MacroRef {
		return v.Text
	}
	return `"` + v.Text + `"`
}

// Define is a single emitted constant.
type Define struct {
	Name  string
	Value Value
}

// Line formats the constant as a preprocessor directive.
func (d Define) Line() string {
	return "#define " + d.Name + " " + d.Value.String()
}

// Lookup is the read side of a key/value document.
type Lookup interface {
	Lookup(key string) (string, bool)
}
