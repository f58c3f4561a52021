package defs

import (
	"fmt"
	"strings"
)

// GuardSymbol is the include guard wrapping the generated header.
const GuardSymbol = "COMMON_DEFS_H_"

// Header is the fully resolved set of constants in emission order.
type Header struct {
	Defines []Define
}

// Build merges override over defaults for every recognized key. Keys with a
// symbolic fallback ignore defaults and emit the macro expression unless the
// override supplies them. Every missing key is reported in a single error.
func Build(defaults, override Lookup) (Header, error) {
	defines := make([]Define, 0, len(entries)+2)
	var missing []string

	for _, e := range entries {
		value, ok := effectiveValue(e, defaults, override)
		if !ok {
			missing = append(missing, e.key)
			continue
		}

		defines = append(defines, Define{Name: e.key, Value: value})
		if value.Kind != Literal {
			continue
		}
		for _, v := range e.variants {
			defines = append(defines, Define{
				Name:  e.key + v.suffix,
				Value: LiteralValue(v.transform(value.Text)),
			})
		}
	}

	if len(missing) > 0 {
		return Header{}, fmt.Errorf("%w: %s", ErrMissingKey, strings.Join(missing, ", "))
	}
	return Header{Defines: defines}, nil
}

func effectiveValue(e entry, defaults, override Lookup) (Value, bool) {
	if v, ok := override.Lookup(e.key); ok {
		return LiteralValue(v), true
	}
	if e.fallback != nil {
		return *e.fallback, true
	}
	if v, ok := defaults.Lookup(e.key); ok {
		return LiteralValue(v), true
	}
	return Value{}, false
}

// Lines returns the header text one line per element, guard included.
func (h Header) Lines() []string {
	lines := make([]string, 0, len(h.Defines)+3)
	lines = append(lines, "#ifndef "+GuardSymbol, "#define "+GuardSymbol)
	for _, d := range h.Defines {
		lines = append(lines, d.Line())
	}
	return append(lines, "#endif")
}

// Render joins Lines with sep. No separator follows the final line.
func (h Header) Render(sep string) []byte {
	return []byte(strings.Join(h.Lines(), sep))
}
