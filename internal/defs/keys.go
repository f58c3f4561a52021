package defs

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type variant struct {
	suffix    string
	transform func(string) string
}

type entry struct {
	key string
	// fallback replaces the defaults document when the key is not overridden.
	fallback *Value
	variants []variant
}

// upper and lower apply full Unicode case mapping, so "ß" becomes "SS".
// A Caser holds state, so one is built per call.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func macro(expr string) *Value {
	v := MacroRefValue(expr)
	return &v
}

var entries = []entry{
	{
		key: "PRODUCT_NAME",
		variants: []variant{
			{suffix: "_UPPER", transform: upper},
			{suffix: "_LOWER", transform: lower},
		},
	},
	{key: "PRODUCT_VERSION"},
	{key: "DEFAULT_BASE_PAK", fallback: macro("PRODUCT_NAME_LOWER")},
	{key: "GAMENAME_STRING"},
	{key: "GAMENAME_FOR_MASTER", fallback: macro("PRODUCT_NAME_UPPER")},
	{key: "MASTER_SERVER_NAME"},
	{key: "IRC_SERVER"},
	{key: "IRC_CHANNEL"},
	{key: "WWW_BASEURL"},
	{key: "AUTOEXEC_NAME"},
	{key: "CONFIG_NAME"},
	{key: "KEYBINDINGS_NAME"},
	{key: "TEAMCONFIG_NAME"},
	{key: "SERVERCONFIG_NAME"},
	{key: "UNNAMED_PLAYER"},
	{key: "UNNAMED_SERVER", fallback: macro(`PRODUCT_NAME " " PRODUCT_VERSION " Server"`)},
	{key: "RSAKEY_FILE"},
}

// Keys returns the recognized keys in emission order.
func Keys() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.key
	}
	return out
}

// UnknownKeys returns the members of keys that are not recognized, preserving order.
func UnknownKeys(keys []string) []string {
	known := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		known[e.key] = struct{}{}
	}

	var out []string
	for _, k := range keys {
		if _, ok := known[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}
