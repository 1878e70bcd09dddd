package msgtree

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers are stateful, so each call builds its own.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Capitalize upper-cases the first character of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return upper(s[:size]) + lower(s[size:])
}

func defaultModifiers() map[string]Modifier {
	return map[string]Modifier{
		"upper":      upper,
		"lower":      lower,
		"capitalize": Capitalize,
	}
}

func buildModifiers(custom map[string]Modifier) map[string]Modifier {
	modifiers := defaultModifiers()
	for name, fn := range custom {
		if fn == nil {
			continue
		}
		modifiers[name] = fn
	}
	return modifiers
}

func modifierNames(modifiers map[string]Modifier) string {
	names := make([]string, 0, len(modifiers))
	for name := range modifiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
