package msgtree

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	linkRegex      = regexp.MustCompile(`@(?:\.([a-zA-Z0-9_-]+))?:([\w\-|.]+|\([\w\-|.]+\))`)
	parensReplacer = strings.NewReplacer("(", "", ")", "")
)

const (
	argToken        = "{}"
	escapedArgToken = `\{}`
)

// interpolate runs link expansion, named substitution and positional substitution on
// tpl, in that order.
func (r *Resolver) interpolate(s snapshot, tpl string, args []interface{}, namedArgs map[string]interface{}) string {
	res := r.expandLinks(s, tpl)
	res = replaceNamedArgs(res, namedArgs)
	return replaceArgs(res, args)
}

// expandLinks replaces every @:key and @.modifier:key with the referenced message. The
// referenced text is not expanded again.
func (r *Resolver) expandLinks(s snapshot, tpl string) string {
	matches := linkRegex.FindAllStringSubmatch(tpl, -1)
	if len(matches) == 0 {
		return tpl
	}

	res := tpl
	done := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		link, modifierName := match[0], match[1]
		if _, ok := done[link]; ok {
			continue
		}
		done[link] = struct{}{}

		ref := parensReplacer.Replace(match[2])
		translated := ref
		v, ok := r.lookup(s, ref, "")
		if ok {
			leaf, isLeaf := v.(Leaf)
			if !isLeaf {
				r.report(s.locale, newDiagnostic(TypeMismatch, ref, ""))
				continue
			}
			translated = string(leaf)
		}

		if modifierName != "" {
			if modifier, found := r.modifiers[modifierName]; found {
				translated = modifier(translated)
			} else {
				r.report(s.locale, newDiagnostic(UnknownModifier, modifierName, modifierNames(r.modifiers)))
			}
		}

		if translated == "" {
			continue
		}
		res = strings.ReplaceAll(res, link, translated)
	}
	return res
}

// replaceNamedArgs substitutes {name} for every entry of namedArgs, in key order. A nil
// value is rendered as the name itself.
func replaceNamedArgs(res string, namedArgs map[string]interface{}) string {
	if len(namedArgs) == 0 {
		return res
	}
	names := make([]string, 0, len(namedArgs))
	for name := range namedArgs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value := name
		if v := namedArgs[name]; v != nil {
			value = fmt.Sprint(v)
		}
		res = strings.ReplaceAll(res, "{"+name+"}", value)
	}
	return res
}

// replaceArgs fills unescaped {} tokens left to right with args. Surplus args are
// dropped, surplus tokens stay as they are, and \{} is finally unescaped to {}.
func replaceArgs(res string, args []interface{}) string {
	if len(args) > 0 && strings.Contains(res, argToken) {
		var b strings.Builder
		b.Grow(len(res))
		next := 0
		for i := 0; i < len(res); {
			if next < len(args) && strings.HasPrefix(res[i:], argToken) && (i == 0 || res[i-1] != '\\') {
				b.WriteString(argString(args[next]))
				next++
				i += len(argToken)
				continue
			}
			b.WriteByte(res[i])
			i++
		}
		res = b.String()
	}
	return strings.ReplaceAll(res, escapedArgToken, argToken)
}

func argString(arg interface{}) string {
	if arg == nil {
		return ""
	}
	return fmt.Sprint(arg)
}
