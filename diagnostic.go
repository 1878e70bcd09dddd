package msgtree

import "fmt"

// DiagnosticKind classifies a degraded resolution.
type DiagnosticKind int

const (
	// KeyMissing reports a path with no corresponding value.
	KeyMissing DiagnosticKind = iota
	// TypeMismatch reports a sub-tree found where a message was expected.
	TypeMismatch
	// UnknownModifier reports a link modifier that is not registered.
	UnknownModifier
)

func (k DiagnosticKind) String() string {
	switch k {
	case KeyMissing:
		return "key_missing"
	case TypeMismatch:
		return "type_mismatch"
	case UnknownModifier:
		return "unknown_modifier"
	default:
		return fmt.Sprintf("diagnostic(%d)", int(k))
	}
}

// Diagnostic describes a lookup that degraded to a textual fallback. It is never
// returned by Translate or Pluralize; it is logged and handed to the Observer.
type Diagnostic struct {
	Kind DiagnosticKind
	// Key is the lookup path, link reference or modifier name involved.
	Key string
	// Detail is the namespace of a missing key or the registered modifier names.
	Detail string
}

func (d *Diagnostic) Error() string {
	switch d.Kind {
	case KeyMissing:
		return fmt.Sprintf("localization key %s not found", d.Key)
	case TypeMismatch:
		return fmt.Sprintf("resource %s is not a string", d.Key)
	case UnknownModifier:
		if d.Detail != "" {
			return fmt.Sprintf("undefined modifier %s, available modifiers: %s", d.Key, d.Detail)
		}
		return fmt.Sprintf("undefined modifier %s", d.Key)
	default:
		return fmt.Sprintf("%s: %s", d.Kind, d.Key)
	}
}

func newDiagnostic(kind DiagnosticKind, key string, detail string) *Diagnostic {
	return &Diagnostic{Kind: kind, Key: key, Detail: detail}
}
