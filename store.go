package msgtree

import "strings"

// Lookup resolves path in tree. When namespace is not empty the effective path is
// namespace + "." + path. A top-level key that literally equals the effective path wins
// over dot-path descent. The second result is false when any segment is missing or the
// descent hits a leaf before the last segment.
func Lookup(tree Tree, path, namespace string) (Value, bool) {
	if tree == nil {
		return nil, false
	}
	if namespace != "" {
		path = namespace + "." + path
	}
	if v, ok := tree[path]; ok && v != nil {
		return v, true
	}

	current := tree
	segments := strings.Split(path, ".")
	for idx, segment := range segments {
		v, ok := current[segment]
		if !ok || v == nil {
			return nil, false
		}
		if idx == len(segments)-1 {
			return v, true
		}
		sub, ok := v.(Tree)
		if !ok {
			return nil, false
		}
		current = sub
	}
	return nil, false
}

// LookupString is Lookup restricted to leaves.
func LookupString(tree Tree, path, namespace string) (string, bool) {
	v, ok := Lookup(tree, path, namespace)
	if !ok {
		return "", false
	}
	leaf, ok := v.(Leaf)
	return string(leaf), ok
}
