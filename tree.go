package msgtree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Value is either a Leaf message or a nested Tree.
type Value interface {
	isValue()
}

// Leaf is a message template.
type Leaf string

// Tree is a group of messages addressed by key.
type Tree map[string]Value

func (Leaf) isValue() {}
func (Tree) isValue() {}

// String returns the leaf text.
func (l Leaf) String() string {
	return string(l)
}

// Keys returns the keys of t in sorted order.
func (t Tree) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Flatten returns every leaf of t indexed by its dot path.
func (t Tree) Flatten() map[string]string {
	out := map[string]string{}
	t.flatten("", out)
	return out
}

func (t Tree) flatten(prefix string, out map[string]string) {
	for k, v := range t {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch typed := v.(type) {
		case Leaf:
			out[path] = string(typed)
		case Tree:
			typed.flatten(path, out)
		}
	}
}

// FromMap converts a decoded document into a Tree. Mappings become nested trees and
// scalars (strings, numbers, booleans) become leaves. Null values and lists are rejected.
func FromMap(m map[string]interface{}) (Tree, error) {
	tree := make(Tree, len(m))
	for k, raw := range m {
		v, err := toValue(k, raw)
		if err != nil {
			return nil, err
		}
		tree[k] = v
	}
	return tree, nil
}

func toValue(key string, raw interface{}) (Value, error) {
	switch typed := raw.(type) {
	case nil:
		return nil, fmt.Errorf("key %q: %w", key, ErrNilValue)
	case string:
		return Leaf(typed), nil
	case Leaf:
		return typed, nil
	case Tree:
		return typed, nil
	case map[string]interface{}:
		sub, err := FromMap(typed)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		return sub, nil
	case map[interface{}]interface{}:
		converted := make(map[string]interface{}, len(typed))
		for k, v := range typed {
			converted[fmt.Sprintf("%v", k)] = v
		}
		sub, err := FromMap(converted)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		return sub, nil
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return Leaf(fmt.Sprintf("%v", typed)), nil
	default:
		return nil, fmt.Errorf("key %q: %w: %T", key, ErrUnsupportedValue, raw)
	}
}

// UnmarshalYAML decodes a YAML mapping into a Tree.
func (t *Tree) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw map[string]interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	tree, err := FromMap(raw)
	if err != nil {
		return err
	}
	*t = tree
	return nil
}

// UnmarshalJSON decodes a JSON object into a Tree. Numbers keep their literal text.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	tree, err := FromMap(raw)
	if err != nil {
		return err
	}
	*t = tree
	return nil
}
