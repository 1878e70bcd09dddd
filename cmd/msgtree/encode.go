package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/loopcontext/msgtree"
	"gopkg.in/yaml.v2"
)

// encodeTree serializes tree in format. Keys come out sorted for every format.
func encodeTree(tree msgtree.Tree, format msgtree.Format) ([]byte, error) {
	switch format {
	case msgtree.FormatYAML:
		return yaml.Marshal(tree)
	case msgtree.FormatJSON:
		out, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case msgtree.FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(tree); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", msgtree.ErrUnsupportedFormat, format)
	}
}

// setLeaf stores text at the dot path key, creating intermediate trees. It reports false
// when a prefix of key already holds a message.
func setLeaf(tree msgtree.Tree, key, text string) bool {
	segments := strings.Split(key, ".")
	node := tree
	for _, segment := range segments[:len(segments)-1] {
		switch next := node[segment].(type) {
		case nil:
			child := msgtree.Tree{}
			node[segment] = child
			node = child
		case msgtree.Tree:
			node = next
		default:
			return false
		}
	}
	last := segments[len(segments)-1]
	if _, isTree := node[last].(msgtree.Tree); isTree {
		return false
	}
	node[last] = msgtree.Leaf(text)
	return true
}

// formatOf returns the message format of filename.
func formatOf(filename string) (msgtree.Format, error) {
	return msgtree.FormatFromExt(filepath.Ext(filename))
}
