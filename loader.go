package msgtree

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// Format is a message file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromExt maps a file extension (with or without the dot) to a Format.
func FormatFromExt(ext string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Parse decodes a message document.
func Parse(data []byte, format Format) (Tree, error) {
	var tree Tree
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml messages: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to unmarshal json messages: %w", err)
		}
	case FormatTOML:
		var raw map[string]interface{}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal toml messages: %w", err)
		}
		converted, err := FromMap(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to convert toml messages: %w", err)
		}
		tree = converted
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if tree == nil {
		tree = Tree{}
	}
	return tree, nil
}

// LoadFile reads and decodes the message file at filename, picking the format from its
// extension.
func LoadFile(filename string) (Tree, error) {
	format, err := FormatFromExt(filepath.Ext(filename))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read message file: %w", err)
	}
	tree, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return tree, nil
}

// LocaleFromFile derives the locale tag from a file named <locale>.<ext>. Underscores are
// turned into hyphens, so en_US.yaml yields en-US.
func LocaleFromFile(name string) (string, error) {
	base := path.Base(filepath.ToSlash(name))
	locale := strings.TrimSuffix(base, path.Ext(base))
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyLocale, name)
	}
	return locale, nil
}

// LoadFS decodes every message file directly under dir in fsys and returns the trees
// indexed by locale. Files with an unknown extension are skipped.
func LoadFS(fsys fs.FS, dir string) (map[string]Tree, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}

	treeByLocale := map[string]Tree{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		format, err := FormatFromExt(path.Ext(name))
		if err != nil {
			continue
		}
		locale, err := LocaleFromFile(name)
		if err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read message file: %w", err)
		}
		tree, err := Parse(data, format)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if _, exists := treeByLocale[locale]; exists {
			return nil, fmt.Errorf("duplicate message files for locale %s", locale)
		}
		treeByLocale[locale] = tree
	}
	return treeByLocale, nil
}
