package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/loopcontext/msgtree"
	"github.com/spf13/cobra"
)

const defaultMsgtreePkg = "github.com/loopcontext/msgtree"

// extractConfig holds flags for the extract command.
type extractConfig struct {
	paths        []string
	out          string
	source       string
	format       string
	includeTests bool
	msgtreePkg   string
	excludeDirs  string
}

func newExtractCmd() *cobra.Command {
	var cfg extractConfig
	cmd := &cobra.Command{
		Use:   "extract [paths]",
		Short: "Discover message keys referenced in Go code",
		Long: `Extract discovers message keys passed as string literals to Translate, Pluralize,
ResolveText, ResolvePlural, Plain, Lookup and LookupString, and set as Options.Key.

If no paths are provided, scans the current directory.

Modes:
  - Keys only: omit --source; writes unique keys (one per line) to --out or stdout, or a
    skeleton message tree with --format yaml|json|toml.
  - Sync: set --source to a message file; adds missing keys with empty text (plural keys
    get .one and .other) and writes the file back, or to --out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.paths = args
			if len(cfg.paths) == 0 {
				cfg.paths = []string{"."}
			}
			return runExtract(&cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&cfg.out, "out", "", "Output file (keys: one key per line; sync: message file path). Default stdout for keys.")
	flags.StringVar(&cfg.source, "source", "", "Source message file (enables sync mode).")
	flags.StringVar(&cfg.format, "format", "keys", "Keys mode output: keys, yaml, json or toml. Ignored in sync mode.")
	flags.BoolVar(&cfg.includeTests, "include-tests", false, "Include _test.go files.")
	flags.StringVar(&cfg.msgtreePkg, "pkg", defaultMsgtreePkg, "Import path of msgtree (detect calls from this package).")
	flags.StringVar(&cfg.excludeDirs, "exclude", "vendor", "Comma-separated dir names to skip (e.g. vendor).")
	return cmd
}

// keyExtractor collects message keys from Go files via AST.
type keyExtractor struct {
	msgtreeImport string
	msgtreeName   string // local name in current file (e.g. "msgtree")
	keys          map[string]struct{}
	pluralKeys    map[string]struct{}
	methodArgIdx  map[string]int
	funcArgIdx    map[string]int
}

func newKeyExtractor(msgtreeImport string) *keyExtractor {
	return &keyExtractor{
		msgtreeImport: msgtreeImport,
		keys:          make(map[string]struct{}),
		pluralKeys:    make(map[string]struct{}),
		methodArgIdx: map[string]int{
			"Translate":     0,
			"ResolveText":   0,
			"Plain":         0,
			"Pluralize":     0,
			"ResolvePlural": 0,
		},
		funcArgIdx: map[string]int{
			"Lookup":       1,
			"LookupString": 1,
		},
	}
}

func isPluralMethod(name string) bool {
	return name == "Pluralize" || name == "ResolvePlural"
}

func (e *keyExtractor) extractFromFile(path string, src []byte) error {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return err
	}
	e.msgtreeName = e.msgtreeImportName(f)
	if e.msgtreeName == "" {
		return nil
	}
	ast.Walk(e, f)
	return nil
}

func (e *keyExtractor) msgtreeImportName(file *ast.File) string {
	for _, imp := range file.Imports {
		if imp.Path == nil {
			continue
		}
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != e.msgtreeImport {
			continue
		}
		if imp.Name != nil {
			return imp.Name.Name
		}
		return path[strings.LastIndex(path, "/")+1:]
	}
	return ""
}

func (e *keyExtractor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.CompositeLit:
		e.visitOptionsLit(n)
	case *ast.CallExpr:
		e.visitCall(n)
	}
	return e
}

func (e *keyExtractor) visitCall(call *ast.CallExpr) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}
	name := sel.Sel.Name
	idx, ok := e.funcArgIdx[name]
	if ok {
		if id, isIdent := sel.X.(*ast.Ident); !isIdent || id.Name != e.msgtreeName {
			return
		}
	} else if idx, ok = e.methodArgIdx[name]; !ok {
		return
	}
	if idx >= len(call.Args) {
		return
	}
	key := e.extractString(call.Args[idx])
	if key == "" {
		return
	}
	if isPluralMethod(name) {
		e.pluralKeys[key] = struct{}{}
		return
	}
	e.keys[key] = struct{}{}
}

// visitOptionsLit records the Key field of msgtree.Options literals.
func (e *keyExtractor) visitOptionsLit(cl *ast.CompositeLit) {
	if !e.isOptionsType(cl.Type) {
		return
	}
	for _, elt := range cl.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		if id, ok := kv.Key.(*ast.Ident); !ok || id.Name != "Key" {
			continue
		}
		if key := e.extractString(kv.Value); key != "" {
			e.keys[key] = struct{}{}
		}
	}
}

func (e *keyExtractor) isOptionsType(typ ast.Expr) bool {
	var sel *ast.SelectorExpr
	switch t := typ.(type) {
	case *ast.SelectorExpr:
		sel = t
	case *ast.StarExpr:
		sel, _ = t.X.(*ast.SelectorExpr)
	}
	if sel == nil {
		return false
	}
	id, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}
	return id.Name == e.msgtreeName && sel.Sel.Name == "Options"
}

// extractString returns the value of a string literal or a concatenation of literals.
func (e *keyExtractor) extractString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.BasicLit:
		if t.Kind == token.STRING {
			s, _ := strconv.Unquote(t.Value)
			return s
		}
	case *ast.BinaryExpr:
		if t.Op == token.ADD {
			x, y := e.extractString(t.X), e.extractString(t.Y)
			if x == "" || y == "" {
				return ""
			}
			return x + y
		}
	case *ast.ParenExpr:
		return e.extractString(t.X)
	}
	return ""
}

func (e *keyExtractor) sortedKeys() []string {
	return sortedSet(e.keys)
}

func (e *keyExtractor) sortedPluralKeys() []string {
	return sortedSet(e.pluralKeys)
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// skeleton returns a tree holding every extracted key with empty text.
func (e *keyExtractor) skeleton() (msgtree.Tree, []string) {
	tree := msgtree.Tree{}
	conflicts := e.addMissing(tree)
	return tree, conflicts
}

// addMissing adds every extracted key absent from tree with empty text and returns the
// keys that collide with existing messages. Plural keys get .one and .other variants.
func (e *keyExtractor) addMissing(tree msgtree.Tree) []string {
	var conflicts []string
	add := func(key string) {
		if _, ok := msgtree.Lookup(tree, key, ""); ok {
			return
		}
		if !setLeaf(tree, key, "") {
			conflicts = append(conflicts, key)
		}
	}
	for _, key := range e.sortedKeys() {
		add(key)
	}
	for _, key := range e.sortedPluralKeys() {
		if _, ok := msgtree.Lookup(tree, key, ""); ok {
			continue
		}
		add(key + "." + string(msgtree.PluralOne))
		add(key + "." + string(msgtree.PluralOther))
	}
	return conflicts
}

func (e *keyExtractor) scan(cfg *extractConfig) error {
	excludeSet := make(map[string]struct{})
	for _, d := range strings.Split(cfg.excludeDirs, ",") {
		d = strings.TrimSpace(d)
		if d != "" {
			excludeSet[d] = struct{}{}
		}
	}
	wanted := func(p string) bool {
		if filepath.Ext(p) != ".go" {
			return false
		}
		return cfg.includeTests || !strings.HasSuffix(p, "_test.go")
	}
	for _, path := range cfg.paths {
		path = filepath.Clean(path)
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			if !wanted(path) {
				continue
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := e.extractFromFile(path, src); err != nil {
				return err
			}
			continue
		}
		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if _, skip := excludeSet[d.Name()]; skip && p != path {
					return filepath.SkipDir
				}
				return nil
			}
			if !wanted(p) {
				return nil
			}
			src, err := os.ReadFile(p)
			if err != nil {
				return err
			}
			return e.extractFromFile(p, src)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func runExtract(cfg *extractConfig, stdout, stderr io.Writer) error {
	pkg := cfg.msgtreePkg
	if pkg == "" {
		pkg = defaultMsgtreePkg
	}
	ext := newKeyExtractor(pkg)
	if err := ext.scan(cfg); err != nil {
		return err
	}
	if cfg.source != "" {
		return runExtractSync(cfg, ext, stderr)
	}

	var out []byte
	switch cfg.format {
	case "", "keys":
		keys := append(ext.sortedKeys(), ext.sortedPluralKeys()...)
		sort.Strings(keys)
		text := strings.Join(keys, "\n")
		if text != "" {
			text += "\n"
		}
		out = []byte(text)
	default:
		format, err := msgtree.FormatFromExt(cfg.format)
		if err != nil {
			return err
		}
		tree, conflicts := ext.skeleton()
		reportConflicts(stderr, conflicts)
		if out, err = encodeTree(tree, format); err != nil {
			return fmt.Errorf("encode %s: %w", format, err)
		}
	}
	if cfg.out != "" {
		return os.WriteFile(cfg.out, out, 0644)
	}
	_, err := stdout.Write(out)
	return err
}

// runExtractSync reads the source message file, adds the missing keys with empty text
// and writes it to cfg.out, or back to the source.
func runExtractSync(cfg *extractConfig, ext *keyExtractor, stderr io.Writer) error {
	tree, err := msgtree.LoadFile(cfg.source)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	before := len(tree.Flatten())
	reportConflicts(stderr, ext.addMissing(tree))
	added := len(tree.Flatten()) - before

	outPath := cfg.out
	if outPath == "" {
		outPath = cfg.source
	}
	format, err := formatOf(outPath)
	if err != nil {
		return err
	}
	out, err := encodeTree(tree, format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if err := os.WriteFile(outPath, out, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	if added > 0 {
		fmt.Fprintf(stderr, "msgtree: added %d key(s) to %s\n", added, outPath)
	}
	return nil
}

func reportConflicts(w io.Writer, keys []string) {
	for _, key := range keys {
		fmt.Fprintf(w, "msgtree: skipped %s: a parent key already holds a message\n", key)
	}
}
