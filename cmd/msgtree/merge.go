package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/loopcontext/msgtree"
	"github.com/spf13/cobra"
)

// mergeConfig holds flags for the merge command.
type mergeConfig struct {
	source          string
	targetLangs     string
	targetDir       string
	outdir          string
	translatePrefix string
}

func newMergeCmd() *cobra.Command {
	var cfg mergeConfig
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Produce translate.<locale>.<ext> files from a source message file",
		Long: `Merge produces per-locale translate files from a source message file. For each target
locale, writes translate.<locale>.<ext> with every message of the source; messages missing
or empty in the target use the source text as placeholder. Messages only present in the
target are dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(&cfg, cmd.ErrOrStderr())
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&cfg.source, "source", "", "Source message file (e.g. resources/messages/en.yaml). Required.")
	flags.StringVar(&cfg.targetLangs, "target-langs", "", "Comma-separated target locale tags (e.g. es,fr).")
	flags.StringVar(&cfg.targetDir, "target-dir", "", "Directory containing target files; locale inferred from file names (e.g. es.yaml -> es).")
	flags.StringVar(&cfg.outdir, "outdir", "", "Where to write translate.<locale>.<ext> (default: same dir as source).")
	flags.StringVar(&cfg.translatePrefix, "translate-prefix", "translate.", "File name prefix for output files.")
	return cmd
}

func runMerge(cfg *mergeConfig, stderr io.Writer) error {
	if cfg.source == "" {
		return fmt.Errorf("merge: --source is required")
	}
	source, err := msgtree.LoadFile(cfg.source)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	ext := filepath.Ext(cfg.source)
	format, err := formatOf(cfg.source)
	if err != nil {
		return err
	}

	prefix := cfg.translatePrefix
	if prefix == "" {
		prefix = "translate."
	}
	targets := cfg.targetLangsList()
	if len(targets) == 0 && cfg.targetDir != "" {
		targets, err = readTargetLangsFromDir(cfg.targetDir, cfg.source, prefix)
		if err != nil {
			return err
		}
	}
	if len(targets) == 0 {
		return fmt.Errorf("merge: specify --target-langs or --target-dir")
	}

	outdir := cfg.outdir
	if outdir == "" {
		outdir = filepath.Dir(cfg.source)
	}
	targetDir := cfg.targetDir
	if targetDir == "" {
		targetDir = filepath.Dir(cfg.source)
	}

	sourceFlat := source.Flatten()
	keys := make([]string, 0, len(sourceFlat))
	for key := range sourceFlat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, lang := range targets {
		target := msgtree.Tree{}
		if t, err := msgtree.LoadFile(filepath.Join(targetDir, lang+ext)); err == nil {
			target = t
		}
		merged := msgtree.Tree{}
		untranslated := 0
		for _, key := range keys {
			text, ok := msgtree.LookupString(target, key, "")
			if !ok || text == "" {
				text = sourceFlat[key]
				untranslated++
			}
			setLeaf(merged, key, text)
		}
		out, err := encodeTree(merged, format)
		if err != nil {
			return fmt.Errorf("encode %s: %w", lang, err)
		}
		outPath := filepath.Join(outdir, prefix+lang+ext)
		if err := os.WriteFile(outPath, out, 0644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Fprintf(stderr, "msgtree: wrote %s (%d untranslated)\n", outPath, untranslated)
	}
	return nil
}

func (c *mergeConfig) targetLangsList() []string {
	if c.targetLangs == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(c.targetLangs, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func readTargetLangsFromDir(dir, sourcePath, prefix string) ([]string, error) {
	sourceBase := filepath.Base(sourcePath)
	ext := filepath.Ext(sourcePath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var langs []string
	seen := make(map[string]struct{})
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ext {
			continue
		}
		if name == sourceBase || strings.HasPrefix(name, prefix) {
			continue
		}
		lang := strings.TrimSpace(strings.TrimSuffix(name, ext))
		if lang == "" {
			continue
		}
		if _, ok := seen[lang]; ok {
			continue
		}
		seen[lang] = struct{}{}
		langs = append(langs, lang)
	}
	return langs, nil
}
