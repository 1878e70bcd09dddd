package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/loopcontext/msgtree"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "msgtree",
		Short: "Message tree resolver and catalog tooling",
		Long: `msgtree resolves keys against hierarchical message files (YAML, JSON or TOML),
applies gender and CLDR plural rules, and maintains message files.

Commands:
  translate  Resolve and render a message key
  plural     Resolve and render the plural variant of a key
  list       Print every message of a file as flat dotted keys
  extract    Discover message keys referenced in Go code
  merge      Produce translate.<locale>.<ext> files from a source message file`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (yaml or toml)")
	flags.String("messages", "", "Message file, or directory of <locale>.<ext> message files")
	flags.String("locale", "", "Locale tag (default: derived from the message file name)")
	flags.String("namespace", "", "Namespace prepended to every key")
	flags.Int("precision", 0, "Significant digits used for plural fraction operands")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("log-file", "", "Also write JSON logs to this rotating file")
	flags.Bool("quiet", false, "Do not log diagnostics to stderr")
	_ = a.v.BindPFlags(flags)

	a.v.SetEnvPrefix("MSGTREE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newTranslateCmd(a),
		newPluralCmd(a),
		newListCmd(a),
		newExtractCmd(),
		newMergeCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the msgtree command line.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "msgtree: %v\n", err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	logger, err := newLogger(logConfig{
		Level:      a.v.GetString("log-level"),
		File:       a.v.GetString("log-file"),
		MaxSize:    a.v.GetInt("log-max-size"),
		MaxBackups: a.v.GetInt("log-max-backups"),
		MaxAge:     a.v.GetInt("log-max-age"),
		Compress:   a.v.GetBool("log-compress"),
		Quiet:      a.v.GetBool("quiet"),
	}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// resolver loads the configured messages into a new Resolver.
func (a *app) resolver() (*msgtree.Resolver, error) {
	path := a.v.GetString("messages")
	if path == "" {
		return nil, errors.New("no messages configured: set --messages or MSGTREE_MESSAGES")
	}
	tree, locale, err := loadMessages(path, a.v.GetString("locale"))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("messages loaded",
		zap.String("path", path),
		zap.String("locale", locale),
		zap.Int("keys", len(tree.Flatten())),
	)
	r := msgtree.New(msgtree.Config{
		Logger:          a.logger,
		PluralPrecision: a.v.GetInt("precision"),
	})
	r.SetMessages(tree, locale)
	return r, nil
}

// loadMessages reads a single message file, or picks the file for locale out of a
// directory of message files.
func loadMessages(path, locale string) (msgtree.Tree, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find messages: %w", err)
	}
	if !info.IsDir() {
		tree, err := msgtree.LoadFile(path)
		if err != nil {
			return nil, "", err
		}
		if locale == "" {
			if locale, err = msgtree.LocaleFromFile(path); err != nil {
				return nil, "", err
			}
		}
		return tree, locale, nil
	}

	trees, err := msgtree.LoadFS(os.DirFS(path), ".")
	if err != nil {
		return nil, "", err
	}
	if locale == "" {
		return nil, "", fmt.Errorf("%s is a directory: set --locale (available: %s)", path, availableLocales(trees))
	}
	tree, ok := trees[locale]
	if !ok {
		return nil, "", fmt.Errorf("no messages for locale %s in %s (available: %s)", locale, path, availableLocales(trees))
	}
	return tree, locale, nil
}

func availableLocales(trees map[string]msgtree.Tree) string {
	locales := make([]string, 0, len(trees))
	for locale := range trees {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return strings.Join(locales, ", ")
}
