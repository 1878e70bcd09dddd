package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/loopcontext/msgtree"
	"github.com/spf13/cobra"
)

// renderFlags are the per-call options shared by translate and plural.
type renderFlags struct {
	key      string
	gender   string
	args     []string
	named    map[string]string
	notFound string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.key, "key", "", "Look up this key instead, keeping KEY as the fallback text")
	flags.StringVar(&f.gender, "gender", "", "Gender variant: male, female or other")
	flags.StringArrayVar(&f.args, "arg", nil, "Positional argument for {} (repeatable)")
	flags.StringToStringVar(&f.named, "named", nil, "Named arguments for {name}, e.g. name=Ada,city=Paris")
	flags.StringVar(&f.notFound, "not-found", "", "Template rendered when the key does not resolve")
}

func (f *renderFlags) options(namespace string) (msgtree.Options, error) {
	gender, err := msgtree.ParseGender(f.gender)
	if err != nil {
		return msgtree.Options{}, err
	}
	opts := msgtree.Options{
		Key:       f.key,
		Gender:    gender,
		Namespace: namespace,
		NotFound:  f.notFound,
	}
	for _, arg := range f.args {
		opts.Args = append(opts.Args, arg)
	}
	if len(f.named) > 0 {
		opts.NamedArgs = make(map[string]interface{}, len(f.named))
		for name, value := range f.named {
			opts.NamedArgs[name] = value
		}
	}
	return opts, nil
}

func newTranslateCmd(a *app) *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "translate KEY",
		Short: "Resolve and render a message key",
		Long: `Resolve KEY against the configured messages and print the rendered text.

Unresolved keys print the --not-found template when set, otherwise KEY itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(a.v.GetString("namespace"))
			if err != nil {
				return err
			}
			r, err := a.resolver()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Translate(args[0], opts))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newPluralCmd(a *app) *cobra.Command {
	var (
		f         renderFlags
		name      string
		localized bool
		category  bool
	)
	cmd := &cobra.Command{
		Use:   "plural KEY VALUE",
		Short: "Resolve and render the plural variant of a key",
		Long: `Pick the plural category of VALUE for the configured locale and print the rendered
variant of KEY. The formatted VALUE is appended to the positional arguments.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid plural value %q: %w", args[1], err)
			}
			opts, err := f.options(a.v.GetString("namespace"))
			if err != nil {
				return err
			}
			r, err := a.resolver()
			if err != nil {
				return err
			}
			if category {
				fmt.Fprintln(cmd.OutOrStdout(), r.PluralCategory(value))
				return nil
			}
			popts := msgtree.PluralOptions{Options: opts, Name: name}
			if localized {
				popts.NumberFormatter = msgtree.LocaleNumberFormatter(r.Locale())
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Pluralize(args[0], value, popts))
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "Also bind the formatted value to {name}")
	cmd.Flags().BoolVar(&localized, "localized", false, "Format the value with the locale's digit grouping")
	cmd.Flags().BoolVar(&category, "category", false, "Print the plural category instead of the message")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every message as key = text, sorted by key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolver()
			if err != nil {
				return err
			}
			flat := r.Messages().Flatten()
			keys := make([]string, 0, len(flat))
			for key := range flat {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, flat[key])
			}
			return nil
		},
	}
}
