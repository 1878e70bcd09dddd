package test

import (
	"fmt"
	"os"
	"sync"

	"github.com/loopcontext/msgtree"
	"gopkg.in/yaml.v2"
)

// Case is a resolution scenario. Cases with a Value go through Pluralize, the others
// through Translate.
type Case struct {
	Name      string            `yaml:"name"`
	Key       string            `yaml:"key"`
	Value     *float64          `yaml:"value"`
	Gender    msgtree.Gender    `yaml:"gender"`
	Args      []string          `yaml:"args"`
	NamedArgs map[string]string `yaml:"named_args"`
	Namespace string            `yaml:"namespace"`
	NotFound  string            `yaml:"not_found"`
	Override  string            `yaml:"override"`
	Bind      string            `yaml:"bind"`
	Want      string            `yaml:"want"`
}

// Suite groups cases sharing a locale.
type Suite struct {
	Locale string `yaml:"locale"`
	Cases  []Case `yaml:"cases"`
}

// LoadSuites reads a YAML list of suites.
func LoadSuites(filename string) ([]Suite, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read cases: %w", err)
	}
	var suites []Suite
	if err := yaml.Unmarshal(data, &suites); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cases: %w", err)
	}
	return suites, nil
}

func (c Case) options() msgtree.Options {
	opts := msgtree.Options{
		Key:       c.Override,
		Gender:    c.Gender,
		Namespace: c.Namespace,
		NotFound:  c.NotFound,
	}
	for _, arg := range c.Args {
		opts.Args = append(opts.Args, arg)
	}
	if len(c.NamedArgs) > 0 {
		opts.NamedArgs = make(map[string]interface{}, len(c.NamedArgs))
		for k, v := range c.NamedArgs {
			opts.NamedArgs[k] = v
		}
	}
	return opts
}

// Run resolves c against r.
func (c Case) Run(r *msgtree.Resolver) string {
	if c.Value == nil {
		return r.Translate(c.Key, c.options())
	}
	return r.Pluralize(c.Key, *c.Value, msgtree.PluralOptions{Options: c.options(), Name: c.Bind})
}

func (c Case) String() string {
	if c.Name != "" {
		return c.Name
	}
	if c.Value != nil {
		return fmt.Sprintf("%s(%v)", c.Key, *c.Value)
	}
	return c.Key
}

// RecordingObserver keeps every diagnostic it receives as "<locale>:<key>".
type RecordingObserver struct {
	mu               sync.Mutex
	MissingKeys      []string
	TypeMismatches   []string
	UnknownModifiers []string
}

func (o *RecordingObserver) OnKeyMissing(locale string, key string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.MissingKeys = append(o.MissingKeys, locale+":"+key)
}

func (o *RecordingObserver) OnTypeMismatch(locale string, key string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.TypeMismatches = append(o.TypeMismatches, locale+":"+key)
}

func (o *RecordingObserver) OnUnknownModifier(locale string, modifier string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.UnknownModifiers = append(o.UnknownModifiers, locale+":"+modifier)
}

// Snapshot returns copies of the recorded diagnostics.
func (o *RecordingObserver) Snapshot() (missing, mismatches, modifiers []string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.MissingKeys...),
		append([]string(nil), o.TypeMismatches...),
		append([]string(nil), o.UnknownModifiers...)
}
