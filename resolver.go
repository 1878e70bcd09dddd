package msgtree

import (
	"sync"

	"github.com/loopcontext/msgtree/internal/plural"
	"go.uber.org/zap"
)

// Options tunes a single Translate or Pluralize call.
type Options struct {
	// Key replaces the lookup key. The key passed to Translate stays the text returned
	// when nothing resolves.
	Key    string
	Gender Gender
	// Args fill {} placeholders in order.
	Args []interface{}
	// NamedArgs fill {name} placeholders.
	NamedArgs map[string]interface{}
	// Namespace is prepended to the lookup key as namespace + ".".
	Namespace string
	// NotFound is the template used when the key does not resolve. Empty means unset.
	NotFound string
}

// PluralOptions tunes a single Pluralize call.
type PluralOptions struct {
	Options
	// Name binds the formatted count as a named argument.
	Name string
	// NumberFormatter overrides Config.NumberFormatter for this call.
	NumberFormatter NumberFormatter
}

// Resolver resolves message keys against a message tree and renders them. The tree and
// locale are replaced wholesale by SetMessages and are safe for concurrent use.
type Resolver struct {
	mu        sync.RWMutex
	messages  Tree
	locale    string
	cfg       Config
	modifiers map[string]Modifier
	stats     *resolverStats
}

type snapshot struct {
	messages Tree
	locale   string
}

// New builds a Resolver with no messages. Call SetMessages before resolving.
func New(cfg Config) *Resolver {
	cfg = cfg.withDefaults()
	return &Resolver{
		messages:  Tree{},
		cfg:       cfg,
		modifiers: buildModifiers(cfg.Modifiers),
		stats:     newResolverStats(cfg.StatsMaxKeys),
	}
}

// SetMessages replaces the message tree and the locale tag. An empty locale disables the
// locale plural rules.
func (r *Resolver) SetMessages(messages Tree, locale string) {
	if messages == nil {
		messages = Tree{}
	}
	r.mu.Lock()
	r.messages = messages
	r.locale = locale
	r.mu.Unlock()
	r.stats.setLastMessagesAt(r.cfg.NowFn())
}

// Messages returns the current message tree. It must be treated as read-only.
func (r *Resolver) Messages() Tree {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.messages
}

// Locale returns the current locale tag.
func (r *Resolver) Locale() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locale
}

func (r *Resolver) snapshot() snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return snapshot{messages: r.messages, locale: r.locale}
}

// Plain returns the raw value stored at key without fallbacks, diagnostics or
// interpolation.
func (r *Resolver) Plain(key string) (Value, bool) {
	return Lookup(r.snapshot().messages, key, "")
}

// Translate resolves key and renders it. Only the first Options value is used. The
// result is the rendered message, the rendered NotFound template, or key itself.
func (r *Resolver) Translate(key string, opts ...Options) string {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	s := r.snapshot()

	v, ok := r.resolveText(s, o.lookupKey(key), o.Gender, o.Namespace, o.NotFound)
	res := r.text(s, key, v, ok)
	return r.interpolate(s, res, o.Args, o.NamedArgs)
}

// Pluralize resolves the plural variant of key for value and renders it. The formatted
// value is appended to the positional arguments and, when Name is set, bound under that
// name.
func (r *Resolver) Pluralize(key string, value float64, opts ...PluralOptions) string {
	var o PluralOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	s := r.snapshot()

	v := r.resolvePlural(s, o.lookupKey(key), key, value, o.Gender, o.Namespace, o.NotFound)
	res := r.text(s, key, v, true)

	format := o.NumberFormatter
	if format == nil {
		format = r.cfg.NumberFormatter
	}
	formatted := format(value)

	namedArgs := o.NamedArgs
	if o.Name != "" {
		namedArgs = make(map[string]interface{}, len(o.NamedArgs)+1)
		for k, v := range o.NamedArgs {
			namedArgs[k] = v
		}
		namedArgs[o.Name] = formatted
	}
	args := make([]interface{}, 0, len(o.Args)+1)
	args = append(args, o.Args...)
	args = append(args, formatted)

	return r.interpolate(s, res, args, namedArgs)
}

// ResolveText runs the gender cascade for key without rendering. With a gender,
// key.gender is tried first; when it misses and opts.NotFound is set the NotFound text is
// returned without trying the bare key.
func (r *Resolver) ResolveText(key string, opts Options) (Value, bool) {
	return r.resolveText(r.snapshot(), key, opts.Gender, opts.Namespace, opts.NotFound)
}

// ResolvePlural runs the plural cascade for key and value without rendering. It never
// fails: when nothing resolves the key itself is returned.
func (r *Resolver) ResolvePlural(key string, value float64, opts Options) Value {
	return r.resolvePlural(r.snapshot(), key, key, value, opts.Gender, opts.Namespace, opts.NotFound)
}

// PluralCategory returns the category Pluralize uses for value. 0, 1 and 2 always map to
// zero, one and two.
func (r *Resolver) PluralCategory(value float64) PluralCategory {
	return r.pluralCategory(r.snapshot(), value)
}

func (o Options) lookupKey(key string) string {
	if o.Key != "" {
		return o.Key
	}
	return key
}

func (r *Resolver) resolveText(s snapshot, key string, gender Gender, namespace string, notFound string) (Value, bool) {
	if gender != GenderNone {
		if v, ok := r.lookup(s, key+"."+string(gender), namespace); ok {
			return v, true
		}
		if notFound != "" {
			return Leaf(notFound), true
		}
	}
	if v, ok := r.lookup(s, key, namespace); ok {
		return v, true
	}
	if notFound != "" {
		return Leaf(notFound), true
	}
	return nil, false
}

func (r *Resolver) resolvePlural(s snapshot, key string, fallback string, value float64, gender Gender, namespace string, notFound string) Value {
	category := r.pluralCategory(s, value)

	candidates := []string{key + "." + string(plural.Other)}
	if category != plural.Other {
		candidates = []string{key + "." + string(category), key + "." + string(plural.Other), key}
	}
	for _, candidate := range candidates {
		if v, ok := r.resolveText(s, candidate, gender, namespace, notFound); ok {
			return v
		}
	}
	return Leaf(fallback)
}

func (r *Resolver) pluralCategory(s snapshot, value float64) PluralCategory {
	switch value {
	case 0:
		return plural.Zero
	case 1:
		return plural.One
	case 2:
		return plural.Two
	}
	if r.cfg.PluralClassifier != nil {
		if category := r.cfg.PluralClassifier(value); category.Valid() {
			return category
		}
		return plural.Other
	}
	if s.locale != "" {
		return plural.CategoryFor(s.locale, plural.NewOperands(value, r.cfg.PluralPrecision))
	}
	return plural.Other
}

func (r *Resolver) lookup(s snapshot, key string, namespace string) (Value, bool) {
	v, ok := Lookup(s.messages, key, namespace)
	if !ok {
		r.report(s.locale, newDiagnostic(KeyMissing, key, namespace))
	}
	return v, ok
}

// text turns a resolved value into a template. Misses and sub-trees yield key.
func (r *Resolver) text(s snapshot, key string, v Value, ok bool) string {
	if !ok {
		return key
	}
	leaf, isLeaf := v.(Leaf)
	if !isLeaf {
		r.report(s.locale, newDiagnostic(TypeMismatch, key, ""))
		return key
	}
	return string(leaf)
}

func (r *Resolver) report(locale string, d *Diagnostic) {
	r.stats.record(d, locale)
	r.cfg.Logger.Warn(d.Error(),
		zap.String("kind", d.Kind.String()),
		zap.String("key", d.Key),
		zap.String("locale", locale),
	)
	if r.cfg.Observer == nil {
		return
	}
	safeObserverCall(func() {
		switch d.Kind {
		case KeyMissing:
			r.cfg.Observer.OnKeyMissing(locale, d.Key)
		case TypeMismatch:
			r.cfg.Observer.OnTypeMismatch(locale, d.Key)
		case UnknownModifier:
			r.cfg.Observer.OnUnknownModifier(locale, d.Key)
		}
	})
}

// SnapshotStats returns a copy of the diagnostics counters.
func (r *Resolver) SnapshotStats() Stats {
	return r.stats.snapshot()
}

// ResetStats clears the diagnostics counters.
func (r *Resolver) ResetStats() {
	r.stats.reset()
}
