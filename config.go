package msgtree

import (
	"os"
	"time"

	"github.com/loopcontext/msgtree/internal/plural"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// PluralCategory is a CLDR plural category: zero, one, two, few, many or other.
type PluralCategory = plural.Category

const (
	PluralZero  = plural.Zero
	PluralOne   = plural.One
	PluralTwo   = plural.Two
	PluralFew   = plural.Few
	PluralMany  = plural.Many
	PluralOther = plural.Other
)

// PluralClassifier overrides the locale rules for values other than 0, 1 and 2. An
// empty or unknown category is treated as other.
type PluralClassifier func(value float64) PluralCategory

// NumberFormatter renders the count injected into plural messages.
type NumberFormatter func(value float64) string

// Modifier transforms the text of an expanded link, e.g. @.upper:common.yes. An empty
// result leaves the link text in place.
type Modifier func(s string) string

// Config tunes a Resolver. The zero value is usable.
type Config struct {
	// DisableLogging silences diagnostics on the logger. Observer and stats still
	// receive them.
	DisableLogging bool
	// Logger receives diagnostics at warn level. Defaults to a console logger on stderr.
	Logger           *zap.Logger
	PluralClassifier PluralClassifier
	NumberFormatter  NumberFormatter
	// Modifiers are merged over the built-in upper, lower and capitalize modifiers.
	Modifiers map[string]Modifier
	Observer  Observer
	// StatsMaxKeys bounds each stats map (default 512).
	StatsMaxKeys int
	// PluralPrecision is the number of significant digits used to derive the visible
	// fraction operands. Zero ignores fraction digits.
	PluralPrecision int
	NowFn           func() time.Time
}

func newDefaultLogger() *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zap.WarnLevel,
	)
	return zap.New(core).Named("msgtree")
}

func (cfg Config) withDefaults() Config {
	if cfg.DisableLogging {
		cfg.Logger = zap.NewNop()
	} else if cfg.Logger == nil {
		cfg.Logger = newDefaultLogger()
	}
	if cfg.NumberFormatter == nil {
		cfg.NumberFormatter = FormatNumber
	}
	if cfg.StatsMaxKeys <= 0 {
		cfg.StatsMaxKeys = 512
	}
	if cfg.PluralPrecision < 0 {
		cfg.PluralPrecision = 0
	}
	if cfg.NowFn == nil {
		cfg.NowFn = time.Now
	}
	return cfg
}
