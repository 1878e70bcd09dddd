package msgtree

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	overflowStatKey = "__overflow__"
	maxStatKeyLen   = 120
)

// Stats is a snapshot of the diagnostics recorded by a Resolver. Keys are
// "<locale>:<key>"; once a map holds StatsMaxKeys entries new keys are counted under
// "__overflow__".
type Stats struct {
	MissingKeys      map[string]int
	TypeMismatches   map[string]int
	UnknownModifiers map[string]int
	// LastMessagesAt is the time of the last SetMessages call.
	LastMessagesAt time.Time
}

type resolverStats struct {
	mu               sync.Mutex
	missingKeys      map[string]int
	typeMismatches   map[string]int
	unknownModifiers map[string]int
	maxKeys          int
	lastMessagesAt   time.Time
}

func newResolverStats(maxKeys int) *resolverStats {
	return &resolverStats{
		missingKeys:      map[string]int{},
		typeMismatches:   map[string]int{},
		unknownModifiers: map[string]int{},
		maxKeys:          maxKeys,
	}
}

func sanitizeStatKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "unknown"
	}
	if len(key) > maxStatKeyLen {
		cut := maxStatKeyLen
		for cut > 0 && !utf8.RuneStart(key[cut]) {
			cut--
		}
		return key[:cut]
	}
	return key
}

func statKey(locale string, key string) string {
	if locale == "" {
		locale = "-"
	}
	return locale + ":" + key
}

// increment must be called with s.mu held.
func (s *resolverStats) increment(target map[string]int, key string) {
	if target == nil {
		return
	}
	key = sanitizeStatKey(key)
	if s.maxKeys > 0 {
		if _, exists := target[key]; !exists {
			if _, hasOverflow := target[overflowStatKey]; hasOverflow {
				if len(target) >= s.maxKeys {
					key = overflowStatKey
				}
			} else if len(target) >= s.maxKeys-1 {
				key = overflowStatKey
			}
		}
	}
	target[key]++
}

func (s *resolverStats) record(d *Diagnostic, locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch d.Kind {
	case KeyMissing:
		s.increment(s.missingKeys, statKey(locale, d.Key))
	case TypeMismatch:
		s.increment(s.typeMismatches, statKey(locale, d.Key))
	case UnknownModifier:
		s.increment(s.unknownModifiers, statKey(locale, d.Key))
	}
}

func (s *resolverStats) setLastMessagesAt(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastMessagesAt = t
}

func (s *resolverStats) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.missingKeys = map[string]int{}
	s.typeMismatches = map[string]int{}
	s.unknownModifiers = map[string]int{}
	s.lastMessagesAt = time.Time{}
}

func (s *resolverStats) snapshot() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	copyMap := func(input map[string]int) map[string]int {
		output := make(map[string]int, len(input))
		for k, v := range input {
			output[k] = v
		}
		return output
	}

	return Stats{
		MissingKeys:      copyMap(s.missingKeys),
		TypeMismatches:   copyMap(s.typeMismatches),
		UnknownModifiers: copyMap(s.unknownModifiers),
		LastMessagesAt:   s.lastMessagesAt,
	}
}
