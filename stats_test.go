package msgtree

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestStats_ConcurrentRecordAndReset(t *testing.T) {
	r := New(Config{DisableLogging: true})
	r.SetMessages(Tree{"sub": Tree{}}, "en")

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			r.Translate("missing")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			r.Translate("sub")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			r.ResetStats()
		}
	}()
	wg.Wait()

	r.ResetStats()
	r.Translate("missing")
	assert.Equal(t, map[string]int{"en:missing": 1}, r.SnapshotStats().MissingKeys)
}

func TestSanitizeStatKey(t *testing.T) {
	assert.Equal(t, "unknown", sanitizeStatKey("  "))
	assert.Equal(t, "en:key", sanitizeStatKey(" en:key "))

	ascii := strings.Repeat("a", 200)
	assert.Equal(t, ascii[:maxStatKeyLen], sanitizeStatKey(ascii))

	// "é" is two bytes, so byte 120 falls inside a rune.
	multi := "x" + strings.Repeat("é", 100)
	got := sanitizeStatKey(multi)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, maxStatKeyLen-1, len(got))
	assert.True(t, strings.HasPrefix(multi, got))
}
