package fft

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// wisdomHeader identifies the serialization format version.
const wisdomHeader = "# algo-fftnd wisdom v1"

// Wisdom caches planning decisions across plan builds and process runs.
//
// Entries map an opaque plan key (shape, direction, element kind) to the
// serialized per-axis radix decomposition chosen for that plan. Twiddle
// tables are not serialized; they are recomputed deterministically from the
// decomposition on import.
type Wisdom struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewWisdom creates a new empty wisdom cache.
func NewWisdom() *Wisdom {
	return &Wisdom{entries: make(map[string]string)}
}

// DefaultWisdom is the process-wide wisdom cache consulted by plan builders.
var DefaultWisdom = NewWisdom()

// Lookup returns the stored decomposition for key.
func (w *Wisdom) Lookup(key string) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	value, ok := w.entries[key]

	return value, ok
}

// Record stores the decomposition for key, replacing any previous entry.
// Keys and values must not contain tabs or newlines.
func (w *Wisdom) Record(key, value string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries[key] = value
}

// Len returns the number of entries.
func (w *Wisdom) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.entries)
}

// Clear removes all entries.
func (w *Wisdom) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries = make(map[string]string)
}

// Export writes the cache in a line-oriented text format. The output is
// sorted by key so exports are reproducible.
func (w *Wisdom) Export(dst io.Writer) error {
	w.mu.RLock()

	keys := make([]string, 0, len(w.entries))
	for k := range w.entries {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"\t"+w.entries[k])
	}

	w.mu.RUnlock()

	if _, err := fmt.Fprintln(dst, wisdomHeader); err != nil {
		return err
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(dst, line); err != nil {
			return err
		}
	}

	return nil
}

// Import merges entries from a stream produced by Export. Existing entries
// with the same key are overwritten.
func (w *Wisdom) Import(src io.Reader) error {
	scanner := bufio.NewScanner(src)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("wisdom: malformed entry on line %d", lineNo)
		}

		w.Record(key, value)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("wisdom: read failed: %w", err)
	}

	return nil
}
