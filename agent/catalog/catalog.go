package catalog

import (
	"fmt"
	"strings"
	"sync"

	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
)

// Catalog is a fixed, preloaded set of named records an agent consults
// (fraud cases, FAQ entries, tutoring concepts). Records are loaded once at
// start; selected fields may be mutated in place through Update for process
// lifetime only.
//
// Reads are safe for concurrent use. Mutation is serialized per record key.
// The map itself is never written after New; Update mutates through the
// stored pointer under that record's lock.
type Catalog[R any] struct {
	order   []string
	records map[string]*R
	locks   map[string]*sync.Mutex
}

// New builds a catalog from seed items in declaration order. Keys are
// normalized to lowercase and must be unique.
func New[R any](items []R, keyOf func(R) string) (*Catalog[R], error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: catalog requires at least one record", contractx.ErrValidation)
	}

	c := &Catalog[R]{
		order:   make([]string, 0, len(items)),
		records: make(map[string]*R, len(items)),
		locks:   make(map[string]*sync.Mutex, len(items)),
	}
	for _, item := range items {
		item := item // per-iteration copy: &item below must be unique per record on pre-1.22 loop semantics
		key := strings.ToLower(strings.TrimSpace(keyOf(item)))
		if key == "" {
			return nil, fmt.Errorf("%w: catalog record has empty key", contractx.ErrValidation)
		}
		if _, exists := c.records[key]; exists {
			return nil, fmt.Errorf("%w: duplicate catalog key %q", contractx.ErrValidation, key)
		}
		c.order = append(c.order, key)
		c.records[key] = &item
		c.locks[key] = &sync.Mutex{}
	}
	return c, nil
}

// MustNew panics on invalid seed data. Seed catalogs are compile-time
// constants, so a failure here is a programming error.
func MustNew[R any](items []R, keyOf func(R) string) *Catalog[R] {
	c, err := New(items, keyOf)
	if err != nil {
		panic(err)
	}
	return c
}

// Keys returns catalog keys in declaration order.
func (c *Catalog[R]) Keys() []string {
	return append([]string(nil), c.order...)
}

// Len reports the number of records.
func (c *Catalog[R]) Len() int {
	return len(c.order)
}

// Get returns a copy of the record stored under the exact key.
func (c *Catalog[R]) Get(key string) (R, bool) {
	lock, ok := c.locks[key]
	if !ok {
		var zero R
		return zero, false
	}
	lock.Lock()
	defer lock.Unlock()
	return *c.records[key], true
}

// Resolve maps a free-text utterance to exactly one catalog key: the utterance
// is split on whitespace, each token trimmed and lowercased, and the first
// token equal to a key wins. Ties go to the first-encountered token, never to
// specificity. If no token matches, one fallback pass strips a trailing "s"
// from each token and retries. A miss is contractx.ErrNotFound.
func (c *Catalog[R]) Resolve(utterance string) (string, error) {
	tokens := tokenize(utterance)
	for _, tok := range tokens {
		if _, ok := c.records[tok]; ok {
			return tok, nil
		}
	}
	for _, tok := range tokens {
		singular := strings.TrimSuffix(tok, "s")
		if singular == tok {
			continue
		}
		if _, ok := c.records[singular]; ok {
			return singular, nil
		}
	}
	return "", fmt.Errorf("%w: no catalog key in %q", contractx.ErrNotFound, utterance)
}

// Lookup resolves a spoken identifier to a key: lowercase, spaces and dashes
// collapsed to underscores, exact match first, then a single trailing-"s"
// strip retry. This is the concept-id rule; it can mis-resolve a catalog that
// deliberately holds both singular and plural keys, which is accepted.
func (c *Catalog[R]) Lookup(id string) (string, error) {
	normalized := NormalizeKey(id)
	if _, ok := c.records[normalized]; ok {
		return normalized, nil
	}
	if singular := strings.TrimSuffix(normalized, "s"); singular != normalized {
		if _, ok := c.records[singular]; ok {
			return singular, nil
		}
	}
	return "", fmt.Errorf("%w: %q", contractx.ErrNotFound, id)
}

// Update applies fn to the record under key while holding that record's lock,
// so concurrent conversations referencing the same record cannot lose writes.
func (c *Catalog[R]) Update(key string, fn func(rec *R)) error {
	lock, ok := c.locks[key]
	if !ok {
		return fmt.Errorf("%w: %q", contractx.ErrNotFound, key)
	}
	lock.Lock()
	defer lock.Unlock()

	fn(c.records[key])
	return nil
}

// NormalizeKey lowercases and collapses spaces and dashes to underscores, the
// shape all catalog keys are stored in.
func NormalizeKey(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

func tokenize(utterance string) []string {
	fields := strings.Fields(utterance)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.ToLower(strings.TrimSpace(f))
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
