package catalog

import (
	"errors"
	"sync"
	"testing"

	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
)

type testRecord struct {
	ID     string
	Status string
}

func newTestCatalog(t *testing.T, ids ...string) *Catalog[testRecord] {
	t.Helper()
	items := make([]testRecord, 0, len(ids))
	for _, id := range ids {
		items = append(items, testRecord{ID: id, Status: "pending"})
	}
	c, err := New(items, func(r testRecord) string { return r.ID })
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestNewRejectsEmptySeed(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, func(r testRecord) string { return r.ID }); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestNewRejectsDuplicateKeys(t *testing.T) {
	t.Parallel()

	items := []testRecord{{ID: "shadow"}, {ID: "Shadow"}}
	if _, err := New(items, func(r testRecord) string { return r.ID }); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestResolveMatchesAnyToken(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, "shadow", "luna", "ravi")

	cases := []struct {
		utterance string
		want      string
	}{
		{"Hi this is Shadow calling", "shadow"},
		{"shadow", "shadow"},
		{"  LUNA  ", "luna"},
		{"my name is ravi sharma", "ravi"},
	}
	for _, tc := range cases {
		got, err := c.Resolve(tc.utterance)
		if err != nil {
			t.Fatalf("Resolve(%q) error = %v", tc.utterance, err)
		}
		if got != tc.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tc.utterance, got, tc.want)
		}
	}
}

func TestResolveFirstTokenWins(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, "luna", "shadow")

	got, err := c.Resolve("shadow and luna")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "shadow" {
		t.Fatalf("expected first token to win, got %q", got)
	}
}

func TestResolvePluralFallback(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, "loop", "variable")

	got, err := c.Resolve("tell me about loops")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "loop" {
		t.Fatalf("Resolve() = %q, want loop", got)
	}
}

func TestResolveNotFound(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, "shadow")

	if _, err := c.Resolve("nobody you know"); !errors.Is(err, contractx.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookupNormalizesAndStripsPlural(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, "if_else", "loop", "data_types")

	cases := []struct {
		id   string
		want string
	}{
		{"If Else", "if_else"},
		{"if-else", "if_else"},
		{"loops", "loop"},
		{"Data Types", "data_types"},
	}
	for _, tc := range cases {
		got, err := c.Lookup(tc.id)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", tc.id, err)
		}
		if got != tc.want {
			t.Fatalf("Lookup(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}

	if _, err := c.Lookup("recursion"); !errors.Is(err, contractx.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// "mitten" must not resolve to "mittens" territory: the strip only goes
	// one direction, singular never gains an "s".
	c2 := newTestCatalog(t, "loops")
	if _, err := c2.Lookup("loop"); !errors.Is(err, contractx.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for singular of plural-only key, got %v", err)
	}
}

func TestUpdateSerializesPerRecord(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, "shadow", "luna")

	done := make(chan struct{})
	for i := 0; i < 16; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_ = c.Update("shadow", func(rec *testRecord) {
				rec.Status = "confirmed_fraud"
			})
		}()
	}
	for i := 0; i < 16; i++ {
		<-done
	}

	rec, ok := c.Get("shadow")
	if !ok {
		t.Fatal("record disappeared")
	}
	if rec.Status != "confirmed_fraud" {
		t.Fatalf("unexpected status %q", rec.Status)
	}

	other, _ := c.Get("luna")
	if other.Status != "pending" {
		t.Fatalf("unrelated record mutated: %q", other.Status)
	}
}

func TestUpdateConcurrentWithReads(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, "shadow", "luna")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = c.Update("shadow", func(rec *testRecord) {
					rec.Status = "confirmed_safe"
				})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if _, err := c.Resolve("luna calling"); err != nil {
					t.Errorf("Resolve() error = %v", err)
					return
				}
				if _, ok := c.Get("luna"); !ok {
					t.Error("Get(luna) missed")
					return
				}
			}
		}()
	}
	wg.Wait()

	rec, _ := c.Get("shadow")
	if rec.Status != "confirmed_safe" {
		t.Fatalf("unexpected status %q", rec.Status)
	}
}

func TestUpdateUnknownKey(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, "shadow")
	if err := c.Update("ghost", func(rec *testRecord) {}); !errors.Is(err, contractx.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
