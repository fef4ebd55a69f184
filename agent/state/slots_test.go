package state

import (
	"errors"
	"testing"
	"time"

	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
)

var leadFields = []FieldSpec{
	{Name: "Name", Prompt: "Can I just get your name?"},
	{Name: "Company", Prompt: "What company are you currently with?"},
	{Name: "Email", Prompt: "What is the best email address to reach you?"},
	{Name: "Role", Prompt: "What is your role at the company?"},
}

func newLeadTracker(t *testing.T) *SlotTracker {
	t.Helper()
	st := NewConversationState("c1", contractx.AgentTypeLead, time.Now())
	return NewSlotTracker(leadFields, st)
}

func TestCaptureCanonicalizesFieldName(t *testing.T) {
	t.Parallel()

	tr := newLeadTracker(t)
	got, err := tr.Capture("email", "a@b.com")
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	if got != "Email" {
		t.Fatalf("Capture() canonical name = %q, want Email", got)
	}
	if v, ok := tr.Value("EMAIL"); !ok || v != "a@b.com" {
		t.Fatalf("Value() = %q, %v", v, ok)
	}
}

func TestCaptureUnknownField(t *testing.T) {
	t.Parallel()

	tr := newLeadTracker(t)
	if _, err := tr.Capture("Budget", "5000"); !errors.Is(err, contractx.ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}

func TestCaptureOverwritesLastWriteWins(t *testing.T) {
	t.Parallel()

	tr := newLeadTracker(t)
	if _, err := tr.Capture("Email", "old@b.com"); err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	if _, err := tr.Capture("Email", "new@b.com"); err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	if v, _ := tr.Value("Email"); v != "new@b.com" {
		t.Fatalf("expected overwrite, got %q", v)
	}
}

func TestNextMissingSkipsCaptured(t *testing.T) {
	t.Parallel()

	tr := newLeadTracker(t)
	if _, err := tr.Capture("Email", "a@b.com"); err != nil {
		t.Fatalf("Capture() error = %v", err)
	}

	// Email is the third declared field; the first still-unset field must be
	// returned, not the field after Email.
	next, ok := tr.NextMissing()
	if !ok {
		t.Fatal("expected a missing field")
	}
	if next.Name != "Name" {
		t.Fatalf("NextMissing() = %q, want Name", next.Name)
	}
}

func TestNextMissingNeverReturnsCaptured(t *testing.T) {
	t.Parallel()

	tr := newLeadTracker(t)
	captured := map[string]bool{}
	for {
		next, ok := tr.NextMissing()
		if !ok {
			break
		}
		if captured[next.Name] {
			t.Fatalf("NextMissing() returned already-captured field %q", next.Name)
		}
		if _, err := tr.Capture(next.Name, "value"); err != nil {
			t.Fatalf("Capture(%q) error = %v", next.Name, err)
		}
		captured[next.Name] = true
	}
	if len(captured) != len(leadFields) {
		t.Fatalf("captured %d fields, want %d", len(captured), len(leadFields))
	}
}

func TestCompletionIsSticky(t *testing.T) {
	t.Parallel()

	tr := newLeadTracker(t)
	for _, f := range leadFields {
		if _, err := tr.Capture(f.Name, "x"); err != nil {
			t.Fatalf("Capture(%q) error = %v", f.Name, err)
		}
	}
	if !tr.Complete() {
		t.Fatal("expected completion after all fields captured")
	}
	if _, err := tr.Capture("Name", "y"); err != nil {
		t.Fatalf("Capture() after completion error = %v", err)
	}
	if !tr.Complete() {
		t.Fatal("completion must persist until state reset")
	}
	if missing := tr.Missing(); missing != nil {
		t.Fatalf("Missing() = %v, want none", missing)
	}
}

func TestCaptureRejectsEmptyValue(t *testing.T) {
	t.Parallel()

	tr := newLeadTracker(t)
	if _, err := tr.Capture("Name", "   "); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, ok := tr.Value("Name"); ok {
		t.Fatal("rejected capture must not set the field")
	}
}
