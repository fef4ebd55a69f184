package state

import (
	"fmt"
	"strings"

	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
)

// FieldSpec declares one required field of a structured record together with
// the question the agent asks to fill it. The declaration order is the ask
// order and is stable for the life of the conversation.
type FieldSpec struct {
	Name   string
	Prompt string
}

// SlotTracker drives "ask next" behavior over a declared ordered field set,
// storing captured values in the conversation state.
type SlotTracker struct {
	fields []FieldSpec
	st     *ConversationState
}

func NewSlotTracker(fields []FieldSpec, st *ConversationState) *SlotTracker {
	st.EnsureMaps()
	return &SlotTracker{fields: fields, st: st}
}

// Capture stores value under the declared field matching name
// case-insensitively and returns the canonical field name. The value is
// stored unconditionally: last write wins, and a captured field can never
// revert to missing.
func (t *SlotTracker) Capture(name, value string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: field name is empty", contractx.ErrValidation)
	}
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: value for field %q is empty", contractx.ErrValidation, name)
	}

	for _, f := range t.fields {
		if strings.EqualFold(f.Name, name) {
			t.st.Slots[f.Name] = value
			return f.Name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", contractx.ErrInvalidField, name)
}

// NextMissing returns the first field, in declared order, that has no
// captured value. ok is false once every field is captured, and stays false
// until the conversation state is reset.
func (t *SlotTracker) NextMissing() (FieldSpec, bool) {
	for _, f := range t.fields {
		if _, captured := t.st.Slots[f.Name]; !captured {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Missing lists all still-unset field names in declared order.
func (t *SlotTracker) Missing() []string {
	var missing []string
	for _, f := range t.fields {
		if _, captured := t.st.Slots[f.Name]; !captured {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// Complete reports whether every declared field holds a value.
func (t *SlotTracker) Complete() bool {
	_, ok := t.NextMissing()
	return !ok
}

// Value returns the captured value for a declared field, matched
// case-insensitively.
func (t *SlotTracker) Value(name string) (string, bool) {
	for _, f := range t.fields {
		if strings.EqualFold(f.Name, name) {
			v, ok := t.st.Slots[f.Name]
			return v, ok
		}
	}
	return "", false
}

// ValueOr returns the captured value or a fallback for summary text.
func (t *SlotTracker) ValueOr(name, fallback string) string {
	if v, ok := t.Value(name); ok {
		return v
	}
	return fallback
}
