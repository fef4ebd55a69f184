package lead

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
	statex "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/state"
	toolx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/tool"
)

type fakeLeadSaver struct {
	saved []map[string]string
	err   error
}

func (f *fakeLeadSaver) Save(lead map[string]string) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, lead)
	return nil
}

func newLeadFixture(t *testing.T) (toolx.Executor, *statex.ConversationState, *fakeLeadSaver) {
	t.Helper()
	saver := &fakeLeadSaver{}
	exec := NewExecutor(NewFAQCatalog(), saver)
	st := statex.NewConversationState("conv-1", contractx.AgentTypeLead, time.Now())
	return exec, st, saver
}

func TestToolsExposesThreeTools(t *testing.T) {
	t.Parallel()

	infos := Tools()
	if len(infos) != 3 {
		t.Fatalf("expected 3 tool infos, got %d", len(infos))
	}
	if infos[0].Name != ToolAnswerFAQ {
		t.Fatalf("unexpected first tool: %s", infos[0].Name)
	}
}

func TestAnswerFAQMatchesByContainment(t *testing.T) {
	t.Parallel()

	exec, st, _ := newLeadFixture(t)
	ctx := context.Background()

	tests := []struct {
		topic   string
		wantKey string
	}{
		{"pricing_basics", "pricing_basics"},
		{"pricing", "pricing_basics"},
		{"our free tier question", "free_tier"},
		{"What It Does", "what_it_does"},
	}
	for _, tc := range tests {
		out, err := exec(ctx, st, ToolAnswerFAQ, map[string]any{"topic": tc.topic})
		if err != nil {
			t.Fatalf("answer_faq(%q) error = %v", tc.topic, err)
		}
		if !strings.HasPrefix(out.Reply, "Regarding Tata Neu, ") {
			t.Fatalf("answer_faq(%q) reply = %q", tc.topic, out.Reply)
		}
		if out.EndConversation {
			t.Fatalf("answer_faq(%q) must not end the conversation", tc.topic)
		}
	}
	want := []string{"pricing_basics", "pricing_basics", "free_tier", "what_it_does"}
	if len(st.FAQHits) != len(want) {
		t.Fatalf("faq hits = %v, want %v", st.FAQHits, want)
	}
	for i, key := range want {
		if st.FAQHits[i] != key {
			t.Fatalf("faq hit %d = %q, want %q", i, st.FAQHits[i], key)
		}
	}
}

func TestAnswerFAQMissIsNotFatal(t *testing.T) {
	t.Parallel()

	exec, st, _ := newLeadFixture(t)

	out, err := exec(context.Background(), st, ToolAnswerFAQ, map[string]any{"topic": "quantum computing"})
	if err != nil {
		t.Fatalf("answer_faq error = %v", err)
	}
	if out.Reply != replyFAQMiss {
		t.Fatalf("reply = %q", out.Reply)
	}
	if out.EndConversation {
		t.Fatal("an unknown topic must not end the conversation")
	}
	if len(st.FAQHits) != 0 {
		t.Fatalf("faq hits = %v, want none", st.FAQHits)
	}
}

func TestCaptureLeadDataAsksInDeclaredOrder(t *testing.T) {
	t.Parallel()

	exec, st, _ := newLeadFixture(t)
	ctx := context.Background()

	// Capturing a later field first must not change the ask order: the next
	// question is still for Name, the first declared field.
	out, err := exec(ctx, st, ToolCaptureLeadData, map[string]any{"field_name": "Email", "value": "a@b.com"})
	if err != nil {
		t.Fatalf("capture_lead_data error = %v", err)
	}
	if !strings.Contains(out.Reply, "get your name") {
		t.Fatalf("reply = %q, want the Name prompt", out.Reply)
	}
	if st.Slots["Email"] != "a@b.com" {
		t.Fatalf("Email slot = %q", st.Slots["Email"])
	}

	out, err = exec(ctx, st, ToolCaptureLeadData, map[string]any{"field_name": "name", "value": "Priya"})
	if err != nil {
		t.Fatalf("capture_lead_data error = %v", err)
	}
	if !strings.Contains(out.Reply, "What company") {
		t.Fatalf("reply = %q, want the Company prompt", out.Reply)
	}
	if st.Slots["Name"] != "Priya" {
		t.Fatalf("Name slot = %q, lowercase field name must canonicalize", st.Slots["Name"])
	}
}

func TestCaptureLeadDataWithoutArgsJustAsks(t *testing.T) {
	t.Parallel()

	exec, st, _ := newLeadFixture(t)

	out, err := exec(context.Background(), st, ToolCaptureLeadData, map[string]any{})
	if err != nil {
		t.Fatalf("capture_lead_data error = %v", err)
	}
	if !strings.Contains(out.Reply, "get your name") {
		t.Fatalf("reply = %q, want the Name prompt", out.Reply)
	}
	if len(st.Slots) != 0 {
		t.Fatalf("slots = %v, want none captured", st.Slots)
	}
}

func TestCaptureLeadDataUnknownFieldCorrects(t *testing.T) {
	t.Parallel()

	exec, st, _ := newLeadFixture(t)

	out, err := exec(context.Background(), st, ToolCaptureLeadData, map[string]any{"field_name": "Fax", "value": "12345"})
	if err != nil {
		t.Fatalf("capture_lead_data error = %v", err)
	}
	if !strings.Contains(out.Reply, "don't track a field called 'Fax'") {
		t.Fatalf("reply = %q", out.Reply)
	}
	if out.EndConversation {
		t.Fatal("an unknown field must not end the conversation")
	}
	if len(st.Slots) != 0 {
		t.Fatalf("slots = %v, want none captured", st.Slots)
	}
}

func TestCaptureLeadDataAllCapturedThanks(t *testing.T) {
	t.Parallel()

	exec, st, _ := newLeadFixture(t)
	ctx := context.Background()

	values := map[string]string{
		"Name":      "Priya",
		"Company":   "Croma",
		"Email":     "priya@croma.example",
		"Role":      "CTO",
		"Use case":  "loyalty integration",
		"Team size": "40",
		"Timeline":  "immediately",
	}
	var out contractx.ToolResult
	var err error
	for _, f := range Fields() {
		out, err = exec(ctx, st, ToolCaptureLeadData, map[string]any{"field_name": f.Name, "value": values[f.Name]})
		if err != nil {
			t.Fatalf("capture %s error = %v", f.Name, err)
		}
	}
	if !strings.Contains(out.Reply, "all the key information") {
		t.Fatalf("final reply = %q", out.Reply)
	}
}

func TestEndCallSummarySavesLead(t *testing.T) {
	t.Parallel()

	exec, st, saver := newLeadFixture(t)
	ctx := context.Background()

	if _, err := exec(ctx, st, ToolCaptureLeadData, map[string]any{"field_name": "Name", "value": "Priya"}); err != nil {
		t.Fatal(err)
	}
	if _, err := exec(ctx, st, ToolCaptureLeadData, map[string]any{"field_name": "Company", "value": "Croma"}); err != nil {
		t.Fatal(err)
	}

	out, err := exec(ctx, st, ToolEndCallSummary, map[string]any{})
	if err != nil {
		t.Fatalf("end_call_summary error = %v", err)
	}
	if !out.EndConversation {
		t.Fatal("end_call_summary must end the conversation")
	}
	if !strings.Contains(out.Reply, "Thank you, Priya,") {
		t.Fatalf("reply = %q, want the captured name", out.Reply)
	}
	if !strings.Contains(out.Reply, "a potential integration") {
		t.Fatalf("reply = %q, want the use-case fallback", out.Reply)
	}
	if len(saver.saved) != 1 {
		t.Fatalf("saved %d leads, want 1", len(saver.saved))
	}
	if saver.saved[0]["Company"] != "Croma" {
		t.Fatalf("saved lead = %v", saver.saved[0])
	}
}

func TestEndCallSummarySaveFailureAddsCaveat(t *testing.T) {
	t.Parallel()

	exec, st, saver := newLeadFixture(t)
	saver.err = errors.New("disk full")

	out, err := exec(context.Background(), st, ToolEndCallSummary, map[string]any{})
	if err != nil {
		t.Fatalf("end_call_summary error = %v", err)
	}
	if !strings.Contains(out.Reply, "issue recording the data internally") {
		t.Fatalf("reply = %q, want the save-failure caveat", out.Reply)
	}
	if !out.EndConversation {
		t.Fatal("a save failure must still end the conversation")
	}
}

func TestUnknownToolFallsBack(t *testing.T) {
	t.Parallel()

	exec, st, _ := newLeadFixture(t)

	out, err := exec(context.Background(), st, "transfer_call", map[string]any{})
	if err != nil {
		t.Fatalf("unknown tool error = %v", err)
	}
	if !strings.Contains(out.Error, "transfer_call") {
		t.Fatalf("error = %q", out.Error)
	}
}
