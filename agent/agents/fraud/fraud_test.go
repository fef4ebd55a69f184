package fraud

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	catalogx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/catalog"
	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
	statex "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/state"
	toolx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/tool"
)

type fakeSink struct {
	records []contractx.OutcomeRecord
	err     error
}

func (f *fakeSink) Append(_ context.Context, rec contractx.OutcomeRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

func newFraudFixture(t *testing.T) (toolx.Executor, *statex.ConversationState, *fakeSink, *catalogx.Catalog[Case]) {
	t.Helper()
	cases := NewCaseCatalog()
	sink := &fakeSink{}
	exec := NewExecutor(cases, sink)
	st := statex.NewConversationState("conv-1", contractx.AgentTypeFraud, time.Now())
	return exec, st, sink, cases
}

func caseStatus(t *testing.T, cases *catalogx.Catalog[Case], key string) string {
	t.Helper()
	c, ok := cases.Get(key)
	if !ok {
		t.Fatalf("case %q missing", key)
	}
	return c.Status
}

func TestToolsExposesThreeTools(t *testing.T) {
	t.Parallel()

	infos := Tools()
	if len(infos) != 3 {
		t.Fatalf("expected 3 tool infos, got %d", len(infos))
	}
	if infos[0].Name != ToolLoadFraudCase {
		t.Fatalf("unexpected first tool: %s", infos[0].Name)
	}
}

func TestFullFlowConfirmedFraud(t *testing.T) {
	t.Parallel()

	exec, st, sink, cat := newFraudFixture(t)
	ctx := context.Background()

	out, err := exec(ctx, st, ToolLoadFraudCase, map[string]any{"username": "Hi this is Shadow calling"})
	if err != nil {
		t.Fatalf("load_fraud_case error = %v", err)
	}
	var payload loadedCasePayload
	if err := json.Unmarshal([]byte(out.Reply), &payload); err != nil {
		t.Fatalf("reply is not JSON: %v", err)
	}
	if payload.Status != "case_loaded" {
		t.Fatalf("status = %q, want case_loaded", payload.Status)
	}
	if q := payload.CaseDetails["security_question"]; q != "What city were you born in?" {
		t.Fatalf("security_question = %v", q)
	}
	if st.CaseKey != "shadow" || st.Stage != statex.StageCaseLoaded {
		t.Fatalf("unexpected state after load: %+v", st)
	}

	out, err = exec(ctx, st, ToolVerifySecurityAnswer, map[string]any{"user_response": "Surat"})
	if err != nil {
		t.Fatalf("verify_security_answer error = %v", err)
	}
	if !strings.HasPrefix(out.Reply, "Verification successful.") {
		t.Fatalf("unexpected verify reply: %q", out.Reply)
	}
	if st.Stage != statex.StageVerified {
		t.Fatalf("stage = %q, want verified", st.Stage)
	}

	out, err = exec(ctx, st, ToolConfirmTransaction, map[string]any{"is_legitimate": "no"})
	if err != nil {
		t.Fatalf("confirm_transaction error = %v", err)
	}
	if !strings.Contains(out.Reply, "blocked your card") || !strings.Contains(out.Reply, "dispute") {
		t.Fatalf("final action missing block/dispute wording: %q", out.Reply)
	}
	if !out.EndConversation {
		t.Fatal("resolution must end the conversation")
	}
	if st.Stage != statex.StageResolved {
		t.Fatalf("stage = %q, want resolved", st.Stage)
	}
	if got := caseStatus(t, cat, "shadow"); got != StatusConfirmedFraud {
		t.Fatalf("case status = %q, want %q", got, StatusConfirmedFraud)
	}
	if len(sink.records) != 1 {
		t.Fatalf("expected 1 persisted outcome, got %d", len(sink.records))
	}
	rec := sink.records[0]
	if rec.CaseID != "FRD-9876" || rec.FinalStatus != StatusConfirmedFraud {
		t.Fatalf("unexpected outcome record: %+v", rec)
	}
}

func TestLoadCaseUnknownNameEndsCall(t *testing.T) {
	t.Parallel()

	exec, st, _, _ := newFraudFixture(t)

	out, err := exec(context.Background(), st, ToolLoadFraudCase, map[string]any{"username": "nobody special"})
	if err != nil {
		t.Fatalf("load_fraud_case error = %v", err)
	}
	if !out.EndConversation {
		t.Fatal("unknown caller must end the call")
	}
	if !strings.Contains(out.Reply, "could not find a pending fraud alert") {
		t.Fatalf("unexpected reply: %q", out.Reply)
	}
	if st.CaseKey != "" {
		t.Fatalf("no case key should be attached, got %q", st.CaseKey)
	}
}

func TestVerifyAnswerNormalization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		answer string
		pass   bool
	}{
		{"Mittens ", true},
		{"  MITTENS", true},
		{"mittens", true},
		{"mitten", false},
		{"whiskers", false},
	}

	for _, tc := range cases {
		exec, st, _, _ := newFraudFixture(t)
		ctx := context.Background()
		if _, err := exec(ctx, st, ToolLoadFraudCase, map[string]any{"username": "luna"}); err != nil {
			t.Fatalf("load error = %v", err)
		}
		out, err := exec(ctx, st, ToolVerifySecurityAnswer, map[string]any{"user_response": tc.answer})
		if err != nil {
			t.Fatalf("verify error = %v", err)
		}
		if tc.pass && st.Stage != statex.StageVerified {
			t.Fatalf("answer %q should verify, stage = %q", tc.answer, st.Stage)
		}
		if !tc.pass {
			if st.Stage != statex.StageVerificationFailed {
				t.Fatalf("answer %q should fail, stage = %q", tc.answer, st.Stage)
			}
			if !out.EndConversation {
				t.Fatal("failed verification must end the call")
			}
		}
	}
}

func TestVerifyRepeatedAfterSuccessIsIdempotent(t *testing.T) {
	t.Parallel()

	exec, st, _, _ := newFraudFixture(t)
	ctx := context.Background()
	if _, err := exec(ctx, st, ToolLoadFraudCase, map[string]any{"username": "shadow"}); err != nil {
		t.Fatalf("load error = %v", err)
	}
	if _, err := exec(ctx, st, ToolVerifySecurityAnswer, map[string]any{"user_response": "Surat"}); err != nil {
		t.Fatalf("verify error = %v", err)
	}
	if st.Stage != statex.StageVerified {
		t.Fatalf("stage = %q, want verified", st.Stage)
	}

	out, err := exec(ctx, st, ToolVerifySecurityAnswer, map[string]any{"user_response": "Surat"})
	if err != nil {
		t.Fatalf("repeated verify error = %v", err)
	}
	if !strings.HasPrefix(out.Reply, "Verification successful.") {
		t.Fatalf("repeated verify reply: %q", out.Reply)
	}
	if out.EndConversation {
		t.Fatal("repeated verify must not end the call")
	}
	if st.Stage != statex.StageVerified {
		t.Fatalf("stage = %q, want verified", st.Stage)
	}
}

func TestVerifyWithoutLoadedCase(t *testing.T) {
	t.Parallel()

	exec, st, _, _ := newFraudFixture(t)
	out, err := exec(context.Background(), st, ToolVerifySecurityAnswer, map[string]any{"user_response": "surat"})
	if err != nil {
		t.Fatalf("verify error = %v", err)
	}
	if out.Reply != replyInternalError {
		t.Fatalf("unexpected reply: %q", out.Reply)
	}
	if st.Stage != statex.StageVerificationFailed {
		t.Fatalf("stage = %q, want verification_failed", st.Stage)
	}
}

func TestConfirmUnexpectedDecisionMapsToProcessingError(t *testing.T) {
	t.Parallel()

	exec, st, sink, cat := newFraudFixture(t)
	ctx := context.Background()
	if _, err := exec(ctx, st, ToolLoadFraudCase, map[string]any{"username": "ravi"}); err != nil {
		t.Fatalf("load error = %v", err)
	}
	if _, err := exec(ctx, st, ToolVerifySecurityAnswer, map[string]any{"user_response": "5432"}); err != nil {
		t.Fatalf("verify error = %v", err)
	}

	out, err := exec(ctx, st, ToolConfirmTransaction, map[string]any{"is_legitimate": "maybe"})
	if err != nil {
		t.Fatalf("confirm error = %v", err)
	}
	if !strings.Contains(out.Reply, "an issue occurred") {
		t.Fatalf("unexpected reply: %q", out.Reply)
	}
	if got := caseStatus(t, cat, "ravi"); got != StatusProcessingError {
		t.Fatalf("case status = %q, want %q", got, StatusProcessingError)
	}
	if len(sink.records) != 1 || sink.records[0].FinalStatus != StatusProcessingError {
		t.Fatalf("unexpected outcome records: %+v", sink.records)
	}
}

func TestConfirmIsAtMostOnce(t *testing.T) {
	t.Parallel()

	exec, st, sink, _ := newFraudFixture(t)
	ctx := context.Background()
	if _, err := exec(ctx, st, ToolLoadFraudCase, map[string]any{"username": "goku"}); err != nil {
		t.Fatalf("load error = %v", err)
	}
	if _, err := exec(ctx, st, ToolVerifySecurityAnswer, map[string]any{"user_response": "roshi"}); err != nil {
		t.Fatalf("verify error = %v", err)
	}
	if _, err := exec(ctx, st, ToolConfirmTransaction, map[string]any{"is_legitimate": "yes"}); err != nil {
		t.Fatalf("confirm error = %v", err)
	}

	// A repeated confirm on a resolved case must not write again.
	out, err := exec(ctx, st, ToolConfirmTransaction, map[string]any{"is_legitimate": "yes"})
	if err != nil {
		t.Fatalf("second confirm error = %v", err)
	}
	if out.Reply != replyCaseIssue {
		t.Fatalf("unexpected reply: %q", out.Reply)
	}
	if len(sink.records) != 1 {
		t.Fatalf("outcome persisted %d times, want 1", len(sink.records))
	}
}

func TestConfirmSinkFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	cases := NewCaseCatalog()
	sink := &fakeSink{err: errors.New("disk full")}
	exec := NewExecutor(cases, sink)
	st := statex.NewConversationState("conv-1", contractx.AgentTypeFraud, time.Now())
	ctx := context.Background()

	if _, err := exec(ctx, st, ToolLoadFraudCase, map[string]any{"username": "asta"}); err != nil {
		t.Fatalf("load error = %v", err)
	}
	if _, err := exec(ctx, st, ToolVerifySecurityAnswer, map[string]any{"user_response": "black"}); err != nil {
		t.Fatalf("verify error = %v", err)
	}
	out, err := exec(ctx, st, ToolConfirmTransaction, map[string]any{"is_legitimate": "yes"})
	if err != nil {
		t.Fatalf("sink failure must not surface: %v", err)
	}
	if !strings.Contains(out.Reply, "marked as legitimate") {
		t.Fatalf("unexpected reply: %q", out.Reply)
	}
}

func TestUnknownToolFallsBack(t *testing.T) {
	t.Parallel()

	exec, st, _, _ := newFraudFixture(t)
	out, err := exec(context.Background(), st, "weather.lookup", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error == "" {
		t.Fatal("expected unavailable-tool error message")
	}
}
