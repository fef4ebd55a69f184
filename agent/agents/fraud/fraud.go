package fraud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	catalogx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/catalog"
	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
	statex "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/state"
	toolx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/tool"
)

const (
	ToolLoadFraudCase        = "load_fraud_case"
	ToolVerifySecurityAnswer = "verify_security_answer"
	ToolConfirmTransaction   = "confirm_transaction"
)

// Case outcome statuses written back to the catalog and the outcome log.
const (
	StatusConfirmedSafe   = "confirmed_safe"
	StatusConfirmedFraud  = "confirmed_fraud"
	StatusProcessingError = "processing_error"
)

const (
	replyVerificationFailed = "Verification failed. We cannot proceed further with the verification process."
	replyInternalError      = "Internal Error: Unable to verify account details."
	replyCaseIssue          = "I'm sorry, an issue occurred with your case details. Please call our main fraud line for assistance."
)

// Tools describes the fraud agent's tool surface for the runtime's LLM layer.
func Tools() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolLoadFraudCase,
			Desc: "Loads the details of a single, pending fraud case for the given username. Must be called immediately after getting the user's name.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"username": {Type: schema.String, Desc: "The name of the customer to look up the fraud case for", Required: true},
			}),
		},
		{
			Name: ToolVerifySecurityAnswer,
			Desc: "Checks the customer's response against the stored security answer. Must be called after the security question is answered; never compare answers yourself.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"user_response": {Type: schema.String, Desc: "The answer provided by the user", Required: true},
			}),
		},
		{
			Name: ToolConfirmTransaction,
			Desc: "Records the customer's final yes/no decision, updates the case status, and returns the final action to read back.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"is_legitimate": {Type: schema.String, Desc: "The customer's answer to whether they made the transaction ('yes' or 'no')", Required: true},
			}),
		},
	}
}

// NewExecutor wires the fraud tools to the case catalog and the outcome sink.
// The sink write is best-effort: a failure is logged and the caller still gets
// the final action message.
func NewExecutor(cases *catalogx.Catalog[Case], sink contractx.OutcomeSink) toolx.Executor {
	fallback := toolx.DefaultExecutor(contractx.AgentTypeFraud)
	return func(ctx context.Context, st *statex.ConversationState, tool string, args map[string]any) (contractx.ToolResult, error) {
		switch tool {
		case ToolLoadFraudCase:
			return loadCase(st, cases, args)
		case ToolVerifySecurityAnswer:
			return verifyAnswer(st, cases, args)
		case ToolConfirmTransaction:
			return confirmTransaction(ctx, st, cases, sink, args)
		default:
			return fallback(ctx, st, tool, args)
		}
	}
}

type loadedCasePayload struct {
	Status      string         `json:"status"`
	Message     string         `json:"message"`
	CaseDetails map[string]any `json:"case_details,omitempty"`
}

func loadCase(st *statex.ConversationState, cases *catalogx.Catalog[Case], args map[string]any) (contractx.ToolResult, error) {
	username, ok := toolx.StringArg(args, "username")
	if !ok || strings.TrimSpace(username) == "" {
		return contractx.ToolResult{Tool: ToolLoadFraudCase, Error: "username is required"}, nil
	}
	if st.Terminal() {
		return contractx.ToolResult{Tool: ToolLoadFraudCase, Reply: replyCaseIssue, EndConversation: true}, nil
	}

	key, err := cases.Resolve(username)
	if err != nil {
		if errors.Is(err, contractx.ErrNotFound) {
			// Security-sensitive lookup miss: apologize and end the call.
			msg := fmt.Sprintf(
				"I'm sorry, I could not find a pending fraud alert associated with the name '%s'. To protect your security, I must end this call. Please call our main fraud line later.",
				username,
			)
			reply, _ := json.Marshal(loadedCasePayload{Status: "error", Message: msg})
			return contractx.ToolResult{Tool: ToolLoadFraudCase, Reply: string(reply), EndConversation: true}, nil
		}
		return contractx.ToolResult{}, err
	}

	c, _ := cases.Get(key)
	st.CaseKey = key
	st.Stage = statex.StageCaseLoaded

	payload := loadedCasePayload{
		Status:  "case_loaded",
		Message: fmt.Sprintf("Case loaded. Proceed to security question: '%s'", c.SecurityQuestion),
		CaseDetails: map[string]any{
			"customer_name":      c.CustomerName,
			"transaction_amount": c.TransactionAmount,
			"merchant_name":      c.MerchantName,
			"masked_card":        c.MaskedCard,
			"location":           c.Location,
			"timestamp":          c.Timestamp,
			"security_question":  c.SecurityQuestion,
		},
	}
	reply, err := json.Marshal(payload)
	if err != nil {
		return contractx.ToolResult{}, fmt.Errorf("marshal case payload: %w", err)
	}

	log.Info().Str("case_id", c.CaseID).Str("case_key", key).Msg("fraud case loaded")
	return contractx.ToolResult{Tool: ToolLoadFraudCase, Reply: string(reply)}, nil
}

func verifyAnswer(st *statex.ConversationState, cases *catalogx.Catalog[Case], args map[string]any) (contractx.ToolResult, error) {
	response, ok := toolx.StringArg(args, "user_response")
	if !ok {
		return contractx.ToolResult{Tool: ToolVerifySecurityAnswer, Error: "user_response is required"}, nil
	}

	c, loaded := cases.Get(st.CaseKey)
	// A repeated verify on an already-verified case re-compares idempotently;
	// only a missing case or a terminal stage is an internal error.
	verifiable := st.Stage == statex.StageCaseLoaded || st.Stage == statex.StageVerified
	if st.CaseKey == "" || !loaded || !verifiable {
		st.Stage = statex.StageVerificationFailed
		return contractx.ToolResult{Tool: ToolVerifySecurityAnswer, Reply: replyInternalError, EndConversation: true}, nil
	}

	// Exact match only after trim and lowercase; deliberately stricter than
	// the name lookup.
	expected := strings.ToLower(strings.TrimSpace(c.SecurityAnswer))
	given := strings.ToLower(strings.TrimSpace(response))
	if given != expected {
		st.Stage = statex.StageVerificationFailed
		log.Warn().Str("case_id", c.CaseID).Msg("security verification failed")
		return contractx.ToolResult{Tool: ToolVerifySecurityAnswer, Reply: replyVerificationFailed, EndConversation: true}, nil
	}

	st.Stage = statex.StageVerified
	details := fmt.Sprintf(
		"a purchase of $%s at %s in %s on %s using card number %s",
		c.TransactionAmount, c.MerchantName, c.Location, c.Timestamp, c.MaskedCard,
	)
	reply := fmt.Sprintf(
		"Verification successful. The suspicious transaction details are: %s. You must now ask the user if they made this transaction (yes/no).",
		details,
	)
	return contractx.ToolResult{Tool: ToolVerifySecurityAnswer, Reply: reply}, nil
}

func confirmTransaction(
	ctx context.Context,
	st *statex.ConversationState,
	cases *catalogx.Catalog[Case],
	sink contractx.OutcomeSink,
	args map[string]any,
) (contractx.ToolResult, error) {
	decision, _ := toolx.StringArg(args, "is_legitimate")

	if st.CaseKey == "" || st.Stage != statex.StageVerified {
		return contractx.ToolResult{Tool: ToolConfirmTransaction, Reply: replyCaseIssue, EndConversation: true}, nil
	}

	var status, note, action string
	switch strings.ToLower(strings.TrimSpace(decision)) {
	case "yes":
		status = StatusConfirmedSafe
		note = "Customer confirmed transaction as legitimate."
		action = "Thank you. The transaction has been marked as legitimate and your card is safe to use."
	case "no":
		status = StatusConfirmedFraud
		note = "Customer denied transaction. Card blocked and dispute raised (mock)."
		action = "Thank you for confirming. The transaction has been marked as fraudulent. We have immediately blocked your card and initiated a dispute. A new card will be sent to you in 3-5 business days."
	default:
		status = StatusProcessingError
		note = "Processing failed."
		action = "I'm sorry, an issue occurred while processing your request. Please call our main fraud line for assistance."
	}

	if err := cases.Update(st.CaseKey, func(rec *Case) {
		rec.Status = status
		rec.OutcomeNote = note
	}); err != nil {
		return contractx.ToolResult{}, err
	}
	st.Stage = statex.StageResolved

	c, _ := cases.Get(st.CaseKey)
	log.Info().
		Str("case_id", c.CaseID).
		Str("case_key", st.CaseKey).
		Str("status", status).
		Str("note", note).
		Msg("fraud case resolved")

	rec := contractx.OutcomeRecord{
		CaseID:             c.CaseID,
		CustomerName:       c.CustomerName,
		SecurityIdentifier: c.SecurityIdentifier,
		TransactionAmount:  c.TransactionAmount,
		MerchantName:       c.MerchantName,
		Location:           c.Location,
		Timestamp:          c.Timestamp,
		FinalStatus:        status,
		OutcomeNote:        note,
	}
	if err := sink.Append(ctx, rec); err != nil {
		log.Error().Err(err).Str("case_id", c.CaseID).Msg("failed to persist case outcome")
	} else {
		log.Info().Str("case_id", c.CaseID).Msg("case outcome persisted")
	}

	return contractx.ToolResult{Tool: ToolConfirmTransaction, Reply: action, EndConversation: true}, nil
}
