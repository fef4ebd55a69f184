package lead

import (
	"context"
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
	ToolAnswerFAQ       = "answer_faq"
	ToolCaptureLeadData = "capture_lead_data"
	ToolEndCallSummary  = "end_call_summary"
)

const replyFAQMiss = "I'm sorry, I don't have a pre-approved answer for that specific topic in my FAQ. Can I try to answer another question, or can I get your contact details?"

// Fields lists the lead record fields in ask order, each with the question
// the SDR uses to collect it.
func Fields() []statex.FieldSpec {
	return []statex.FieldSpec{
		{Name: "Name", Prompt: "That's helpful! Before we go further, can I just get your name?"},
		{Name: "Company", Prompt: "Great. What company are you currently with?"},
		{Name: "Email", Prompt: "And what would be the best email address to send our summary and follow-up resources to?"},
		{Name: "Role", Prompt: "And what is your role or title at the company?"},
		{Name: "Use case", Prompt: "What specific problem are you hoping to solve or what feature of Tata Neu interests you most?"},
		{Name: "Team size", Prompt: "Roughly how many people are on the team that would be using our solution?"},
		{Name: "Timeline", Prompt: "And finally, what's your timeline for implementing a new solution: immediately, within the next three months, or later this year?"},
	}
}

// LeadSaver persists one completed lead record.
type LeadSaver interface {
	Save(lead map[string]string) error
}

// Tools describes the SDR agent's tool surface for the runtime's LLM layer.
func Tools() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolAnswerFAQ,
			Desc: "Answers specific questions about Tata Neu (features, pricing, audience) from the pre-approved FAQ. The topic should be a keyword such as 'pricing_basics', 'what_it_does', or 'target_audience'.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"topic": {Type: schema.String, Desc: "The relevant FAQ key to retrieve the answer for", Required: true},
			}),
		},
		{
			Name: ToolCaptureLeadData,
			Desc: "Stores a piece of lead information provided by the user, or asks for the next missing field. Both arguments are optional when just checking what is still missing.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"field_name": {Type: schema.String, Desc: "The name of the field to update (e.g., 'Name', 'Email', 'Use case')"},
				"value":      {Type: schema.String, Desc: "The value to store for the field"},
			}),
		},
		{
			Name: ToolEndCallSummary,
			Desc: "Summarizes the captured lead data, saves it, and closes the conversation. Use when the user signals the end of the call (e.g., 'that's all', 'thanks', 'bye').",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
	}
}

// NewExecutor wires the SDR tools to the FAQ catalog and the lead file. The
// lead save is best-effort: a failure adds a spoken caveat instead of failing
// the call.
func NewExecutor(faq *catalogx.Catalog[FAQEntry], saver LeadSaver) toolx.Executor {
	fallback := toolx.DefaultExecutor(contractx.AgentTypeLead)
	return func(ctx context.Context, st *statex.ConversationState, tool string, args map[string]any) (contractx.ToolResult, error) {
		switch tool {
		case ToolAnswerFAQ:
			return answerFAQ(st, faq, args)
		case ToolCaptureLeadData:
			return captureLeadData(st, args)
		case ToolEndCallSummary:
			return endCallSummary(st, saver)
		default:
			return fallback(ctx, st, tool, args)
		}
	}
}

func answerFAQ(st *statex.ConversationState, faq *catalogx.Catalog[FAQEntry], args map[string]any) (contractx.ToolResult, error) {
	topic, ok := toolx.StringArg(args, "topic")
	if !ok || strings.TrimSpace(topic) == "" {
		return contractx.ToolResult{Tool: ToolAnswerFAQ, Error: "topic is required"}, nil
	}

	entry, found := resolveTopic(faq, topic)
	if !found {
		// An off-script question is never fatal; redirect and keep talking.
		return contractx.ToolResult{Tool: ToolAnswerFAQ, Reply: replyFAQMiss}, nil
	}

	st.FAQHits = append(st.FAQHits, entry.Key)
	log.Info().Str("topic", entry.Key).Msg("faq answered")
	return contractx.ToolResult{
		Tool:  ToolAnswerFAQ,
		Reply: fmt.Sprintf("Regarding %s, %s", CompanyName, entry.Answer),
	}, nil
}

func captureLeadData(st *statex.ConversationState, args map[string]any) (contractx.ToolResult, error) {
	tracker := statex.NewSlotTracker(Fields(), st)

	fieldName, _ := toolx.StringArg(args, "field_name")
	value, _ := toolx.StringArg(args, "value")
	if strings.TrimSpace(fieldName) != "" && strings.TrimSpace(value) != "" {
		canonical, err := tracker.Capture(fieldName, value)
		switch {
		case err == nil:
			log.Info().Str("field", canonical).Msg("captured lead data")
		case errors.Is(err, contractx.ErrInvalidField):
			return contractx.ToolResult{
				Tool:  ToolCaptureLeadData,
				Reply: fmt.Sprintf("I don't track a field called '%s'. Let's continue with what I still need.", fieldName),
			}, nil
		default:
			return contractx.ToolResult{}, err
		}
	}

	next, missing := tracker.NextMissing()
	if !missing {
		return contractx.ToolResult{
			Tool:  ToolCaptureLeadData,
			Reply: "Thank you! I believe I have all the key information I need to pass along to my team. How else can I help you today?",
		}, nil
	}
	return contractx.ToolResult{Tool: ToolCaptureLeadData, Reply: next.Prompt}, nil
}

func endCallSummary(st *statex.ConversationState, saver LeadSaver) (contractx.ToolResult, error) {
	tracker := statex.NewSlotTracker(Fields(), st)

	summary := fmt.Sprintf(
		"Thank you, %s, for your time today. To summarize: you are interested in %s for %s. You are currently with %s, and your timeline is %s. I will ensure a specialist follows up with you shortly.",
		tracker.ValueOr("Name", "the visitor"),
		CompanyName,
		tracker.ValueOr("Use case", "a potential integration"),
		tracker.ValueOr("Company", "an interested party"),
		tracker.ValueOr("Timeline", "an undefined timeline"),
	)

	lead := make(map[string]string, len(st.Slots))
	for k, v := range st.Slots {
		lead[k] = v
	}
	if err := saver.Save(lead); err != nil {
		log.Error().Err(err).Msg("failed to save lead data")
		summary += " (Note: There was an issue recording the data internally, but I have the information.)"
	} else {
		log.Info().Int("fields", len(lead)).Msg("lead data saved")
	}

	return contractx.ToolResult{
		Tool:            ToolEndCallSummary,
		Reply:           summary + " Thank you again and have a productive day!",
		EndConversation: true,
	}, nil
}
