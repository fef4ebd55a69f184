package tutor

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
	ToolSetLearningMode        = "set_learning_mode"
	ToolSetFocusConcept        = "set_focus_concept"
	ToolListConcepts           = "list_concepts"
	ToolDescribeCurrentConcept = "describe_current_concept"
	ToolGetQuizPrompt          = "get_quiz_prompt"
	ToolGetTeachBackPrompt     = "get_teach_back_prompt"
)

// Learning modes. Each mode speaks through its own voice persona.
const (
	ModeLearn     = "learn"
	ModeQuiz      = "quiz"
	ModeTeachBack = "teach_back"
)

// VoicePersona names the synthesized voice a mode speaks with.
type VoicePersona struct {
	Voice   string
	Style   string
	Display string
	Tone    string
}

var voicePersonas = map[string]VoicePersona{
	ModeLearn:     {Voice: "en-US-matthew", Style: "Conversation", Display: "Matthew", Tone: "calm, encouraging explanations"},
	ModeQuiz:      {Voice: "en-US-alicia", Style: "Conversation", Display: "Alicia", Tone: "energetic quiz master"},
	ModeTeachBack: {Voice: "en-US-ken", Style: "Conversation", Display: "Ken", Tone: "supportive coach who listens closely"},
}

// PersonaFor returns the voice persona bound to a learning mode.
func PersonaFor(mode string) (VoicePersona, bool) {
	p, ok := voicePersonas[mode]
	return p, ok
}

// Tools describes the tutor's tool surface for the runtime's LLM layer.
func Tools() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolSetLearningMode,
			Desc: "Switches to one of the supported learning modes: learn, quiz, teach_back. Changing mode also switches the speaking voice persona.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"mode": {Type: schema.String, Desc: "One of 'learn', 'quiz', or 'teach_back'", Required: true},
			}),
		},
		{
			Name: ToolSetFocusConcept,
			Desc: "Sets the active concept that the session should focus on.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"concept_id": {Type: schema.String, Desc: "The concept id to focus on (e.g., 'loops', 'if_else')", Required: true},
			}),
		},
		{
			Name:        ToolListConcepts,
			Desc:        "Lists available concepts with their IDs and titles so the learner can choose.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		{
			Name:        ToolDescribeCurrentConcept,
			Desc:        "Returns the summary of the current concept for learn mode explanations.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		{
			Name:        ToolGetQuizPrompt,
			Desc:        "Returns a quiz question for the current concept.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		{
			Name:        ToolGetTeachBackPrompt,
			Desc:        "Returns the teach-back instructions for the current concept.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
	}
}

// NewExecutor wires the tutor tools to the concept catalog and the voice
// controller. Voice switches are best-effort: a failed persona change is
// logged and the mode still switches.
func NewExecutor(concepts *catalogx.Catalog[Concept], voices contractx.VoiceController) toolx.Executor {
	fallback := toolx.DefaultExecutor(contractx.AgentTypeTutor)
	return func(ctx context.Context, st *statex.ConversationState, tool string, args map[string]any) (contractx.ToolResult, error) {
		switch tool {
		case ToolSetLearningMode:
			return setLearningMode(ctx, st, voices, args)
		case ToolSetFocusConcept:
			return setFocusConcept(st, concepts, args)
		case ToolListConcepts:
			return listConcepts(concepts), nil
		case ToolDescribeCurrentConcept, ToolGetQuizPrompt, ToolGetTeachBackPrompt:
			return conceptContent(st, concepts, tool)
		default:
			return fallback(ctx, st, tool, args)
		}
	}
}

func setLearningMode(ctx context.Context, st *statex.ConversationState, voices contractx.VoiceController, args map[string]any) (contractx.ToolResult, error) {
	mode, _ := toolx.StringArg(args, "mode")
	normalized := strings.ToLower(strings.TrimSpace(mode))

	persona, ok := voicePersonas[normalized]
	if !ok {
		// The previous mode stays in effect.
		return contractx.ToolResult{
			Tool: ToolSetLearningMode,
			Error: fmt.Errorf("%w: %q, choose from: %s, %s, %s",
				contractx.ErrUnsupportedMode, mode, ModeLearn, ModeQuiz, ModeTeachBack).Error(),
		}, nil
	}

	st.Mode = normalized
	if voices != nil {
		if err := voices.UpdateVoice(ctx, persona.Voice, persona.Style); err != nil {
			log.Error().Err(err).Str("mode", normalized).Str("voice", persona.Voice).Msg("failed to update voice persona")
		} else {
			log.Info().Str("mode", normalized).Str("persona", persona.Display).Msg("voice persona switched")
		}
	}

	return contractx.ToolResult{
		Tool: ToolSetLearningMode,
		Reply: fmt.Sprintf(
			"Mode switched to %s. The current persona is %s. Please proceed by calling the relevant content tool (describe_current_concept, get_quiz_prompt, or get_teach_back_prompt) now.",
			normalized, persona.Display,
		),
	}, nil
}

func setFocusConcept(st *statex.ConversationState, concepts *catalogx.Catalog[Concept], args map[string]any) (contractx.ToolResult, error) {
	conceptID, ok := toolx.StringArg(args, "concept_id")
	if !ok || strings.TrimSpace(conceptID) == "" {
		return contractx.ToolResult{Tool: ToolSetFocusConcept, Error: "concept_id is required"}, nil
	}

	key, err := concepts.Lookup(conceptID)
	if err != nil {
		if errors.Is(err, contractx.ErrNotFound) {
			return contractx.ToolResult{
				Tool:  ToolSetFocusConcept,
				Error: fmt.Errorf("%w: %q", contractx.ErrUnknownConcept, conceptID).Error(),
			}, nil
		}
		return contractx.ToolResult{}, err
	}

	c, _ := concepts.Get(key)
	st.ConceptID = key
	st.EnsureMastery(key)
	return contractx.ToolResult{
		Tool:  ToolSetFocusConcept,
		Reply: fmt.Sprintf("Concept locked: %s. You're clear to continue working on %s.", c.Title, c.Title),
	}, nil
}

func listConcepts(concepts *catalogx.Catalog[Concept]) contractx.ToolResult {
	parts := make([]string, 0, concepts.Len())
	for _, key := range concepts.Keys() {
		c, _ := concepts.Get(key)
		parts = append(parts, fmt.Sprintf("'%s' (%s)", c.ID, c.Title))
	}
	return contractx.ToolResult{
		Tool:  ToolListConcepts,
		Reply: fmt.Sprintf("Available concepts: %s. Ask the learner which one they want to focus on.", strings.Join(parts, ", ")),
	}
}

// conceptContent serves the three mode-specific content tools. Each call
// bumps the matching mastery counter; the spoken text for a given concept
// never varies between calls.
func conceptContent(st *statex.ConversationState, concepts *catalogx.Catalog[Concept], tool string) (contractx.ToolResult, error) {
	c, ok := concepts.Get(st.ConceptID)
	if st.ConceptID == "" || !ok {
		return contractx.ToolResult{
			Tool:  tool,
			Error: fmt.Errorf("%w: call set_focus_concept first", contractx.ErrNoConceptSelected).Error(),
		}, nil
	}

	mastery := st.EnsureMastery(c.ID)
	var reply string
	switch tool {
	case ToolDescribeCurrentConcept:
		mastery.TimesLearned++
		reply = fmt.Sprintf("The concept is %s. Summary: %s", c.Title, c.Summary)
	case ToolGetQuizPrompt:
		mastery.TimesQuizzed++
		reply = fmt.Sprintf("Quiz question for %s: %s", c.Title, c.SampleQuestion)
	case ToolGetTeachBackPrompt:
		mastery.TimesTaughtBack++
		reply = fmt.Sprintf("Teach-back prompt for %s: %s", c.Title, c.TeachBackPrompt)
	}
	return contractx.ToolResult{Tool: tool, Reply: reply}, nil
}
