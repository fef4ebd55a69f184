package state

import (
	"time"

	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
)

// Stage tracks the fraud verification flow. Resolved and VerificationFailed
// are terminal; no transition leaves them.
type Stage string

const (
	StageUnresolved         Stage = "unresolved"
	StageCaseLoaded         Stage = "case_loaded"
	StageVerified           Stage = "verified"
	StageVerificationFailed Stage = "verification_failed"
	StageResolved           Stage = "resolved"
)

// ConceptMastery holds per-concept progress counters for the tutor. The
// counters are bookkeeping only, never gating.
type ConceptMastery struct {
	TimesLearned    int    `json:"times_learned"`
	TimesQuizzed    int    `json:"times_quizzed"`
	TimesTaughtBack int    `json:"times_taught_back"`
	LastScore       *int   `json:"last_score,omitempty"`
	LastFeedback    string `json:"last_feedback,omitempty"`
}

// ConversationState is the per-conversation mutable record, exclusively owned
// by that conversation's handler. It is destroyed when the conversation ends
// and never shared across conversations.
type ConversationState struct {
	ConversationID string              `json:"conversation_id"`
	Agent          contractx.AgentType `json:"agent"`

	// Fraud flow
	CaseKey string `json:"case_key,omitempty"`
	Stage   Stage  `json:"stage,omitempty"`

	// Slot filling (lead, barista). Absence from the map is the "missing"
	// marker; a captured field is never removed.
	Slots map[string]string `json:"slots,omitempty"`

	// Tutor flow
	Mode      string                     `json:"mode,omitempty"`
	ConceptID string                     `json:"concept_id,omitempty"`
	Mastery   map[string]*ConceptMastery `json:"mastery,omitempty"`

	// Lead flow: topics answered so far, in ask order.
	FAQHits []string `json:"faq_hits,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewConversationState(conversationID string, agent contractx.AgentType, now time.Time) *ConversationState {
	return &ConversationState{
		ConversationID: conversationID,
		Agent:          agent,
		Stage:          StageUnresolved,
		Slots:          make(map[string]string, 8),
		Mastery:        make(map[string]*ConceptMastery, 4),
		UpdatedAt:      now.UTC(),
	}
}

func (s *ConversationState) Touch(now time.Time) {
	s.UpdatedAt = now.UTC()
}

// EnsureMaps re-initializes maps after a JSON round trip through the store.
func (s *ConversationState) EnsureMaps() {
	if s.Slots == nil {
		s.Slots = make(map[string]string, 8)
	}
	if s.Mastery == nil {
		s.Mastery = make(map[string]*ConceptMastery, 4)
	}
}

// EnsureMastery returns the mastery record for conceptID, creating it on
// first use.
func (s *ConversationState) EnsureMastery(conceptID string) *ConceptMastery {
	s.EnsureMaps()
	m, ok := s.Mastery[conceptID]
	if !ok {
		m = &ConceptMastery{}
		s.Mastery[conceptID] = m
	}
	return m
}

// Terminal reports whether the fraud flow can accept no further transitions.
func (s *ConversationState) Terminal() bool {
	return s.Stage == StageResolved || s.Stage == StageVerificationFailed
}
