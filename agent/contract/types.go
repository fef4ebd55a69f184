package contract

// AgentType identifies one of the bundled voice agents. The external voice
// runtime starts exactly one agent per conversation.
type AgentType string

const (
	AgentTypeFraud   AgentType = "fraud"
	AgentTypeLead    AgentType = "lead"
	AgentTypeTutor   AgentType = "tutor"
	AgentTypeBarista AgentType = "barista"
)

// ToolRequest is one tool invocation extracted from the conversation by the
// runtime's LLM layer. Args hold the named arguments as decoded JSON.
type ToolRequest struct {
	ConversationID string         `json:"conversation_id,omitempty"`
	Tool           string         `json:"tool"`
	Args           map[string]any `json:"args,omitempty"`
}

// ToolResult carries the short natural-language reply the runtime speaks back
// to the user. EndConversation tells the runtime to close the call after
// speaking the reply (failed verification, resolved case).
type ToolResult struct {
	Tool            string `json:"tool"`
	Reply           string `json:"reply,omitempty"`
	EndConversation bool   `json:"end_conversation,omitempty"`
	Error           string `json:"error,omitempty"`
}

// OutcomeRecord is the append-only record written when a conversation reaches
// a terminal event. Field names follow the downstream log consumer.
type OutcomeRecord struct {
	CaseID             string `json:"case_id"`
	CustomerName       string `json:"customer_name"`
	SecurityIdentifier string `json:"security_identifier,omitempty"`
	TransactionAmount  string `json:"transaction_amount,omitempty"`
	MerchantName       string `json:"merchant_name,omitempty"`
	Location           string `json:"location,omitempty"`
	Timestamp          string `json:"timestamp,omitempty"`
	FinalStatus        string `json:"final_status"`
	OutcomeNote        string `json:"outcome_note"`
}
