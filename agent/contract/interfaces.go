package contract

import "context"

// VoiceController lets an agent request a TTS persona change from the runtime.
// Failures are logged by callers and never abort the conversation.
type VoiceController interface {
	UpdateVoice(ctx context.Context, voice string, style string) error
}

// OutcomeSink receives one record per terminal conversation event.
type OutcomeSink interface {
	Append(ctx context.Context, rec OutcomeRecord) error
}
