package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	tutorx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/agents/tutor"
	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
	gatewayx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/gateway"
	promptx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/prompt"
	statex "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/state"
	configx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/pkg/config"
	_ "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/pkg/logger/autoload"
	murfx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/pkg/murf"
)

type AppConfig struct {
	ListenAddr   string `split_words:"true" default:":8082"`
	StateBackend string `split_words:"true" default:"memory"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("TUTOR")
	ctx := context.Background()

	store := newStore(appCfg.StateBackend)
	voices := newVoiceController()

	executor := tutorx.NewExecutor(tutorx.NewConceptCatalog(), voices)
	gw, err := gatewayx.New(ctx, contractx.AgentTypeTutor, store, executor)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build gateway")
	}

	prompts := promptx.LoadPromptSet()
	mux := http.NewServeMux()
	mux.Handle("/", gw.Handler())
	mux.HandleFunc("/v1/instructions", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(prompts.Tutor))
	})

	log.Info().
		Str("addr", appCfg.ListenAddr).
		Int("concepts", tutorx.NewConceptCatalog().Len()).
		Int("tools", len(tutorx.Tools())).
		Msg("tutor agent listening")
	if err := http.ListenAndServe(appCfg.ListenAddr, mux); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newStore(backend string) statex.Store {
	if backend == "upstash" {
		cfg := configx.MustNew[statex.UpstashRedisConfig]("UPSTASH_REDIS")
		store, err := statex.NewUpstashRedisStore(*cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build upstash store")
		}
		return store
	}
	return statex.NewMemoryStore()
}

// newVoiceController is best-effort: without MURF_* configuration the tutor
// still runs, it just cannot switch voices.
func newVoiceController() contractx.VoiceController {
	cfg, err := configx.New[murfx.Config]("MURF")
	if err != nil {
		log.Warn().Err(err).Msg("murf not configured, voice persona switching disabled")
		return nil
	}
	client, err := murfx.NewClient(*cfg)
	if err != nil {
		log.Warn().Err(err).Msg("murf client rejected, voice persona switching disabled")
		return nil
	}
	return client
}
