package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	leadx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/agents/lead"
	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
	gatewayx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/gateway"
	persistx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/persist"
	promptx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/prompt"
	statex "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/state"
	configx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/pkg/config"
	_ "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/pkg/logger/autoload"
)

type AppConfig struct {
	ListenAddr   string `split_words:"true" default:":8081"`
	StateBackend string `split_words:"true" default:"memory"`
	LeadFilePath string `split_words:"true" default:"captured_lead_data.json"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("LEAD")
	ctx := context.Background()

	store := newStore(appCfg.StateBackend)
	leadFile, err := persistx.NewLeadFile(appCfg.LeadFilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build lead file")
	}

	executor := leadx.NewExecutor(leadx.NewFAQCatalog(), leadFile)
	gw, err := gatewayx.New(ctx, contractx.AgentTypeLead, store, executor)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build gateway")
	}

	prompts := promptx.LoadPromptSet()
	mux := http.NewServeMux()
	mux.Handle("/", gw.Handler())
	mux.HandleFunc("/v1/instructions", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(prompts.Lead))
	})

	log.Info().
		Str("addr", appCfg.ListenAddr).
		Str("lead_file", appCfg.LeadFilePath).
		Int("tools", len(leadx.Tools())).
		Msg("sdr lead agent listening")
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
