package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	baristax "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/agents/barista"
	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
	gatewayx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/gateway"
	persistx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/persist"
	promptx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/prompt"
	statex "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/state"
	configx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/pkg/config"
	_ "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/pkg/logger/autoload"
)

type AppConfig struct {
	ListenAddr    string `split_words:"true" default:":8083"`
	StateBackend  string `split_words:"true" default:"memory"`
	OrderFilePath string `split_words:"true" default:"day2_order_summary.json"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("BARISTA")
	ctx := context.Background()

	store := newStore(appCfg.StateBackend)
	orderFile, err := persistx.NewOrderFile(appCfg.OrderFilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build order file")
	}

	executor := baristax.NewExecutor(orderFile)
	gw, err := gatewayx.New(ctx, contractx.AgentTypeBarista, store, executor)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build gateway")
	}

	prompts := promptx.LoadPromptSet()
	mux := http.NewServeMux()
	mux.Handle("/", gw.Handler())
	mux.HandleFunc("/v1/instructions", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(prompts.Barista))
	})

	log.Info().
		Str("addr", appCfg.ListenAddr).
		Str("order_file", appCfg.OrderFilePath).
		Int("tools", len(baristax.Tools())).
		Msg("barista agent listening")
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
