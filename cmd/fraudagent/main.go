package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	fraudx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/agents/fraud"
	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
	gatewayx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/gateway"
	persistx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/persist"
	promptx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/prompt"
	statex "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/state"
	configx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/pkg/config"
	_ "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/pkg/logger/autoload"
)

type AppConfig struct {
	ListenAddr   string `split_words:"true" default:":8080"`
	StateBackend string `split_words:"true" default:"memory"`
	OutcomePath  string `split_words:"true" default:"call_outcomes.jsonl"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("FRAUD")
	ctx := context.Background()

	store := newStore(appCfg.StateBackend)
	sink := newSink(ctx, appCfg.OutcomePath)

	executor := fraudx.NewExecutor(fraudx.NewCaseCatalog(), sink)
	gw, err := gatewayx.New(ctx, contractx.AgentTypeFraud, store, executor)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build gateway")
	}

	prompts := promptx.LoadPromptSet()
	mux := http.NewServeMux()
	mux.Handle("/", gw.Handler())
	mux.HandleFunc("/v1/instructions", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(prompts.Fraud))
	})

	log.Info().
		Str("addr", appCfg.ListenAddr).
		Int("cases", fraudx.NewCaseCatalog().Len()).
		Int("tools", len(fraudx.Tools())).
		Msg("fraud verification agent listening")
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

func newSink(ctx context.Context, outcomePath string) contractx.OutcomeSink {
	pgCfg := configx.MustNew[persistx.PostgresConfig]("POSTGRES")
	if pgCfg.DSN != "" {
		sink, err := persistx.NewPostgresSink(*pgCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build postgres sink")
		}
		if err := sink.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate outcome table")
		}
		return sink
	}

	sink, err := persistx.NewFileSink(outcomePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build file sink")
	}
	return sink
}
