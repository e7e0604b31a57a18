package main

import (
	"github.com/spf13/cobra"

	"github.com/KhanNadman/llm-patchsmith/internal/config"
	"github.com/KhanNadman/llm-patchsmith/internal/core"
	"github.com/KhanNadman/llm-patchsmith/internal/generate"
	"github.com/KhanNadman/llm-patchsmith/internal/telemetry"
	"github.com/KhanNadman/llm-patchsmith/internal/timeapi"
)

// loadConfig resolves the --config flag and loads configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// buildGenerator creates the Ollama-backed generator from config.
func buildGenerator(cfg *config.Config) *generate.Client {
	return generate.NewClient(
		generate.WithBaseURL(cfg.Ollama.URL),
		generate.WithModel(cfg.Ollama.Model),
	)
}

// buildEngine wires the full pipeline from config.
func buildEngine(cfg *config.Config) *core.Engine {
	dates := timeapi.NewClient(
		timeapi.WithBaseURL(cfg.TimeAPI.URL),
		timeapi.WithTimezone(cfg.TimeAPI.Timezone),
	)
	recorder := telemetry.NewFileRecorder(cfg.Telemetry.Path)

	return core.NewEngine(buildGenerator(cfg), dates, recorder)
}
