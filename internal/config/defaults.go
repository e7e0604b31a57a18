package config

// DefaultConfig returns the configuration used when no file or
// environment overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Addr: ":8080",
		Ollama: OllamaConfig{
			URL:   "http://localhost:11434/api/chat",
			Model: "gemma3:1b",
		},
		TimeAPI: TimeAPIConfig{
			URL:      "https://worldtimeapi.org/api/timezone",
			Timezone: "America/Toronto",
		},
		Telemetry: TelemetryConfig{
			Path: "telemetry.log",
		},
	}
}
