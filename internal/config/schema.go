package config

// Config is the full PatchSmith configuration.
type Config struct {
	// Web server listen address
	Addr string `yaml:"addr" mapstructure:"addr"`

	// Model backend configuration
	Ollama OllamaConfig `yaml:"ollama" mapstructure:"ollama"`

	// Release date lookup configuration
	TimeAPI TimeAPIConfig `yaml:"time_api" mapstructure:"time_api"`

	// Telemetry sink configuration
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// OllamaConfig configures the chat endpoint used for generation.
type OllamaConfig struct {
	URL   string `yaml:"url" mapstructure:"url"`
	Model string `yaml:"model" mapstructure:"model"`
}

// TimeAPIConfig configures the external time service.
type TimeAPIConfig struct {
	URL      string `yaml:"url" mapstructure:"url"`
	Timezone string `yaml:"timezone" mapstructure:"timezone"`
}

// TelemetryConfig configures the append-only request log.
type TelemetryConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}
