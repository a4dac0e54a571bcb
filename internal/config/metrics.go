package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, "cricket-bingo-service"),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

// CricAPIConfig controls the optional remote player-data provider.
type CricAPIConfig struct {
	BaseURL string
	APIKey  string
}

func loadCricAPI() CricAPIConfig {
	return CricAPIConfig{
		BaseURL: envOrDefault(envCricAPIBaseURL, ""),
		APIKey:  envOrDefault(envCricAPIKey, ""),
	}
}
