package config

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Provider  string
	DataDir   string
	CricAPI   CricAPIConfig
	Pregen    PregenConfig
	Snapshots SnapshotConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Provider:  envOrDefault(envProvider, defaultProvider),
		DataDir:   envOrDefault(envDataDir, defaultDataDir),
		CricAPI:   loadCricAPI(),
		Pregen:    loadPregen(),
		Snapshots: loadSnapshots(),
		Metrics:   loadMetrics(),
	}
}
