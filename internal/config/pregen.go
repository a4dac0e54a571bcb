package config

import "time"

// PregenConfig controls the background daily-puzzle pregeneration loop.
type PregenConfig struct {
	Enabled    bool
	Interval   time.Duration // delay between pregeneration sweeps
	FutureDays int           // how many future days to keep pregenerated
}

func loadPregen() PregenConfig {
	return PregenConfig{
		Enabled:    boolEnvOrDefault(envPregenEnabled, true),
		Interval:   durationEnvOrDefault(envPregenInterval, defaultPregenInterval),
		FutureDays: intEnvOrDefault(envPregenFutureDays, defaultPregenFutureDays),
	}
}

// SnapshotConfig controls where generated games and saved states live on disk.
type SnapshotConfig struct {
	Dir           string
	RetentionDays int
	AdminToken    string // reused for refresh endpoint auth
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Dir:           envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionDays: intEnvOrDefault(envSnapshotDays, defaultSnapshotDays),
		AdminToken:    envOrDefault(envAdminToken, ""),
	}
}
