package config

import "time"

const (
	envPort             = "PORT"
	envProvider         = "PROVIDER"
	envDataDir          = "DATA_DIR"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken       = "ADMIN_TOKEN"
	envPregenEnabled    = "PREGEN_ENABLED"
	envPregenInterval   = "PREGEN_INTERVAL"
	envPregenFutureDays = "PREGEN_FUTURE_DAYS"
	envSnapshotDir      = "SNAPSHOT_DIR"
	envSnapshotDays     = "SNAPSHOT_RETENTION_DAYS"
	envCricAPIBaseURL   = "CRICAPI_BASE_URL"
	envCricAPIKey       = "CRICAPI_KEY"

	defaultPort        = "4000"
	defaultProvider    = "fixture"
	defaultDataDir     = "data"
	defaultMetricsPort = "9090"
	// Pregeneration is cheap (pure in-memory computation), so a short interval
	// keeps tomorrow's puzzles warm without meaningful cost.
	defaultPregenInterval   = Duration(time.Hour)
	defaultPregenFutureDays = 2
	defaultSnapshotDir      = "data/snapshots"
	defaultSnapshotDays     = 14
)
