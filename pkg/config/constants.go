package config

// Environment variable names, kept in one place so tests and docs agree.
const (
	EnvAppEnv           = "JERSEYFRONT_APP_ENV"
	EnvPort             = "JERSEYFRONT_APP_PORT"
	EnvLogLevel         = "JERSEYFRONT_LOG_LEVEL"
	EnvUpstreamBaseURL  = "JERSEYFRONT_UPSTREAM_BASE_URL"
	EnvUpstreamImageURL = "JERSEYFRONT_UPSTREAM_IMAGE_BASE_URL"
	EnvUpstreamTimeout  = "JERSEYFRONT_UPSTREAM_TIMEOUT"
	EnvCORSOrigins      = "JERSEYFRONT_CORS_ORIGINS"
)
