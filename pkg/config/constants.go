package config

const (
	// EnvPrefix is passed to envconfig; individual fields carry full names.
	EnvPrefix = "PAWMARKET"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv   = "PAWMARKET_APP_ENV"
	EnvPort     = "PAWMARKET_APP_PORT"
	EnvLogLevel = "PAWMARKET_LOG_LEVEL"

	EnvDBDSN  = "PAWMARKET_DB_DSN"
	EnvDBHost = "PAWMARKET_DB_HOST"
	EnvDBUser = "PAWMARKET_DB_USER"
	EnvDBName = "PAWMARKET_DB_NAME"

	EnvRedisURL  = "PAWMARKET_REDIS_URL"
	EnvJWTSecret = "PAWMARKET_JWT_SECRET"
	EnvJWTIssuer = "PAWMARKET_JWT_ISSUER"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
