package config

// EnvPrefix is the envconfig prefix shared by every variable.
const EnvPrefix = "rwaconsole"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names used by tests and tooling.
const (
	EnvAppEnv         = "RWACONSOLE_APP_ENV"
	EnvPort           = "RWACONSOLE_APP_PORT"
	EnvDBDSN          = "RWACONSOLE_DB_DSN"
	EnvRedisURL       = "RWACONSOLE_REDIS_URL"
	EnvJWTSecret      = "RWACONSOLE_JWT_SECRET"
	EnvJWTIssuer      = "RWACONSOLE_JWT_ISSUER"
	EnvJWTExpMins     = "RWACONSOLE_JWT_EXPIRATION_MINUTES"
	EnvSessionTTLMins = "RWACONSOLE_SESSION_TTL_MINUTES"
	EnvGCPProjectID   = "RWACONSOLE_GCP_PROJECT_ID"
	EnvGCSBucket      = "RWACONSOLE_GCS_BUCKET_NAME"
)
