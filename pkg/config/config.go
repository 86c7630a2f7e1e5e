package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Password  PasswordConfig
	GCP       GCPConfig
	GCS       GCSConfig
	Documents DocumentsConfig
	Features  FeaturesConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RWACONSOLE_APP_ENV" required:"true"`
	Port         string `envconfig:"RWACONSOLE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"RWACONSOLE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RWACONSOLE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"RWACONSOLE_DB_DSN"`
	Driver string `envconfig:"RWACONSOLE_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"RWACONSOLE_DB_HOST"`
	Port     int    `envconfig:"RWACONSOLE_DB_PORT" default:"5432"`
	User     string `envconfig:"RWACONSOLE_DB_USER"`
	Password string `envconfig:"RWACONSOLE_DB_PASSWORD"`
	Name     string `envconfig:"RWACONSOLE_DB_NAME"`
	SSLMode  string `envconfig:"RWACONSOLE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"RWACONSOLE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"RWACONSOLE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"RWACONSOLE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RWACONSOLE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ensureDSN builds a postgres DSN from the discrete fields when one is not
// provided directly.
func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("database DSN or host/user/name are required")
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	d.DSN = u.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"RWACONSOLE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"RWACONSOLE_REDIS_ADDR"`
	Password     string        `envconfig:"RWACONSOLE_REDIS_PASSWORD"`
	DB           int           `envconfig:"RWACONSOLE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RWACONSOLE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RWACONSOLE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RWACONSOLE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RWACONSOLE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RWACONSOLE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"RWACONSOLE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"RWACONSOLE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"RWACONSOLE_JWT_EXPIRATION_MINUTES" required:"true"`
	SessionTTLMinutes int    `envconfig:"RWACONSOLE_SESSION_TTL_MINUTES" default:"43200"`
}

// SessionTTL returns the server-side session lifetime.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"RWACONSOLE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"RWACONSOLE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"RWACONSOLE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"RWACONSOLE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"RWACONSOLE_ARGON_KEY_LEN" default:"32"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"RWACONSOLE_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"RWACONSOLE_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"RWACONSOLE_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName string `envconfig:"RWACONSOLE_GCS_BUCKET_NAME" required:"true"`
}

type DocumentsConfig struct {
	MaxUploadMB       int    `envconfig:"RWACONSOLE_DOCUMENTS_MAX_UPLOAD_MB" default:"10"`
	AllowedExtensions string `envconfig:"RWACONSOLE_DOCUMENTS_ALLOWED_EXTENSIONS" default:".pdf,.doc,.docx"`
}

// AllowedExtensionList splits the configured extension list, lowercased.
func (d DocumentsConfig) AllowedExtensionList() []string {
	parts := strings.Split(d.AllowedExtensions, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

type FeaturesConfig struct {
	AutoMigrate bool `envconfig:"RWACONSOLE_AUTO_MIGRATE" default:"false"`
}
