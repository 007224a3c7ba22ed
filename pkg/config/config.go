package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/pawmarket/pawmarket-backend/pkg/enums"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Catalog      CatalogConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Catalog.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PAWMARKET_APP_ENV" required:"true"`
	Port         string `envconfig:"PAWMARKET_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PAWMARKET_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PAWMARKET_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PAWMARKET_DB_DSN"`
	Driver string `envconfig:"PAWMARKET_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"PAWMARKET_DB_HOST"`
	LegacyPort     int    `envconfig:"PAWMARKET_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PAWMARKET_DB_USER"`
	LegacyPassword string `envconfig:"PAWMARKET_DB_PASSWORD"`
	LegacyName     string `envconfig:"PAWMARKET_DB_NAME"`
	LegacySSLMode  string `envconfig:"PAWMARKET_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PAWMARKET_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PAWMARKET_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PAWMARKET_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PAWMARKET_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PAWMARKET_REDIS_URL" required:"true"`
	Address      string        `envconfig:"PAWMARKET_REDIS_ADDR"`
	Password     string        `envconfig:"PAWMARKET_REDIS_PASSWORD"`
	DB           int           `envconfig:"PAWMARKET_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PAWMARKET_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PAWMARKET_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PAWMARKET_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PAWMARKET_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PAWMARKET_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"PAWMARKET_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"PAWMARKET_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"PAWMARKET_JWT_EXPIRATION_MINUTES" default:"60"`
}

// CatalogConfig carries the storefront-wide pricing defaults.
type CatalogConfig struct {
	DefaultCurrency   string        `envconfig:"PAWMARKET_CATALOG_DEFAULT_CURRENCY" default:"IDR"`
	PromoCacheTTL     time.Duration `envconfig:"PAWMARKET_CATALOG_PROMO_CACHE_TTL" default:"30s"`
	ShopperCountryHdr string        `envconfig:"PAWMARKET_CATALOG_COUNTRY_HEADER" default:"X-Shopper-Country"`
}

func (c CatalogConfig) validate() error {
	if _, err := enums.ParseCurrency(c.DefaultCurrency); err != nil {
		return fmt.Errorf("catalog default currency: %w", err)
	}
	return nil
}

// Currency returns the parsed default currency. validate() guarantees it parses.
func (c CatalogConfig) Currency() enums.Currency {
	currency, _ := enums.ParseCurrency(c.DefaultCurrency)
	return currency
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"PAWMARKET_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"PAWMARKET_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
