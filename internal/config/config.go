package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	AuthModeJWT      = "jwt"
	AuthModeFirebase = "firebase"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	// LockPoolSize размер отдельного пула соединений под advisory-блокировки пользователей.
	LockPoolSize int32 `env:"LOCK_POOL_SIZE" envDefault:"8"`
	// RedisURL необязателен, без него правила наценки читаются из базы.
	RedisURL       string        `env:"REDIS_URL"`
	MarkupCacheTTL time.Duration `env:"MARKUP_CACHE_TTL" envDefault:"1m"`

	ProviderURL     string        `env:"SMM_API_URL"`
	ProviderKey     string        `env:"SMM_API_KEY"`
	ProviderTimeout time.Duration `env:"SMM_TIMEOUT"  envDefault:"15s"`
	ProviderRPS     float64       `env:"SMM_RPS"      envDefault:"0"`

	DefaultMarkup      decimal.Decimal `env:"DEFAULT_MARKUP"        envDefault:"1.6"`
	ReferralCommission decimal.Decimal `env:"REFERRAL_COMMISSION"   envDefault:"0.03"`
	MinWithdrawal      decimal.Decimal `env:"MIN_WITHDRAWAL"        envDefault:"50"`
	SignupCoins        int64           `env:"REFERRAL_SIGNUP_COINS" envDefault:"2"`
	RewardCoins        int64           `env:"REWARD_COINS"          envDefault:"1"`
	// PricingFile YAML с таблицами ключевых слов и монетным каталогом. Пусто - встроенный каталог.
	PricingFile string `env:"PRICING_FILE"`

	AuthMode            string   `env:"AUTH_MODE"            envDefault:"jwt"`
	JWTSecret           string   `env:"JWT_SECRET"`
	FirebaseCredentials string   `env:"FIREBASE_CREDENTIALS"`
	AdminEmails         []string `env:"ADMIN_EMAILS"         envSeparator:","`

	MidtransServerKey string `env:"MIDTRANS_SERVER_KEY"`
	WebhookSecret     string `env:"WEBHOOK_SECRET"`

	// StatusSyncWorkers 0 отключает фоновую синхронизацию статусов.
	StatusSyncWorkers  uint          `env:"STATUS_SYNC_WORKERS"  envDefault:"4"`
	StatusSyncInterval time.Duration `env:"STATUS_SYNC_INTERVAL" envDefault:"30s"`

	APIRateLimit float64 `env:"API_RATE_LIMIT" envDefault:"10"`
	APIRateBurst int     `env:"API_RATE_BURST" envDefault:"20"`
}

func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func load(args []string) (*Config, error) {
	// .env необязателен, уже выставленные переменные окружения не перезаписываются.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if err := loadFlags(&flagsConfig, args); err != nil {
		return nil, fmt.Errorf("parse flags: %s", err.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func loadFlags(flagConfig *Config, args []string) error {
	fs := flag.NewFlagSet("smmpanel", flag.ContinueOnError)
	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.RedisURL, "r", "", "Redis URL for markup cache")
	fs.StringVar(&flagConfig.ProviderURL, "p", "", "SMM provider API URL")
	fs.StringVar(&flagConfig.ProviderKey, "k", "", "SMM provider API key")
	fs.StringVar(&flagConfig.PricingFile, "c", "", "Pricing catalog YAML file")

	return fs.Parse(args) //nolint:wrapcheck
}

// mergeConfig строковые параметры из env приоритетнее флагов. Остальные читаются только из env.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.RedisURL = defaultIfBlank(envConfig.RedisURL, flagsConfig.RedisURL)
	conf.ProviderURL = defaultIfBlank(envConfig.ProviderURL, flagsConfig.ProviderURL)
	conf.ProviderKey = defaultIfBlank(envConfig.ProviderKey, flagsConfig.ProviderKey)
	conf.PricingFile = defaultIfBlank(envConfig.PricingFile, flagsConfig.PricingFile)
	return &conf
}

func (c *Config) validate() error {
	switch {
	case c.DatabaseDSN == "":
		return errors.New("database DSN is not set")
	case c.ProviderURL == "" || c.ProviderKey == "":
		return errors.New("SMM provider url and key are required")
	case !c.DefaultMarkup.IsPositive():
		return errors.New("default markup must be positive")
	case c.ReferralCommission.IsNegative():
		return errors.New("referral commission must not be negative")
	case c.SignupCoins < 0 || c.RewardCoins < 0:
		return errors.New("coin amounts must not be negative")
	case c.LockPoolSize <= 0:
		return errors.New("lock pool size must be positive")
	}

	switch c.AuthMode {
	case AuthModeJWT:
		if c.JWTSecret == "" {
			return errors.New("JWT_SECRET is required for jwt auth mode")
		}
	case AuthModeFirebase:
		if c.FirebaseCredentials == "" {
			return errors.New("FIREBASE_CREDENTIALS is required for firebase auth mode")
		}
	default:
		return fmt.Errorf("unknown auth mode `%s`", c.AuthMode)
	}
	return nil
}

// String скрывает секреты, конфиг пишется в лог при старте.
func (c *Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s MigrationsDir:%s Redis:%t Provider:%s ProviderTimeout:%s ProviderRPS:%g "+
			"DefaultMarkup:%s AuthMode:%s StatusSyncWorkers:%d StatusSyncInterval:%s}",
		c.RunAddress, c.MigrationsDir, c.RedisURL != "", c.ProviderURL, c.ProviderTimeout, c.ProviderRPS,
		c.DefaultMarkup, c.AuthMode, c.StatusSyncWorkers, c.StatusSyncInterval,
	)
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
