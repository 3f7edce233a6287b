package config

import (
	"reflect"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

type (
	Config struct {
		App        App
		Server     Server
		Backend    Backend
		Recaptcha  Recaptcha
		PostgreSQL PostgreSQL
		Redis      Redis
		Storage    Storage
		Telegram   Telegram
		Session    Session
		Throttle   Throttle
		Payments   Payments
	}
	App struct {
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
		AuthSecret      string        `env:"AUTH_SECRET"`
		LogLevel        string        `env:"LOG_LEVEL"`
		LogPretty       bool          `env:"LOG_PRETTY"`
	}
	Server struct {
		Addr      string `env:"SERVER_ADDRESS"`
		StaticDir string `env:"STATIC_DIR"`
	}
	Backend struct {
		BaseURL string        `env:"API_URL"`
		Timeout time.Duration `env:"API_TIMEOUT"`
	}
	Recaptcha struct {
		SiteKey   string  `env:"RECAPTCHA_SITE_KEY"`
		SecretKey string  `env:"RECAPTCHA_SECRET_KEY"`
		VerifyURL string  `env:"RECAPTCHA_VERIFY_URL"`
		MinScore  float64 `env:"RECAPTCHA_MIN_SCORE"`
		Timeout   time.Duration
	}
	PostgreSQL struct {
		ConnString  string `env:"DATABASE_DSN"`
		PingTimeout time.Duration
	}
	Redis struct {
		Addr     string `env:"REDIS_ADDR"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB"`
	}
	Storage struct {
		Filepath string `env:"FILE_STORAGE_PATH"`
	}
	Telegram struct {
		Token  string `env:"TELEGRAM_BOT_TOKEN"`
		ChatID int64  `env:"TELEGRAM_CHAT_ID"`
	}
	Session struct {
		TTL time.Duration `env:"SESSION_TTL"`
	}
	Throttle struct {
		SupportPollInterval time.Duration `env:"SUPPORT_POLL_INTERVAL"`
		StatsPollInterval   time.Duration `env:"STATS_POLL_INTERVAL"`
	}
	Payments struct {
		MinWithdrawal decimal.Decimal `env:"MIN_WITHDRAWAL"`
	}
)

// Load fills the config from defaults, flags and the environment, in that
// order of increasing priority. A .env file in the working dir is loaded
// into the environment first when present.
func Load(flags *pflag.FlagSet) (*Config, error) {
	cfg := &Config{
		App: App{
			ShutdownTimeout: time.Second * 3,
			LogLevel:        "info",
		},
		Backend: Backend{
			Timeout: time.Second * 10,
		},
		Recaptcha: Recaptcha{
			VerifyURL: "https://www.google.com/recaptcha/api/siteverify",
			MinScore:  0.5,
			Timeout:   time.Second * 5,
		},
		PostgreSQL: PostgreSQL{
			PingTimeout: time.Second * 2,
		},
		Session: Session{
			TTL: 24 * time.Hour,
		},
		Throttle: Throttle{
			SupportPollInterval: 3 * time.Second,
			StatsPollInterval:   10 * time.Second,
		},
		Payments: Payments{
			MinWithdrawal: decimal.NewFromInt(5),
		},
	}

	if flags != nil {
		bindFlags(flags, cfg)
	}

	// Missing .env is fine
	_ = godotenv.Load()

	// Env vars take priority
	err := env.ParseWithFuncs(cfg, map[reflect.Type]env.ParserFunc{
		reflect.TypeOf(decimal.Decimal{}): func(v string) (interface{}, error) {
			return decimal.NewFromString(v)
		},
	})

	return cfg, err
}

func bindFlags(flags *pflag.FlagSet, cfg *Config) {
	lookup := func(name string) string {
		f := flags.Lookup(name)
		if f == nil {
			return ""
		}
		return f.Value.String()
	}

	if v := lookup("address"); v != "" {
		cfg.Server.Addr = v
	}
	if v := lookup("static"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := lookup("api-url"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := lookup("database-dsn"); v != "" {
		cfg.PostgreSQL.ConnString = v
	}
	if v := lookup("redis-addr"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := lookup("file-storage"); v != "" {
		cfg.Storage.Filepath = v
	}
	if v := lookup("log-level"); v != "" {
		cfg.App.LogLevel = v
	}
}

// RegisterFlags declares the command-line flags understood by Load.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("address", "a", ":8080", "server address")
	flags.StringP("static", "s", "web", "static pages directory")
	flags.StringP("api-url", "u", "http://localhost:5000", "backend API base URL")
	flags.StringP("database-dsn", "d", "", "PostgreSQL DSN for the redirect audit log")
	flags.StringP("redis-addr", "r", "", "Redis address for sessions and throttling")
	flags.StringP("file-storage", "f", "sessions.json", "session backup file path")
	flags.String("log-level", "info", "log level (debug, info)")
}
