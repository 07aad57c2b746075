package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration. Values come from environment
// variables; defaults are suitable for local development.
type Config struct {
	App    AppConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Stripe StripeConfig
	Gemini GeminiConfig
	Client ClientConfig
	Log    LogConfig
}

type AppConfig struct {
	Name string
	Env  string // development, production
	Port string
}

type MongoConfig struct {
	ConnString string
	Database   string
}

type RedisConfig struct {
	Addr     string // empty disables Redis-backed stores
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type StripeConfig struct {
	SecretKey string
	ReturnURL string
	Currency  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// ClientConfig configures the booking client's local fallback store and
// outbox replayer.
type ClientConfig struct {
	LocalStatePath string
	ReplayInterval time.Duration
	ReplayMaxTries int
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// C is the loaded application configuration. Load must be called before use.
var C *Config

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "travel-booking-webapp")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("mongo.database", "travel-booking")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.expiration", "8h")
	v.SetDefault("stripe.currency", "inr")
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("client.local_state_path", "./bookings-local.json")
	v.SetDefault("client.replay_interval", "1m")
	v.SetDefault("client.replay_max_tries", 10)
	v.SetDefault("client.request_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"app.env":          "APP_ENV",
		"app.port":         "PORT",
		"mongo.connstring": "MONGODB_CONNSTRING",
		"mongo.database":   "MONGODB_DATABASE",
		"redis.addr":       "REDIS_ADDR",
		"redis.password":   "REDIS_PASSWORD",
		"jwt.secret":       "SIGN",
		"stripe.secretkey": "STRIPE_SECRET_KEY",
		"stripe.returnurl": "STRIPE_RETURN_URL",
		"gemini.apikey":    "GEMINI_API_KEY",
		"log.level":        "LOG_LEVEL",
		"log.format":       "LOG_FORMAT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("cannot bind env variable %v: %w", env, err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Mongo: MongoConfig{
			ConnString: v.GetString("mongo.connstring"),
			Database:   v.GetString("mongo.database"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			Expiration: v.GetDuration("jwt.expiration"),
		},
		Stripe: StripeConfig{
			SecretKey: v.GetString("stripe.secretkey"),
			ReturnURL: v.GetString("stripe.returnurl"),
			Currency:  v.GetString("stripe.currency"),
		},
		Gemini: GeminiConfig{
			APIKey: v.GetString("gemini.apikey"),
			Model:  v.GetString("gemini.model"),
		},
		Client: ClientConfig{
			LocalStatePath: v.GetString("client.local_state_path"),
			ReplayInterval: v.GetDuration("client.replay_interval"),
			ReplayMaxTries: v.GetInt("client.replay_max_tries"),
			RequestTimeout: v.GetDuration("client.request_timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	C = cfg
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("SIGN (jwt signing secret) is not set")
	}
	if c.Mongo.ConnString == "" {
		return fmt.Errorf("MONGODB_CONNSTRING is not set")
	}
	if c.IsProduction() && c.Stripe.SecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is required in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
