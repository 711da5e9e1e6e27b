package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

// AdminHTTP is the optional ops listener (/health, /metrics). Port 0 disables it.
type AdminHTTP struct {
	Host string
	Port int
}

type App struct {
	Name  string
	Env   string
	HTTP  HTTP
	Admin AdminHTTP
}

type FileLog struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level string
	JSON  bool
	File  FileLog
}

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
	ForeignKeys        bool `mapstructure:"foreign_keys"`
}

type Limits struct {
	RPS          float64
	Burst        int
	Concurrency  int64
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
	TimeoutSec   int   `mapstructure:"timeout_sec"`
}

// Auth enables the bearer-token guard on /api when Secret is set.
type Auth struct {
	Secret   string
	Issuer   string
	TokenTTL int `mapstructure:"token_ttl_min"`
}

type Config struct {
	App    App
	Log    Log
	DB     DB
	Limits Limits
	Auth   Auth
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "gestor-xarxa")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 3000)
	v.SetDefault("app.http.readtimeoutsec", 15)
	v.SetDefault("app.http.writetimeoutsec", 15)
	v.SetDefault("app.http.idletimeoutsec", 60)
	v.SetDefault("app.admin.host", "127.0.0.1")
	v.SetDefault("app.admin.port", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file.enable", false)
	v.SetDefault("log.file.filename", "logs/gestor-xarxa.log")
	v.SetDefault("log.file.maxsizemb", 50)
	v.SetDefault("log.file.maxbackups", 5)
	v.SetDefault("log.file.maxagedays", 30)
	v.SetDefault("log.file.compress", false)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "./db/gestor-xarxa.db")
	v.SetDefault("db.username", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.maxopenconns", 10)
	v.SetDefault("db.maxidleconns", 5)
	v.SetDefault("db.connmaxlifetimemin", 30)
	v.SetDefault("db.automigrate", true)
	v.SetDefault("db.loglevel", "warn")
	v.SetDefault("db.foreign_keys", true)

	v.SetDefault("limits.rps", 200)
	v.SetDefault("limits.burst", 400)
	v.SetDefault("limits.concurrency", 300)
	v.SetDefault("limits.max_body_bytes", 1<<20)
	v.SetDefault("limits.timeout_sec", 10)

	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.issuer", "gestor-xarxa")
	v.SetDefault("auth.token_ttl_min", 720)
}

// Load reads the YAML file at path (CONFIG_PATH, then
// ./configs/config.local.yaml) and applies APP_* env overrides, e.g.
// APP_DB_DSN or APP_APP_HTTP_PORT. A missing file leaves the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.App.HTTP.Port <= 0 {
		return fmt.Errorf("app.http.port must be positive, got %d", c.App.HTTP.Port)
	}
	if c.DB.DSN == "" {
		return errors.New("db.dsn is required")
	}
	return nil
}
