package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ErrMissingSecret is fatal: the server refuses to start without a
// signing secret rather than issue forgeable tokens.
var ErrMissingSecret = errors.New("jwt secret is not configured (set server.jwt.secret or INVITA_JWT_SECRET)")

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string // "mysql" or "sqlite"
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string // sqlite only
}

type Redis struct {
	Addr   string
	TTLSec int
}

type Config struct {
	HTTP  HTTP
	DB    DB
	Redis Redis
	JWT   struct {
		Secret string
		Issuer string
		ExpMin int
	}
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.db.driver", "mysql")
	v.SetDefault("server.db.host", "127.0.0.1")
	v.SetDefault("server.db.port", 3306)
	v.SetDefault("server.db.user", "root")
	v.SetDefault("server.db.pass", "")
	v.SetDefault("server.db.name", "invita")
	v.SetDefault("server.db.path", "invita.db")
	v.SetDefault("server.redis.addr", "")
	v.SetDefault("server.redis.ttl_sec", 60)
	v.SetDefault("server.jwt.issuer", "invita")
	v.SetDefault("server.jwt.exp_min", 60)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("server.db.driver"),
			Host:   v.GetString("server.db.host"),
			Port:   v.GetInt("server.db.port"),
			User:   v.GetString("server.db.user"),
			Pass:   v.GetString("server.db.pass"),
			Name:   v.GetString("server.db.name"),
			Path:   v.GetString("server.db.path"),
		},
		Redis: Redis{Addr: v.GetString("server.redis.addr"), TTLSec: v.GetInt("server.redis.ttl_sec")},
	}
	cfg.JWT.Secret = v.GetString("server.jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = os.Getenv("INVITA_JWT_SECRET")
	}
	if cfg.JWT.Secret == "" {
		return nil, ErrMissingSecret
	}
	cfg.JWT.Issuer = v.GetString("server.jwt.issuer")
	cfg.JWT.ExpMin = v.GetInt("server.jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	return cfg, nil
}

// Watch reports edits to the config file. Settings are read once at
// startup; the callback is there to tell operators a restart is needed.
func Watch(path string, onChange func(e fsnotify.Event)) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	_ = v.ReadInConfig()
	v.OnConfigChange(onChange)
	v.WatchConfig()
}
