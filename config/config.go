package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Game struct {
		Actors int
		Rounds int
		Seed   int64
		Names  string
	}
	Log struct {
		Level string
	}
	Server struct {
		Port string
	}
	Storage struct {
		Driver string // memory, redis or postgres
	}
	Database struct {
		DSN string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
		TTL      int // seconds, 0 keeps forever
	}
	JWT struct {
		Secret string
	}
}

var C Config

// EnvPrefix prefixes every environment override, e.g. STARGAME_GAME_ACTORS.
const EnvPrefix = "STARGAME"

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.actors", 99)
	v.SetDefault("game.rounds", 10)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.names", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("server.port", ":8080")
	v.SetDefault("storage.driver", "memory")
	v.SetDefault("database.dsn", "")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 0)
	v.SetDefault("jwt.secret", "")
}

// New builds a viper instance with defaults, a .env file when present, and
// environment overrides. path may be empty; a missing file is not an error
// unless path was given explicitly.
func New(path string) (*viper.Viper, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return v, nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Load fills C from path (see New).
func Load(path string) error {
	v, err := New(path)
	if err != nil {
		return err
	}
	return Decode(v, &C)
}

// Decode unmarshals v into c and validates the result.
func Decode(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return c.Validate()
}

func (c Config) Validate() error {
	if c.Game.Actors < 0 {
		return fmt.Errorf("game.actors must not be negative, got %d", c.Game.Actors)
	}
	if c.Game.Rounds < 0 {
		return fmt.Errorf("game.rounds must not be negative, got %d", c.Game.Rounds)
	}
	switch c.Storage.Driver {
	case "memory", "redis", "postgres":
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == "postgres" && c.Database.DSN == "" {
		return errors.New("storage.driver postgres needs database.dsn")
	}
	return nil
}
