package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env    string
	Logger LoggerConfig
	Server ServerConfig
	Quiz   QuizConfig
	Redis  RedisConfig
}

type LoggerConfig struct {
	Env   string
	Level string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type QuizConfig struct {
	QuestionsURL    string        // http(s) URL or local path of the question set
	OrganizationURL string        // http(s) URL or local path of the organisation document
	PoolSize        int           // questions drawn per attempt
	FetchTimeout    time.Duration // upper bound for one resource fetch
	SessionTTL      time.Duration // idle sessions older than this are evicted
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
	TTL      time.Duration // lifetime of cached resources
}

// Enabled reports whether a Redis address is configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// LoadConfig reads config.yaml (optional), a .env file (optional) and the
// environment, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Log the config file being used
	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{
		Env: v.GetString("env"),
		Logger: LoggerConfig{
			Env:   v.GetString("env"),
			Level: v.GetString("logger.level"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		Quiz: QuizConfig{
			QuestionsURL:    v.GetString("quiz.questions_url"),
			OrganizationURL: v.GetString("quiz.organization_url"),
			PoolSize:        v.GetInt("quiz.pool_size"),
			FetchTimeout:    v.GetDuration("quiz.fetch_timeout"),
			SessionTTL:      v.GetDuration("quiz.session_ttl"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			TTL:      v.GetDuration("redis.ttl"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("quiz.questions_url", "data/quiz.json")
	v.SetDefault("quiz.organization_url", "data/data.json")
	v.SetDefault("quiz.pool_size", 30)
	v.SetDefault("quiz.fetch_timeout", "10s")
	v.SetDefault("quiz.session_ttl", "2h")
	v.SetDefault("redis.address", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "5m")
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.Quiz.QuestionsURL == "" {
		return errors.New("quiz.questions_url is required")
	}
	if c.Quiz.PoolSize <= 0 {
		return fmt.Errorf("quiz.pool_size must be positive, got %d", c.Quiz.PoolSize)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	return nil
}
