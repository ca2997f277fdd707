package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int     `mapstructure:"port"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateBurst      int     `mapstructure:"rate_burst"`
}

type StorageConfig struct {
	// Path of the JSON snapshot file holding all clinic data.
	Path string `mapstructure:"path"`
	// ResetOnCorrupt substitutes an empty snapshot when the file on disk is
	// unreadable or malformed instead of failing the request. This matches
	// the historical behavior of the service and discards the broken file on
	// the next write.
	ResetOnCorrupt bool `mapstructure:"reset_on_corrupt"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 3001)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("server.rate_limit_rps", 100)
	viper.SetDefault("server.rate_burst", 200)
	viper.SetDefault("storage.path", "data.json")
	viper.SetDefault("storage.reset_on_corrupt", true)
	viper.SetDefault("log.level", "info")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
