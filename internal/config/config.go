// Package config loads genko settings from defaults, an optional
// .genko.yaml file and GENKO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "GENKO"
	FileName  = ".genko" // .yaml is implicit

	// ConfigPathEnv names an extra directory searched first for FileName.
	ConfigPathEnv = "GENKO_CONFIG_PATH"
)

// Config is the resolved configuration.
type Config struct {
	// Path is the draft store directory, with ~ expanded.
	Path string
	Cols int
	Rows int

	// Widen converts narrow composition input to fullwidth.
	Widen bool

	LogLevel string
	LogFile  string

	// File is the config file that was read, if any.
	File string
}

// Load resolves the configuration. A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.genko")
	v.SetDefault("cols", 20)
	v.SetDefault("rows", 20)
	v.SetDefault("widen", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigName(FileName)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// Nested keys read from GENKO_LOG_LEVEL / GENKO_LOG_FILE.
	_ = v.BindEnv("log.level", "GENKO_LOG_LEVEL")
	_ = v.BindEnv("log.file", "GENKO_LOG_FILE")

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return Config{}, fmt.Errorf("config: expand path: %w", err)
	}

	cfg := Config{
		Path:     path,
		Cols:     v.GetInt("cols"),
		Rows:     v.GetInt("rows"),
		Widen:    v.GetBool("widen"),
		LogLevel: v.GetString("log.level"),
		LogFile:  v.GetString("log.file"),
		File:     v.ConfigFileUsed(),
	}
	if cfg.LogFile != "" {
		if cfg.LogFile, err = homedir.Expand(cfg.LogFile); err != nil {
			return Config{}, fmt.Errorf("config: expand log.file: %w", err)
		}
	}
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		return Config{}, fmt.Errorf("config: grid must be at least 1x1, got %dx%d", cfg.Cols, cfg.Rows)
	}
	return cfg, nil
}
