package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rplrewind/rewind/internal/model"
)

// cliConfig holds everything the yearbook viewer reads from config, env and flags.
type cliConfig struct {
	Cooldown           time.Duration `mapstructure:"cooldown"`
	WheelThreshold     float64       `mapstructure:"wheel-threshold"`
	WheelDelta         float64       `mapstructure:"wheel-delta"`
	ReverseScrollWheel bool          `mapstructure:"reverse-scroll-wheel"`
	Skin               string        `mapstructure:"skin"`
	SkinDir            string        `mapstructure:"skin-dir"`
	Content            string        `mapstructure:"content"`
	WatchSkin          bool          `mapstructure:"watch-skin"`
	LogFile            string        `mapstructure:"log-file"`
	LogLevel           string        `mapstructure:"log-level"`
	LogFormat          string        `mapstructure:"log-format"`
}

// boundFlags are the command line flags that override config keys of the same name.
var boundFlags = []string{"content", "skin", "log-level"}

func loadCLIConfig(configPath string, flags *pflag.FlagSet) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("REWIND")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("cooldown", model.DefaultCooldown)
	v.SetDefault("wheel-threshold", model.DefaultWheelThreshold)
	v.SetDefault("wheel-delta", model.DefaultWheelDelta)
	v.SetDefault("reverse-scroll-wheel", false)
	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("skin-dir", filepath.Join(home, ".config", "rewind", "skins"))
	v.SetDefault("content", "")
	v.SetDefault("watch-skin", true)
	v.SetDefault("log-file", filepath.Join(home, ".local", "state", "rewind", "rewind.log"))
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("log-format", model.DefaultLogFormat)

	if flags != nil {
		for _, name := range boundFlags {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return cfg, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "rewind", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, nil
}
