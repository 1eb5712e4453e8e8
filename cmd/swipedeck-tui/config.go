package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/decker502/swipedeck/pkg/config"
)

// cliConfig 终端版的启动配置，卡片堆参数仍然来自 deck-config 指向的文件
type cliConfig struct {
	DeckConfig string `mapstructure:"deck-config"`
	Cards      string `mapstructure:"cards"`
	FPS        int    `mapstructure:"fps"`
	LogFile    string `mapstructure:"log-file"`
}

func defaultCLIConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "swipedeck", "tui.yml"), nil
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("deck-config", config.DefaultDeckConfigPath)
	v.SetDefault("cards", config.DefaultCardSetPath)
	v.SetDefault("fps", 0)
	v.SetDefault("log-file", "")

	if configPath == "" {
		p, err := defaultCLIConfigPath()
		if err != nil {
			return cfg, err
		}
		configPath = p
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
