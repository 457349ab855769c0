package config

import (
	"strings"

	"github.com/spf13/viper"
)

// GB is the decimal gigabyte used for all user-facing space figures.
const GB = 1_000_000_000

// DefaultRecommendedFreeBytes is the free space below which the picker
// flags a location as tight. It warns only; it never blocks confirmation.
const DefaultRecommendedFreeBytes = 10 * GB

type Config struct {
	// Application identity; used for the default directory name.
	AppName string

	// Overrides
	DataDir       string // command-line override, skips interaction entirely
	ChooseDataDir bool   // force the interactive session even if the directory exists

	// Behavior
	NonInteractive       bool
	RecommendedFreeBytes uint64

	// Logging
	LogFile string
}

func NewConfig() *Config {
	// Set default values for viper
	viper.SetDefault("app_name", "datadir-picker")
	viper.SetDefault("datadir", "")
	viper.SetDefault("choose_datadir", false)
	viper.SetDefault("non_interactive", false)
	viper.SetDefault("min_free_gb", DefaultRecommendedFreeBytes/GB)
	viper.SetDefault("log_file", "")

	cfg := &Config{
		AppName:              strings.TrimSpace(viper.GetString("app_name")),
		DataDir:              viper.GetString("datadir"),
		ChooseDataDir:        viper.GetBool("choose_datadir"),
		NonInteractive:       viper.GetBool("non_interactive"),
		RecommendedFreeBytes: viper.GetUint64("min_free_gb") * GB,
		LogFile:              viper.GetString("log_file"),
	}

	if cfg.AppName == "" {
		cfg.AppName = "datadir-picker"
	}

	// When the flag is explicitly set to 0, fall back to the default.
	if cfg.RecommendedFreeBytes == 0 {
		cfg.RecommendedFreeBytes = DefaultRecommendedFreeBytes
	}

	return cfg
}
