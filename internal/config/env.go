package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes the environment variables read by ApplyEnv.
const EnvPrefix = "VCLASSROOM_"

// ApplyEnv overrides cfg with the VCLASSROOM_* variables that are set. A
// non-empty envFile is loaded into the environment first; variables already
// set in the process win over the file.
func ApplyEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("error loading env file: %v", err)
		}
	}

	fields := map[string]*string{
		"LOG_FOLDER":     &cfg.LogFolder,
		"LOG_LEVEL":      &cfg.LogLevel,
		"LOG_FORMAT":     &cfg.LogFormat,
		"HISTORY_FILE":   &cfg.HistoryFile,
		"COLOR":          &cfg.Color,
		"JOURNAL_DRIVER": &cfg.JournalDriver,
		"JOURNAL_PATH":   &cfg.JournalPath,
	}
	for name, field := range fields {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*field = v
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "JOURNAL_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sJOURNAL_ENABLED %q: %v", EnvPrefix, v, err)
		}
		cfg.JournalEnabled = enabled
	}

	return cfg.Validate()
}
