package runtimeconfig

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys read by ApplyEnv. Content locations are deliberately not
// among them: builds always use the configured layout.
const (
	EnvLogProvider  = "PORTFOLIO_LOG_PROVIDER"
	EnvLogLevel     = "PORTFOLIO_LOG_LEVEL"
	EnvLogFormat    = "PORTFOLIO_LOG_FORMAT"
	EnvLogAddSource = "PORTFOLIO_LOG_ADD_SOURCE"
	EnvLogFocus     = "PORTFOLIO_LOG_FOCUS"
)

// LoadDotEnv loads the given .env files (default ".env") into the process
// environment. Missing files are ignored; existing variables win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ApplyEnv overlays logging settings found through lookup onto cfg. A nil
// lookup reads the process environment.
func ApplyEnv(cfg Config, lookup func(string) (string, bool)) Config {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvLogProvider); ok && strings.TrimSpace(v) != "" {
		cfg.Logging.Provider = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.Logging.Level = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogFormat); ok && strings.TrimSpace(v) != "" {
		cfg.Logging.Format = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogAddSource); ok {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.Logging.AddSource = parsed
		}
	}
	if v, ok := lookup(EnvLogFocus); ok {
		var focus []string
		for _, name := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				focus = append(focus, trimmed)
			}
		}
		cfg.Logging.Focus = focus
	}
	return cfg
}
