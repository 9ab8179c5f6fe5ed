package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bryanchriswhite/swaybar-helper/internal/logger"
	"github.com/spf13/viper"
)

// DefaultPath returns the config file location under $XDG_CONFIG_HOME
// (or ~/.config).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "swaybar-helper", "config.yaml"), nil
}

// LoadFile overlays the YAML file at path onto base. When required is
// false a missing file leaves base untouched; any other read or decode
// failure is a ConfigurationError.
func LoadFile(base Config, path string, required bool) (Config, error) {
	log := logger.WithComponent("config")

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			log.Debug().Str("path", path).Msg("No config file, using defaults")
			return base, nil
		}
		return Config{}, &ConfigurationError{Source: path, Err: err}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, &ConfigurationError{Source: path, Err: err}
	}

	// viper converts numbers loosely (-5 wraps, 3.7 truncates, true is 1),
	// so percentages are checked as text first.
	for _, cat := range Categories {
		key := string(cat) + ".percentage"
		if !v.IsSet(key) {
			continue
		}
		if _, err := parsePercentage(fmt.Sprint(v.Get(key))); err != nil {
			return Config{}, &ConfigurationError{Source: path, Err: fmt.Errorf("%s: %w", key, err)}
		}
	}

	cfg := base.clone()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, &ConfigurationError{Source: path, Err: err}
	}

	log.Info().Str("path", path).Msg("Config loaded")
	return cfg, nil
}
