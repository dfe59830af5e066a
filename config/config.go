package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI    UIConfig
	Prefs PrefsConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Lang is used when neither the flag nor the stored preference picks one.
	Lang string
	// ColorMode is the default for an empty preference store.
	ColorMode     string        `mapstructure:"color_mode"`
	ToastDuration time.Duration `mapstructure:"toast_duration"`
	MaxToasts     int           `mapstructure:"max_toasts"`
	// HandlerDelay is how long the demo dialog handlers wait before resolving.
	HandlerDelay time.Duration `mapstructure:"handler_delay"`
}

// PrefsConfig locates the preference file.
type PrefsConfig struct {
	Dir string
	// ReadOnly keeps preference changes in memory only.
	ReadOnly bool `mapstructure:"read_only"`
}

// Load reads configuration from file and env. A .env file in the working
// directory is loaded first. Env var overrides use prefix MSGBOX_. path may
// be empty, in which case $MSGBOX_CONFIG and then ~/.config/msgbox/config.toml
// are tried.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("ui.lang", os.Getenv("LANG"))
	v.SetDefault("ui.color_mode", "system")
	v.SetDefault("ui.toast_duration", 3*time.Second)
	v.SetDefault("ui.max_toasts", 5)
	v.SetDefault("ui.handler_delay", 1500*time.Millisecond)
	v.SetDefault("prefs.dir", "")
	v.SetDefault("prefs.read_only", false)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("MSGBOX_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "msgbox"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MSGBOX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// an explicit file must exist; the default location is optional
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.MaxToasts <= 0 {
		c.UI.MaxToasts = 5
	}
	if c.UI.ToastDuration <= 0 {
		c.UI.ToastDuration = 3 * time.Second
	}
	if c.UI.HandlerDelay < 0 {
		c.UI.HandlerDelay = 0
	}
	return c, nil
}
