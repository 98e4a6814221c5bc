package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// SettingsFileName is looked up (without extension) in the config directory.
const SettingsFileName = "clawd"

// Settings holds runtime options read from clawd.json and CLAWD_* environment variables
type Settings struct {
	LogLevel         string `json:"logLevel" mapstructure:"logLevel"`
	ContentDir       string `json:"contentDir" mapstructure:"contentDir"`
	ReducedMotion    bool   `json:"reducedMotion" mapstructure:"reducedMotion"`
	MinViewportWidth int    `json:"minViewportWidth" mapstructure:"minViewportWidth"`
	Theme            string `json:"theme" mapstructure:"theme"`
	WindowWidth      int    `json:"windowWidth" mapstructure:"windowWidth"`
	WindowHeight     int    `json:"windowHeight" mapstructure:"windowHeight"`
	Seed             uint64 `json:"seed" mapstructure:"seed"` // 0 picks a time based seed
	RecentPosts      int    `json:"recentPosts" mapstructure:"recentPosts"`
	ShowFooter       bool   `json:"showFooter" mapstructure:"showFooter"`
	PersistScore     bool   `json:"persistScore" mapstructure:"persistScore"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("contentDir", "./content/posts")
	v.SetDefault("reducedMotion", false)
	v.SetDefault("minViewportWidth", 480)
	v.SetDefault("theme", "dark")
	v.SetDefault("windowWidth", C.Width)
	v.SetDefault("windowHeight", C.Height)
	v.SetDefault("seed", 0)
	v.SetDefault("recentPosts", 3)
	v.SetDefault("showFooter", true)
	v.SetDefault("persistScore", true)
}

// LoadSettings reads settings from configDir. A missing file is not an error;
// defaults and environment overrides still apply.
func LoadSettings(configDir string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(SettingsFileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("CLAWD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

// DefaultSettings returns the built-in settings with environment overrides applied.
func DefaultSettings() *Settings {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("CLAWD")
	v.AutomaticEnv()

	s, err := decode(v)
	if err != nil {
		// Only a malformed environment override gets here.
		v = viper.New()
		setDefaults(v)
		s, _ = decode(v)
	}
	return s
}

func decode(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding settings: %w", err)
	}
	return &s, nil
}

// ThemeColors returns the configured theme, falling back to dark for unknown names.
func (s *Settings) ThemeColors() ThemeConfig {
	return (&Theme{Name: s.Theme}).Colors()
}

// MascotEnabled reports whether the footer mascot should run for a viewport of the given width.
func (s *Settings) MascotEnabled(viewportWidth int) bool {
	if s.ReducedMotion {
		return false
	}
	return viewportWidth >= s.MinViewportWidth
}
