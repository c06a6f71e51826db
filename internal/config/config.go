// Package config loads the card server settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/youruser/playercard/internal/profile"
)

// Config is the top-level server configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Assets  AssetsConfig  `toml:"assets"`
	Fonts   FontsConfig   `toml:"fonts"`
	Profile ProfileConfig `toml:"profile"`
	Avatar  AvatarConfig  `toml:"avatar"`
	Log     LogConfig     `toml:"log"`
}

type ServerConfig struct {
	// Addr is the listen address. The PORT environment variable overrides
	// the port.
	Addr string `toml:"addr"`
	// ShareQR is a URL with {uid} encoded as a QR badge on each card.
	// Empty leaves the badge off.
	ShareQR string `toml:"share_qr"`
}

type AssetsConfig struct {
	// Dir is the asset pack root holding texture2d/ and suit/.
	Dir string `toml:"dir"`
	// EquipMap is a YAML file mapping equipment ids to sprite ids.
	EquipMap string `toml:"equip_map"`
	// Watch drops cached assets when files under Dir change.
	Watch bool `toml:"watch"`
}

type FontsConfig struct {
	// Path to a TTF/OTF font with CJK coverage. Empty uses the Go font.
	Path string `toml:"path"`
}

type ProfileConfig struct {
	BaseURL        string `toml:"base_url"`
	OSBaseURL      string `toml:"os_base_url"`
	Cookie         string `toml:"cookie"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	RetryMax       int    `toml:"retry_max"`
}

// Timeout returns TimeoutSeconds as a duration.
func (p ProfileConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

type AvatarConfig struct {
	// URLTemplate is an avatar URL with {uid} substituted. Empty serves the
	// default avatar from the asset pack.
	URLTemplate string `toml:"url_template"`
}

type LogConfig struct {
	// Path of the log file. Empty logs to stderr.
	Path string `toml:"path"`
	// Level is trace, debug, info, warn, error or fail.
	Level string `toml:"level"`
	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `toml:"max_size_mb"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Assets: AssetsConfig{Dir: "assets"},
		Profile: ProfileConfig{
			BaseURL:        profile.DefaultBaseURL,
			OSBaseURL:      profile.DefaultOSBaseURL,
			TimeoutSeconds: 12,
			RetryMax:       2,
		},
		Log: LogConfig{Level: "info", MaxSizeMB: 10},
	}
}

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fail": true,
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.ShareQR != "" && !strings.Contains(c.Server.ShareQR, "{uid}") {
		return fmt.Errorf("server.share_qr %q has no {uid} placeholder", c.Server.ShareQR)
	}
	if c.Assets.Dir == "" {
		return fmt.Errorf("assets.dir must not be empty")
	}
	if c.Profile.TimeoutSeconds <= 0 {
		return fmt.Errorf("profile.timeout_seconds must be > 0, got %d", c.Profile.TimeoutSeconds)
	}
	if c.Profile.RetryMax < 0 {
		return fmt.Errorf("profile.retry_max must be >= 0, got %d", c.Profile.RetryMax)
	}
	if c.Avatar.URLTemplate != "" && !strings.Contains(c.Avatar.URLTemplate, "{uid}") {
		return fmt.Errorf("avatar.url_template %q has no {uid} placeholder", c.Avatar.URLTemplate)
	}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be trace, debug, info, warn, error, or fail", c.Log.Level)
	}
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be > 0, got %d", c.Log.MaxSizeMB)
	}
	return nil
}

// Load reads the configuration file at path. A missing file yields
// DefaultConfig. Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// ListenAddr returns Server.Addr with the port replaced by port when port is
// not empty.
func (c *Config) ListenAddr(port string) string {
	if port == "" {
		return c.Server.Addr
	}
	host := c.Server.Addr
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}
	return host + ":" + port
}
