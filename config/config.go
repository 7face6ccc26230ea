// Package config builds the process-wide configuration once at startup.
//
// Values come from, in increasing precedence: defaults, an optional YAML
// config file, an optional .env file, the real environment and command
// line flags. Missing API keys never cause an error; the features that
// need them report themselves unavailable instead.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Keys understood by Load. Env vars are the upper-cased key.
const (
	KeyHost          = "host"
	KeyPort          = "port"
	KeyGeminiAPIKey  = "gemini_api_key"
	KeyCrewAPIKey    = "crew_api_key"
	KeyGeminiModel   = "gemini_model"
	KeyGeminiBaseURL = "gemini_base_url"
	KeyDebug         = "debug"
)

const (
	DefaultHost        = ""
	DefaultPort        = "8000"
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultEnvFile     = ".env"
)

// Config is read once and passed by pointer to whatever needs it.
type Config struct {
	Host          string
	Port          string
	GeminiAPIKey  string
	CrewAPIKey    string // accepted, not used by any feature yet
	GeminiModel   string
	GeminiBaseURL string
	Debug         bool
}

// Options controls where Load looks.
type Options struct {
	// ConfigFile is an optional YAML file. Empty means none.
	ConfigFile string
	// EnvFile is loaded into the environment if it exists. Empty means
	// DefaultEnvFile; "-" disables it.
	EnvFile string
	// Flags, when set, override everything else for the flag names
	// "host", "port", "gemini-model" and "debug".
	Flags *pflag.FlagSet
}

// Load builds a Config. It only fails for an unreadable explicit config
// file, a malformed .env file or a bad flag binding.
func Load(opts Options) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(KeyHost, DefaultHost)
	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeyGeminiAPIKey, "")
	v.SetDefault(KeyCrewAPIKey, "")
	v.SetDefault(KeyGeminiModel, DefaultGeminiModel)
	v.SetDefault(KeyGeminiBaseURL, "")
	v.SetDefault(KeyDebug, false)

	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// WEEKPLAN_DEBUG is accepted alongside DEBUG.
	if err := v.BindEnv(KeyDebug, "WEEKPLAN_DEBUG"); err != nil {
		return nil, fmt.Errorf("bind debug env: %w", err)
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", opts.ConfigFile, err)
		}
	}

	if opts.Flags != nil {
		for key, flag := range map[string]string{
			KeyHost:        "host",
			KeyPort:        "port",
			KeyGeminiModel: "gemini-model",
			KeyDebug:       "debug",
		} {
			f := opts.Flags.Lookup(flag)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	cfg := &Config{
		Host:          strings.TrimSpace(v.GetString(KeyHost)),
		Port:          strings.TrimSpace(v.GetString(KeyPort)),
		GeminiAPIKey:  strings.TrimSpace(v.GetString(KeyGeminiAPIKey)),
		CrewAPIKey:    strings.TrimSpace(v.GetString(KeyCrewAPIKey)),
		GeminiModel:   strings.TrimSpace(v.GetString(KeyGeminiModel)),
		GeminiBaseURL: strings.TrimSpace(v.GetString(KeyGeminiBaseURL)),
		Debug:         v.GetBool(KeyDebug),
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = DefaultGeminiModel
	}
	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "-" {
		return nil
	}
	if path == "" {
		path = DefaultEnvFile
	}
	// gotenv.Load keeps variables that are already set.
	if err := gotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// AdvisoryConfigured reports whether a Gemini key is present.
func (c *Config) AdvisoryConfigured() bool {
	return c != nil && c.GeminiAPIKey != ""
}

// CrewConfigured reports whether CREW_API_KEY was supplied.
func (c *Config) CrewConfigured() bool {
	return c != nil && c.CrewAPIKey != ""
}
