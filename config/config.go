// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/qyinm/pokedextui/pokeapi"
	"github.com/qyinm/pokedextui/types"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for pokedex.
type Config struct {
	APIBaseURL  string        `mapstructure:"api_base_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	UserAgent   string        `mapstructure:"user_agent"`
	Generation  int           `mapstructure:"generation"`
	LogLevel    string        `mapstructure:"log_level"`
	LogFile     string        `mapstructure:"log_file"`
	MCP         MCP           `mapstructure:"mcp"`
}

// MCP configures the MCP servers.
type MCP struct {
	Port               string        `mapstructure:"port"`
	AllowedOrigins     []string      `mapstructure:"allowed_origins"`
	Stateless          bool          `mapstructure:"stateless"`
	EnableAdmin        bool          `mapstructure:"enable_admin"`
	APIKey             string        `mapstructure:"api_key"`
	RPS                float64       `mapstructure:"rps"`
	Burst              int           `mapstructure:"burst"`
	SessionTimeout     time.Duration `mapstructure:"session_timeout"`
	CacheClearInterval time.Duration `mapstructure:"cache_clear_interval"`
}

// envBindings maps config keys to their environment variables. mcp.port
// also honours the conventional PORT.
var envBindings = map[string][]string{
	"api_base_url":             {"POKEDEX_API_BASE_URL"},
	"http_timeout":             {"POKEDEX_HTTP_TIMEOUT"},
	"user_agent":               {"POKEDEX_USER_AGENT"},
	"generation":               {"POKEDEX_GENERATION"},
	"log_level":                {"POKEDEX_LOG_LEVEL"},
	"log_file":                 {"POKEDEX_LOG_FILE"},
	"mcp.port":                 {"POKEDEX_MCP_PORT", "PORT"},
	"mcp.allowed_origins":      {"POKEDEX_MCP_ALLOWED_ORIGINS"},
	"mcp.stateless":            {"POKEDEX_MCP_STATELESS"},
	"mcp.enable_admin":         {"POKEDEX_MCP_ENABLE_ADMIN"},
	"mcp.api_key":              {"POKEDEX_MCP_API_KEY"},
	"mcp.rps":                  {"POKEDEX_MCP_RPS"},
	"mcp.burst":                {"POKEDEX_MCP_BURST"},
	"mcp.session_timeout":      {"POKEDEX_MCP_SESSION_TIMEOUT"},
	"mcp.cache_clear_interval": {"POKEDEX_MCP_CACHE_CLEAR_INTERVAL"},
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIBaseURL:  pokeapi.DefaultBaseURL,
		HTTPTimeout: pokeapi.DefaultTimeout,
		UserAgent:   pokeapi.DefaultUserAgent,
		Generation:  int(types.GenI),
		LogLevel:    "info",
		LogFile:     "",
		MCP: MCP{
			Port:               "8080",
			AllowedOrigins:     nil,
			Stateless:          false,
			EnableAdmin:        false,
			RPS:                2,
			Burst:              5,
			SessionTimeout:     15 * time.Minute,
			CacheClearInterval: 30 * time.Minute,
		},
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
// CLI flags are applied by the caller on the returned value.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("pokedex")

	def := Default()
	v.SetDefault("api_base_url", def.APIBaseURL)
	v.SetDefault("http_timeout", def.HTTPTimeout)
	v.SetDefault("user_agent", def.UserAgent)
	v.SetDefault("generation", def.Generation)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("mcp.port", def.MCP.Port)
	v.SetDefault("mcp.allowed_origins", []string{})
	v.SetDefault("mcp.stateless", def.MCP.Stateless)
	v.SetDefault("mcp.enable_admin", def.MCP.EnableAdmin)
	v.SetDefault("mcp.api_key", "")
	v.SetDefault("mcp.rps", def.MCP.RPS)
	v.SetDefault("mcp.burst", def.MCP.Burst)
	v.SetDefault("mcp.session_timeout", def.MCP.SessionTimeout)
	v.SetDefault("mcp.cache_clear_interval", def.MCP.CacheClearInterval)

	v.SetEnvPrefix("POKEDEX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the app cannot run with.
func (c *Config) Validate() error {
	if !types.Generation(c.Generation).Valid() {
		return fmt.Errorf("invalid generation %d: want 1-%d", c.Generation, len(types.AllGenerations))
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("invalid http_timeout %s", c.HTTPTimeout)
	}
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("api_base_url must not be empty")
	}
	return nil
}

func (c *Config) normalize() {
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	c.MCP.Port = strings.TrimSpace(c.MCP.Port)
	if c.MCP.Port == "" {
		c.MCP.Port = "8080"
	}
	c.MCP.AllowedOrigins = cleanList(c.MCP.AllowedOrigins)
	if c.MCP.RPS <= 0 {
		c.MCP.RPS = 2
	}
	if c.MCP.Burst <= 0 {
		c.MCP.Burst = 5
	}
}

// cleanList splits comma-joined items and drops blanks.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		for _, p := range strings.Split(item, ",") {
			if v := strings.TrimSpace(p); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/pokedex/pokedex.yml or $XDG_CONFIG_HOME/pokedex/pokedex.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pokedex", "pokedex.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pokedex", "pokedex.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "pokedex.yml"
}

// fileConfig is the on-disk shape. Durations are written as strings.
type fileConfig struct {
	APIBaseURL  string  `yaml:"api_base_url"`
	HTTPTimeout string  `yaml:"http_timeout"`
	UserAgent   string  `yaml:"user_agent"`
	Generation  int     `yaml:"generation"`
	LogLevel    string  `yaml:"log_level"`
	LogFile     string  `yaml:"log_file"`
	MCP         fileMCP `yaml:"mcp"`
}

type fileMCP struct {
	Port               string   `yaml:"port"`
	AllowedOrigins     []string `yaml:"allowed_origins"`
	Stateless          bool     `yaml:"stateless"`
	EnableAdmin        bool     `yaml:"enable_admin"`
	APIKey             string   `yaml:"api_key,omitempty"`
	RPS                float64  `yaml:"rps"`
	Burst              int      `yaml:"burst"`
	SessionTimeout     string   `yaml:"session_timeout"`
	CacheClearInterval string   `yaml:"cache_clear_interval"`
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	fc := fileConfig{
		APIBaseURL:  cfg.APIBaseURL,
		HTTPTimeout: cfg.HTTPTimeout.String(),
		UserAgent:   cfg.UserAgent,
		Generation:  cfg.Generation,
		LogLevel:    cfg.LogLevel,
		LogFile:     cfg.LogFile,
		MCP: fileMCP{
			Port:               cfg.MCP.Port,
			AllowedOrigins:     cfg.MCP.AllowedOrigins,
			Stateless:          cfg.MCP.Stateless,
			EnableAdmin:        cfg.MCP.EnableAdmin,
			APIKey:             cfg.MCP.APIKey,
			RPS:                cfg.MCP.RPS,
			Burst:              cfg.MCP.Burst,
			SessionTimeout:     cfg.MCP.SessionTimeout.String(),
			CacheClearInterval: cfg.MCP.CacheClearInterval.String(),
		},
	}
	data, err := yaml.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return writeFile(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return writeFile(ProjectPath(), cfg)
}

func writeFile(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
