package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all configuration for the application
type Config struct {
	Project      string   `koanf:"project"`
	Output       string   `koanf:"output"`
	ScanRoot     string   `koanf:"scan-root"`
	Drivers      []string `koanf:"drivers"`
	CacheWrapper string   `koanf:"cache-wrapper"`
	StrictSource bool     `koanf:"strict-source"`
	Watch        bool     `koanf:"watch"`
	Serve        bool     `koanf:"serve"`
	Port         int      `koanf:"port"`
	Verbosity    string   `koanf:"verbosity"`
	VerboseCnt   int      `koanf:"verbose"`
	LogJSON      bool     `koanf:"log-json"`
}

// Load loads configuration from defaults, config file, environment variables, and flags.
// Priority: Flags > Env > Config File > Defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"output":        "compile_commands.json",
		"scan-root":     ".",
		"drivers":       []string{},
		"cache-wrapper": "ccache",
		"strict-source": false,
		"watch":         false,
		"serve":         false,
		"port":          8080,
		"verbosity":     "",
		"verbose":       0,
		"log-json":      false,
	}
	if err := k.Load(makeMapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config File (optional) - buildlog2cc.toml
	// We ignore errors here as the file might not exist
	_ = k.Load(file.Provider("buildlog2cc.toml"), toml.Parser())

	// 3. Environment Variables
	// Prefix: BUILDLOG2CC_ (e.g., BUILDLOG2CC_PORT=9090)
	if err := k.Load(env.Provider("BUILDLOG2CC_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "BUILDLOG2CC_")), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
