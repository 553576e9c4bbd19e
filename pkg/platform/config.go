package platform

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "PLATFORM"

// DefaultSearchScope is used by ReadPathForFile when no scope is given.
const DefaultSearchScope = "wrf"

// Config holds the environment-derived settings of a Platform.
type Config struct {
	WritableDir  string `yaml:"writable_dir" envconfig:"WRITABLE_DIR"`
	ResourcesDir string `yaml:"resources_dir" envconfig:"RESOURCES_DIR"`
	SettingsDir  string `yaml:"settings_dir" envconfig:"SETTINGS_DIR"`

	MetaServerURL          string   `yaml:"metaserver_url" envconfig:"METASERVER_URL"`
	ResourcesMetaServerURL string   `yaml:"resources_metaserver_url" envconfig:"RESOURCES_METASERVER_URL"`
	DefaultURLsJSON        string   `yaml:"default_urls_json" envconfig:"DEFAULT_URLS_JSON"`
	FontNames              []string `yaml:"font_names" envconfig:"FONT_NAMES"`

	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// DefaultFontNames are the bundled font files, in load order.
var DefaultFontNames = []string{
	"01_dejavusans.ttf",
	"02_droidsans-fallback.ttf",
	"03_jomolhari-id-a3d.ttf",
	"04_padauk.ttf",
	"05_khmeros.ttf",
	"06_code2000.ttf",
	"07_roboto_medium.ttf",
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	fonts := make([]string, len(DefaultFontNames))
	copy(fonts, DefaultFontNames)
	return Config{
		DefaultURLsJSON: "{}",
		FontNames:       fonts,
		LogLevel:        "warn",
	}
}

// LoadConfig applies PLATFORM_* environment variables over the defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML file over the defaults, then applies the
// environment on top.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
