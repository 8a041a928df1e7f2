package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"usergrip/internal/domain"
	"usergrip/internal/eventbus"
	"usergrip/internal/github"
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	LogFile string         `toml:"log_file"`
	Search  SearchSettings `toml:"search"`
	UI      UISettings     `toml:"ui"`
}

// SearchSettings configures the search pipeline and the remote client
type SearchSettings struct {
	BaseURL           string `toml:"base_url"`
	DebounceMS        int    `toml:"debounce_ms"`
	TimeoutSeconds    int    `toml:"timeout_seconds"`
	RequestsPerMinute int    `toml:"requests_per_minute"` // 0 disables throttling
	RateLimitHeader   string `toml:"rate_limit_header"`
	RateLimitMessage  string `toml:"rate_limit_message"`
	RateLimitHint     string `toml:"rate_limit_hint"` // %s receives the seconds left
	UserAgent         string `toml:"user_agent"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MinTermLength   int  `toml:"min_term_length"`
	LoginMaxWidth   int  `toml:"login_max_width"`
	ShowAccountType bool `toml:"show_account_type"`
}

// Debounce returns the debounce delay as a duration
func (s SearchSettings) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// Timeout returns the per-request timeout as a duration
func (s SearchSettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ClientOptions translates the settings into github client options
func (s SearchSettings) ClientOptions() []github.Option {
	return []github.Option{
		github.WithTimeout(s.Timeout()),
		github.WithRequestsPerMinute(s.RequestsPerMinute),
		github.WithUserAgent(s.UserAgent),
		github.WithRateLimitHeader(s.RateLimitHeader),
		github.WithRateLimitMessage(s.RateLimitMessage, s.RateLimitHint),
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		LogFile: "usergrip.log",
		Search: SearchSettings{
			BaseURL:           github.DefaultBaseURL,
			DebounceMS:        500,
			TimeoutSeconds:    10,
			RequestsPerMinute: 0,
			RateLimitHeader:   github.DefaultRateLimitHeader,
			RateLimitMessage:  github.DefaultRateLimitMessage,
			RateLimitHint:     github.DefaultRateLimitHint,
			UserAgent:         "usergrip",
		},
		UI: UISettings{
			MinTermLength:   3,
			LoginMaxWidth:   10,
			ShowAccountType: true,
		},
	}
}

// Validate checks the values that would otherwise fail at search time
func (c *Config) Validate() error {
	var errs []error
	if c.Search.DebounceMS < 0 {
		errs = append(errs, fmt.Errorf("search.debounce_ms must not be negative, got %d", c.Search.DebounceMS))
	}
	if c.Search.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("search.timeout_seconds must be positive, got %d", c.Search.TimeoutSeconds))
	}
	if c.Search.RequestsPerMinute < 0 {
		errs = append(errs, fmt.Errorf("search.requests_per_minute must not be negative, got %d", c.Search.RequestsPerMinute))
	}
	if u, err := url.Parse(c.Search.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("search.base_url is not an absolute URL: %q", c.Search.BaseURL))
	}
	if n := strings.Count(c.Search.RateLimitHint, "%s"); n != 1 || strings.Count(c.Search.RateLimitHint, "%") != 1 {
		errs = append(errs, fmt.Errorf("search.rate_limit_hint must contain exactly one %%s, got %q", c.Search.RateLimitHint))
	}
	if c.UI.MinTermLength < 0 {
		errs = append(errs, fmt.Errorf("ui.min_term_length must not be negative, got %d", c.UI.MinTermLength))
	}
	if c.UI.LoginMaxWidth < 4 {
		errs = append(errs, fmt.Errorf("ui.login_max_width must be at least 4, got %d", c.UI.LoginMaxWidth))
	}
	return errors.Join(errs...)
}

// Marshal renders the configuration as TOML
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/usergrip/config.toml or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "usergrip", "config.toml")
}

// NewConfigService creates a config service for path; empty means DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{
			Path:    cs.filePath,
			BaseURL: cfg.Search.BaseURL,
		})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from the
// file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := config.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadOrCreate loads the service's file, writing defaults first when it is missing
func LoadOrCreate(cs ConfigService) (*Config, error) {
	if _, err := os.Stat(cs.Path()); errors.Is(err, os.ErrNotExist) {
		if err := cs.Save(DefaultConfig()); err != nil {
			return nil, err
		}
	}
	return cs.Load()
}
