package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port" validate:"required,numeric"`
}

// ProviderConfig describes the transit schedule API.
// APIKey is only read from the environment and never serialized.
type ProviderConfig struct {
	BaseURL   string `yaml:"base_url" validate:"required,url"`
	APIKey    string `yaml:"-" validate:"required"`
	TimeoutMS int    `yaml:"timeout_ms" validate:"gte=0"`
}

type AnnouncementConfig struct {
	StopID      string `yaml:"stop_id" validate:"required"`
	Route       string `yaml:"route" validate:"required"`
	RouteName   string `yaml:"route_name" validate:"required"`
	Destination string `yaml:"destination" validate:"required"`
	Count       int    `yaml:"count" validate:"gte=1,lte=20"`
	Timezone    string `yaml:"timezone" validate:"required"`
	IntentName  string `yaml:"intent_name"`
}

type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Provider     ProviderConfig     `yaml:"provider"`
	Announcement AnnouncementConfig `yaml:"announcement"`

	location *time.Location
}

func Default() Config {
	return Config{
		Server: ServerConfig{Port: "8080"},
		Provider: ProviderConfig{
			BaseURL:   "https://api.winnipegtransit.com",
			TimeoutMS: 10000,
		},
		Announcement: AnnouncementConfig{
			StopID:      "61104",
			Route:       "BLUE",
			RouteName:   "Blue",
			Destination: "downtown",
			Count:       5,
			Timezone:    "America/Winnipeg",
			IntentName:  "GetNextBusesIntent",
		},
	}
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load resolves configuration once at process start: defaults, then the
// optional YAML file at path, then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("load config: parse %q: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("load config: read %q: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Server.Port = Get("PORT", cfg.Server.Port)
	cfg.Provider.APIKey = strings.TrimSpace(Get("TRANSIT_API_KEY", cfg.Provider.APIKey))
	cfg.Provider.BaseURL = Get("TRANSIT_BASE_URL", cfg.Provider.BaseURL)
	cfg.Announcement.StopID = Get("STOP_ID", cfg.Announcement.StopID)
	cfg.Announcement.Route = Get("ROUTE_NUMBER", cfg.Announcement.Route)
	cfg.Announcement.RouteName = Get("ROUTE_NAME", cfg.Announcement.RouteName)
	cfg.Announcement.Destination = Get("DESTINATION", cfg.Announcement.Destination)
	cfg.Announcement.Timezone = Get("TRANSIT_TIMEZONE", cfg.Announcement.Timezone)
	cfg.Announcement.IntentName = Get("INTENT_NAME", cfg.Announcement.IntentName)

	var err error
	if cfg.Provider.TimeoutMS, err = getInt("TRANSIT_TIMEOUT_MS", cfg.Provider.TimeoutMS); err != nil {
		return err
	}
	if cfg.Announcement.Count, err = getInt("DEPARTURE_COUNT", cfg.Announcement.Count); err != nil {
		return err
	}
	return nil
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

// Validate checks struct constraints and resolves the timezone.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	loc, err := time.LoadLocation(c.Announcement.Timezone)
	if err != nil {
		return fmt.Errorf("invalid config: timezone %q: %w", c.Announcement.Timezone, err)
	}
	c.location = loc

	return nil
}

// Location is the provider's local timezone, used for parsing offset-less
// timestamps and for speaking times.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Provider.TimeoutMS) * time.Millisecond
}
