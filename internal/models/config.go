package models

import "time"

type Config struct {
	FancyScreen bool           `json:"fancy_screen"`
	Source      SourceConfig   `json:"source"`
	Stats       StatsConfig    `json:"stats"`
	Database    DatabaseConfig `json:"database"`
	HTTP        HTTPConfig     `json:"http"`
}

type SourceConfig struct {
	URL     string   `json:"url" validate:"required,url"`
	Timeout Duration `json:"timeout"`
}

type StatsConfig struct {
	// Deterministic seeds each entity's stats from its name, so a re-fetch
	// yields the same numbers.
	Deterministic bool `json:"deterministic"`
}

// DatabaseConfig is optional. An empty DBType disables the offline snapshot.
type DatabaseConfig struct {
	DBType           string `json:"db_type" validate:"omitempty,oneof=sqlite postgres mysql"`
	ConnectionString string `json:"connection_string" validate:"required_with=DBType"`
}

func (c DatabaseConfig) Enabled() bool {
	return c.DBType != ""
}

type HTTPConfig struct {
	Port          int    `json:"port" validate:"required,min=1,max=65535"`
	ListeningAddr string `json:"listening_addr" validate:"required"`
}

// Duration reads and writes durations as "30s" style strings.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		d.Duration = 0
		return nil
	}

	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

const (
	DefaultSourceURL = "https://digimon-api.vercel.app/api/digimon"
	DefaultTimeout   = 30 * time.Second
	DefaultAddr      = "0.0.0.0"
	DefaultPort      = 8080
)

// DefaultConfig is what the setup wizard starts from.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			URL:     DefaultSourceURL,
			Timeout: Duration{DefaultTimeout},
		},
		HTTP: HTTPConfig{
			ListeningAddr: DefaultAddr,
			Port:          DefaultPort,
		},
	}
}

// ApplyDefaults fills zero values left by hand-edited config files.
func (c *Config) ApplyDefaults() {
	if c.Source.URL == "" {
		c.Source.URL = DefaultSourceURL
	}
	if c.HTTP.ListeningAddr == "" {
		c.HTTP.ListeningAddr = DefaultAddr
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = DefaultPort
	}
}
