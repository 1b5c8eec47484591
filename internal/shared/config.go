package shared

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"golang.org/x/oauth2"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	API         APIConfig         `toml:"api"`
	Credentials CredentialsConfig `toml:"credentials"`
	Database    DatabaseConfig    `toml:"database"`
	Server      ServerConfig      `toml:"server"`
}

// APIConfig contains connection settings for the Sound Whiskers backend.
type APIConfig struct {
	BaseURL     string  `toml:"base_url"`
	AccessToken string  `toml:"access_token"`
	RateLimit   float64 `toml:"rate_limit"` // requests per second, 0 disables the limiter
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	Spotify SpotifyConfig `toml:"spotify"`
}

// SpotifyConfig contains Spotify API credentials for the export flow.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURI  string `toml:"redirect_uri"`
	AccessToken  string `toml:"access_token"`
	RefreshToken string `toml:"refresh_token"`
}

// Map converts the Spotify credentials into the map form consumed by services.NewSpotifyService.
func (s *SpotifyConfig) Map() map[string]string {
	return map[string]string{
		"client_id":     s.ClientID,
		"client_secret": s.ClientSecret,
		"redirect_uri":  s.RedirectURI,
		"access_token":  s.AccessToken,
		"refresh_token": s.RefreshToken,
	}
}

// Update stores the tokens from a completed OAuth exchange.
func (s *SpotifyConfig) Update(token *oauth2.Token) error {
	if token == nil || token.AccessToken == "" {
		return fmt.Errorf("%w: empty token", ErrInvalidArgument)
	}
	s.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		s.RefreshToken = token.RefreshToken
	}
	return nil
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// ServerConfig contains settings for the local OAuth callback server.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// SaveConfig writes the configuration back to the specified path as TOML.
func SaveConfig(path string, config *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
