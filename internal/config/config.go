package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for ttrack, stored in ~/.ttrack/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	Categories []string    `json:"categories"`
	Relay      RelayConfig `json:"relay"`
}

// RelayConfig holds the upload relay settings: where to post each log
// entry, how the form fields are named on the receiving side, and how
// long to pause between consecutive posts.
type RelayConfig struct {
	// Endpoint is the form-ingestion URL each entry is posted to.
	// Leave empty to disable the send command.
	Endpoint string `json:"endpoint"`
	// DelayMS is the pause between consecutive posts, in milliseconds.
	DelayMS int `json:"delay_ms"`
	// Fields maps the relay's form field names.
	Fields RelayFields `json:"fields"`
	// Auth configures optional OAuth2 device-code authentication for
	// endpoints that require a bearer token. Leave ClientID empty for
	// anonymous endpoints.
	Auth AuthConfig `json:"auth"`
}

// RelayFields names the form fields the receiving endpoint expects.
type RelayFields struct {
	User     string `json:"user"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Minutes  string `json:"minutes"`
}

// AuthConfig holds OAuth2 device code flow settings for the relay.
type AuthConfig struct {
	ClientID      string   `json:"client_id"`
	DeviceAuthURL string   `json:"device_auth_url"`
	TokenURL      string   `json:"token_url"`
	Scopes        []string `json:"scopes"`
}

// DefaultCategories is the built-in category set, in display order.
// Categories listed here define the summary rows; entries recorded under
// other labels still show in the day log but are excluded from totals.
var DefaultCategories = []string{
	"SiteVisit",
	"Estimate",
	"Travel",
	"Office",
	"Break",
}

// DefaultRelayDelayMS is the pause between consecutive relay posts.
const DefaultRelayDelayMS = 400

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Categories: append([]string(nil), DefaultCategories...),
		Relay: RelayConfig{
			DelayMS: DefaultRelayDelayMS,
			Fields: RelayFields{
				User:     "entry.user",
				Date:     "entry.date",
				Category: "entry.category",
				Start:    "entry.start",
				End:      "entry.end",
				Minutes:  "entry.minutes",
			},
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// ttrack configuration – ~/.ttrack/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise ttrack behaviour.
{
  // Category labels, in summary display order. Only categories listed here
  // contribute to day totals; other labels still appear in the day log.
  "categories": ["SiteVisit", "Estimate", "Travel", "Office", "Break"],

  // ── Upload relay ─────────────────────────────────────────────────────────
  "relay": {
    // Form-ingestion URL each log entry is posted to, e.g. a form backend
    // or sheet-ingestion webhook. Leave empty to disable "ttrack send".
    "endpoint": "",

    // Pause between consecutive posts, in milliseconds, so the receiving
    // endpoint is not flooded.
    "delay_ms": 400,

    // Form field names the receiving endpoint expects.
    "fields": {
      "user": "entry.user",
      "date": "entry.date",
      "category": "entry.category",
      "start": "entry.start",
      "end": "entry.end",
      "minutes": "entry.minutes"
    },

    // OAuth2 device code flow for endpoints that require a bearer token.
    // Leave client_id empty for anonymous endpoints.
    "auth": {
      "client_id": "",
      "device_auth_url": "",
      "token_url": "",
      "scopes": []
    }
  }
}
`

// configFilePath returns the path to ~/.ttrack/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".ttrack", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.ttrack/config.json, creating it with annotated defaults on
// first run. Lines starting with // are treated as comments and stripped
// before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	return cfg, nil
}

// Parse decodes annotated-JSON config data, backfilling zero-value fields
// with built-in defaults so callers always get a usable Config even if the
// user only partially fills in the file.
func Parse(data []byte) (Config, error) {
	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), err
	}

	def := defaultConfig()
	if len(cfg.Categories) == 0 {
		cfg.Categories = def.Categories
	}
	if cfg.Relay.DelayMS <= 0 {
		cfg.Relay.DelayMS = def.Relay.DelayMS
	}
	if cfg.Relay.Fields == (RelayFields{}) {
		cfg.Relay.Fields = def.Relay.Fields
	}
	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
