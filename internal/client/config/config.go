package config

import "time"

// Mode selects where the client's external operations go.
const (
	ModeSimulated = "simulated"
	ModeOnline    = "online"
)

// Config holds runtime settings for the TruthLens client.
//
// Fields:
//   - ServerEndpointURL: base URL of the backend HTTP API (online mode).
//   - Mode: "simulated" runs against the built-in in-process backend,
//     "online" talks to ServerEndpointURL.
//   - DatabasePath: path of the local SQLite database holding the session.
//   - RequestTimeout: per-request timeout for backend calls.
//   - SimulatedDelay: artificial latency of simulated operations.
type Config struct {
	ServerEndpointURL string
	Mode              string
	DatabasePath      string
	RequestTimeout    time.Duration
	SimulatedDelay    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointURL = "http://127.0.0.1:8080"
	c.Mode = ModeSimulated
	c.DatabasePath = "truthlens.db"
	c.RequestTimeout = 10 * time.Second
	c.SimulatedDelay = 600 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
