// Package config resolves node configuration from defaults, an optional
// YAML file, and the environment — in that order, later sources winning.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Timeouts are the per-operation RPC deadlines.
type Timeouts struct {
	Ping          time.Duration `yaml:"ping"`
	FindSuccessor time.Duration `yaml:"find_successor"`
	Exists        time.Duration `yaml:"exists"`
	Load          time.Duration `yaml:"load"`
	Save          time.Duration `yaml:"save"`
	Delete        time.Duration `yaml:"delete"`
	Stabilize     time.Duration `yaml:"stabilize"`
	Replicate     time.Duration `yaml:"replicate"`
}

// Config holds every knob of a node.
type Config struct {
	// Ring geometry and replication.
	MBits        int `yaml:"m_bits"`
	ReplicationK int `yaml:"replication_k"`

	// Background worker cadence.
	StabilizeInterval   time.Duration `yaml:"stabilize_interval"`
	ReplicationInterval time.Duration `yaml:"replication_interval"`
	DiscoveryInterval   time.Duration `yaml:"discovery_interval"`
	TimerInterval       time.Duration `yaml:"timer_interval"`

	// Addressing and discovery.
	DefaultPort  int    `yaml:"default_port"`
	HTTPPort     int    `yaml:"http_port"`
	NetworkAlias string `yaml:"network_alias"`
	NodeHost     string `yaml:"node_host"`

	// Local paths.
	DataDir  string `yaml:"data_dir"`
	CacheDir string `yaml:"cache_dir"`

	// Transport security.
	UseTLS     bool   `yaml:"use_tls"`
	CACertPath string `yaml:"ca_cert_path"`
	CertPath   string `yaml:"ssl_cert_path"`
	KeyPath    string `yaml:"ssl_key_path"`

	// Application gateway.
	JWTSecret string `yaml:"jwt_secret"`

	Timeouts Timeouts `yaml:"timeouts"`
}

// Default returns the baseline configuration for a small deployment.
func Default() *Config {
	return &Config{
		MBits:               8,
		ReplicationK:        3,
		StabilizeInterval:   3 * time.Second,
		ReplicationInterval: 3 * time.Second,
		DiscoveryInterval:   5 * time.Second,
		TimerInterval:       5 * time.Second,
		DefaultPort:         50051,
		HTTPPort:            8080,
		NetworkAlias:        "socialnet_server",
		DataDir:             "data",
		CacheDir:            "cache",
		JWTSecret:           "socialnet-dev-secret",
		Timeouts: Timeouts{
			Ping:          2 * time.Second,
			FindSuccessor: 6 * time.Second,
			Exists:        9 * time.Second,
			Load:          12 * time.Second,
			Save:          15 * time.Second,
			Delete:        9 * time.Second,
			Stabilize:     9 * time.Second,
			Replicate:     12 * time.Second,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// non-empty), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.MBits < 1 || cfg.MBits > 64 {
		return nil, fmt.Errorf("M_BITS must be in [1, 64], got %d", cfg.MBits)
	}
	if cfg.ReplicationK < 1 {
		return nil, fmt.Errorf("REPLICATION_K must be >= 1, got %d", cfg.ReplicationK)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	envInt("M_BITS", &c.MBits)
	envInt("REPLICATION_K", &c.ReplicationK)
	envSeconds("STABILIZE_INTERVAL", &c.StabilizeInterval)
	envSeconds("REPLICATION_INTERVAL", &c.ReplicationInterval)
	envSeconds("DISCOVERY_INTERVAL", &c.DiscoveryInterval)
	envSeconds("TIMER_INTERVAL", &c.TimerInterval)
	envInt("DEFAULT_PORT", &c.DefaultPort)
	envInt("HTTP_PORT", &c.HTTPPort)
	envString("NETWORK_ALIAS", &c.NetworkAlias)
	envString("NODE_HOST", &c.NodeHost)
	envString("DATA_DIR", &c.DataDir)
	envString("CACHE_DIR", &c.CacheDir)
	envBool("USE_TLS", &c.UseTLS)
	envString("CA_CERT_PATH", &c.CACertPath)
	envString("SSL_CERT_PATH", &c.CertPath)
	envString("SSL_KEY_PATH", &c.KeyPath)
	envString("JWT_SECRET", &c.JWTSecret)
}

func envString(name string, dst *string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func envInt(name string, dst *int) {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// envSeconds reads an interval expressed in whole seconds.
func envSeconds(name string, dst *time.Duration) {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = time.Duration(n) * time.Second
		}
	}
}

func envBool(name string, dst *bool) {
	if v := os.Getenv(name); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
