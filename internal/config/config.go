package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is a worker's fully resolved startup configuration.
type Config struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	NodeID      int    `yaml:"node_id"`
	DataDir     string `yaml:"data_dir"`
	Partitions  int    `yaml:"partitions"`
	Replication int    `yaml:"replication"`
	LogLevel    string `yaml:"log_level"`
}

// Defaults mirrors the original worker's implicit conventions: three
// partitions, no replication, data laid out under "data/", "info"-level
// logging.
func Defaults() Config {
	return Config{
		Host:        "localhost",
		DataDir:     "data",
		Partitions:  3,
		Replication: 1,
		LogLevel:    "info",
	}
}

// Addr formats the host:port pair net.Listen expects.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogPath is the per-node log file spec §6 names: logs/worker_{N}.log.
func (c Config) LogPath() string {
	return fmt.Sprintf("logs/worker_%d.log", c.NodeID)
}

// Validate enforces the required fields spec §6's CLI table names: port
// and node-id must be supplied and positive, partitions must be positive.
func (c Config) Validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("--port is required and must be positive")
	}
	if c.NodeID <= 0 {
		return fmt.Errorf("--node-id is required and must be positive")
	}
	if c.Partitions <= 0 {
		return fmt.Errorf("--partitions must be positive")
	}
	if c.Replication <= 0 {
		return fmt.Errorf("--replication must be positive")
	}
	if c.Host == "" {
		return fmt.Errorf("--host must not be empty")
	}
	return nil
}

// Load resolves configuration from (in ascending precedence) built-in
// defaults, an optional YAML file, environment variables, then CLI flags
// parsed out of args (excluding the program name, i.e. os.Args[1:]).
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("worker", flag.ContinueOnError)
	host := fs.String("host", "", "listen host")
	port := fs.Int("port", 0, "listen port (required)")
	nodeID := fs.Int("node-id", 0, "node identifier (required)")
	dataDir := fs.String("data-dir", "", "root data directory")
	partitions := fs.Int("partitions", 0, "table partition count")
	replication := fs.Int("replication", 0, "replication factor")
	logLevel := fs.String("log-level", "", "zerolog level name")
	configPath := fs.String("config", "", "optional YAML config file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Host = *host
		case "port":
			cfg.Port = *port
		case "node-id":
			cfg.NodeID = *nodeID
		case "data-dir":
			cfg.DataDir = *dataDir
		case "partitions":
			cfg.Partitions = *partitions
		case "replication":
			cfg.Replication = *replication
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides cfg with WORKER_-prefixed environment variables, the
// way the teacher's cmd/node reads NODE_ID/NODE_LISTEN/etc, generalized to
// this worker's field set.
func applyEnv(cfg *Config) {
	if v := os.Getenv("WORKER_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("WORKER_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}
	if v := os.Getenv("WORKER_NODE_ID"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.NodeID = n
		}
	}
	if v := os.Getenv("WORKER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("WORKER_PARTITIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Partitions = n
		}
	}
	if v := os.Getenv("WORKER_REPLICATION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Replication = n
		}
	}
	if v := os.Getenv("WORKER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
