package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRequiresPortAndNodeID(t *testing.T) {
	if _, err := Load([]string{"--host", "localhost"}); err == nil {
		t.Fatal("expected validation error when port/node-id missing")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load([]string{"--port", "9000", "--node-id", "1"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "localhost" || cfg.Partitions != 3 || cfg.DataDir != "data" || cfg.Replication != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Addr() != "localhost:9000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.LogPath() != "logs/worker_1.log" {
		t.Errorf("LogPath() = %q", cfg.LogPath())
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("WORKER_PORT", "1111")
	cfg, err := Load([]string{"--port", "2222", "--node-id", "1"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 2222 {
		t.Fatalf("flag should win over env, got port %d", cfg.Port)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "worker.yaml")
	if err := os.WriteFile(path, []byte("partitions: 5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("WORKER_PARTITIONS", "7")

	cfg, err := Load([]string{"--port", "9000", "--node-id", "1", "--config", path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Partitions != 7 {
		t.Fatalf("expected env to override file, got partitions=%d", cfg.Partitions)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "worker.yaml")
	content := "host: 0.0.0.0\nport: 4000\nnode_id: 2\npartitions: 4\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load([]string{"--config", path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "0.0.0.0" || cfg.Port != 4000 || cfg.NodeID != 2 || cfg.Partitions != 4 || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config from file: %+v", cfg)
	}
}
