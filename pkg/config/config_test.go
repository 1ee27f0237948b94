package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "environment: test\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Analysis.Window != 60 {
		t.Fatalf("window = %d, want 60", cfg.Analysis.Window)
	}
	if cfg.Sink.Backend != "none" {
		t.Fatalf("sink = %q, want none", cfg.Sink.Backend)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Fatalf("cache ttl = %v, want 5m", cfg.Cache.TTL)
	}
}

func TestLoadRejectsInvalidSink(t *testing.T) {
	path := writeConfig(t, "environment: test\nsink:\n  backend: rabbitmq\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown sink backend")
	}
}

func TestLoadRejectsKafkaSinkWithoutBrokers(t *testing.T) {
	path := writeConfig(t, "environment: test\nsink:\n  backend: kafka\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for kafka sink without brokers")
	}
}

func TestLoadRejectsTinyWindow(t *testing.T) {
	path := writeConfig(t, "environment: test\nanalysis:\n  window: 1\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for window < 2")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, "environment: test\n")
	t.Setenv("PAIRLENS_PORT", "9191")
	t.Setenv("PAIRLENS_SINK", "kafka")
	t.Setenv("PAIRLENS_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("PAIRLENS_KAFKA_TOPIC", "signals")

	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("LoadWithEnv failed: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Fatalf("port = %d, want 9191", cfg.Server.Port)
	}
	if cfg.Sink.Backend != "kafka" {
		t.Fatalf("sink = %q, want kafka", cfg.Sink.Backend)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[0] != "k1:9092" {
		t.Fatalf("brokers = %v", cfg.Kafka.Brokers)
	}
	if cfg.Kafka.Topic != "signals" {
		t.Fatalf("topic = %q, want signals", cfg.Kafka.Topic)
	}
}
