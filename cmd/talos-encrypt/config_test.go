package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseJSONConfigSuccess(t *testing.T) {
	path := writeTempConfig(t, `{"input":"in.bin","output":"out.bin","key":"0x12345678","compress":true,"statsevery":5}`)

	var cfg Config
	if err := parseJSONConfig(&cfg, path); err != nil {
		t.Fatalf("parseJSONConfig returned error: %v", err)
	}

	if cfg.Input != "in.bin" || cfg.Output != "out.bin" {
		t.Fatalf("unexpected paths: %+v", cfg)
	}
	if cfg.Key != "0x12345678" {
		t.Fatalf("expected key to be populated")
	}
	if !cfg.Compress || cfg.StatsEvery != 5 {
		t.Fatalf("unexpected boolean/numeric fields: %+v", cfg)
	}
}

func TestParseJSONConfigMissingFile(t *testing.T) {
	var cfg Config
	missing := filepath.Join(t.TempDir(), "missing.json")
	if err := parseJSONConfig(&cfg, missing); err == nil {
		t.Fatal("parseJSONConfig expected error for missing file")
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}
