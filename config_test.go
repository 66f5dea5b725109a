package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDeserializeFromFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	filename := filepath.Join(t.TempDir(), "planner.yaml")
	data := `
server:
  listenAddress: ":9000"
  routeRateLimit: 25
search:
  maxExpansions: 500
`
	if err := os.WriteFile(filename, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := defaultConfig()
	if err := (&cfg).DeserializeFromFile(filename); err != nil {
		t.Fatalf("DeserializeFromFile: %v", err)
	}

	if cfg.Server.ListenAddress != ":9000" {
		t.Errorf("expected :9000, got %q", cfg.Server.ListenAddress)
	}
	if cfg.Server.RouteRateLimit != 25 {
		t.Errorf("expected rate 25, got %v", cfg.Server.RouteRateLimit)
	}
	if cfg.Search.MaxExpansions != 500 {
		t.Errorf("expected 500 expansions, got %d", cfg.Search.MaxExpansions)
	}
	if !cfg.Server.EnableCORS {
		t.Errorf("default enableCORS lost")
	}
	if cfg.Mesh.SaveFile != "mesh.json" {
		t.Errorf("default saveFile lost: %q", cfg.Mesh.SaveFile)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestSerializeToFileWritesLoadableConfig(t *testing.T) {
	t.Parallel()

	filename := filepath.Join(t.TempDir(), "planner.yaml")
	written := defaultConfig()
	written.Mesh.File = "level1.geojson"
	if err := written.SerializeToFile(filename); err != nil {
		t.Fatalf("SerializeToFile: %v", err)
	}

	cfg, err := loadConfig(filename)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Mesh.File != "level1.geojson" {
		t.Errorf("expected mesh file level1.geojson, got %q", cfg.Mesh.File)
	}
}
