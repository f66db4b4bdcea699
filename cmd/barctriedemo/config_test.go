package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	cli "gopkg.in/urfave/cli.v1"
)

func TestLoadConfigAppliesDefaultsWhenNoPath(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\"): %v", err)
	}
	want := defaultConfig()
	if cfg != want {
		t.Errorf("got %+v, want default %+v", cfg, want)
	}
}

func TestLoadConfigReadsYAMLOverDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("tau: 3\naddr: \":9000\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Tau != 3 {
		t.Errorf("got Tau=%d, want 3", cfg.Tau)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("got Addr=%q, want :9000", cfg.Addr)
	}
	if cfg.CacheSize != defaultConfig().CacheSize {
		t.Errorf("unset field CacheSize should keep its default, got %d", cfg.CacheSize)
	}
}

func TestMergedConfigFlagOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("tau: 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	app := cli.NewApp()
	globalSet := flag.NewFlagSet("test", flag.ContinueOnError)
	globalSet.String("config", "", "")
	globalSet.String("dictionary", "", "")
	globalSet.Int("tau", 0, "")
	globalSet.Int("bottom", 0, "")
	if err := globalSet.Parse([]string{"--config", path, "--tau", "5"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	parent := cli.NewContext(app, globalSet, nil)
	// indexCommand/searchCommand/serveCommand actions see the subcommand's
	// own (empty) flag set, with the root app's flags reachable as globals
	// through parentContext -- mirror that shape here.
	localSet := flag.NewFlagSet("index", flag.ContinueOnError)
	c := cli.NewContext(app, localSet, parent)

	cfg, err := mergedConfig(c)
	if err != nil {
		t.Fatalf("mergedConfig: %v", err)
	}
	if cfg.Tau != 5 {
		t.Errorf("got Tau=%d, want flag override 5", cfg.Tau)
	}
}
