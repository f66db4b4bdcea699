package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// config holds the demo's tunables. Fields mirror the CLI flags; a YAML
// file supplies defaults, and flags explicitly set on the command line
// override whatever the config file says.
type config struct {
	Dictionary string `yaml:"dictionary"`
	Tau        int    `yaml:"tau"`
	Bottom     int    `yaml:"bottom"`
	Addr       string `yaml:"addr"`
	CacheSize  int    `yaml:"cache_size"`
}

func defaultConfig() config {
	return config{
		Dictionary: "",
		Tau:        1,
		Bottom:     0,
		Addr:       ":3000",
		CacheSize:  4096,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "open config %v", path)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %v", path)
	}
	return cfg, nil
}
