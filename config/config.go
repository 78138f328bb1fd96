package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"techops/core/metrics"
	"techops/infra/alert"
)

// Config is the full configuration surface of the planner.
type Config struct {
	Planning PlanningConfig `json:"planning"`
	Inputs   InputsConfig   `json:"inputs"`
	Reports  ReportsConfig  `json:"reports"`
	Metrics  metrics.Config `json:"metrics"`
	Alerts   alert.Config   `json:"alerts"`
}

// Load reads the configuration file at path (YAML or JSON, by extension)
// and applies TECHOPS_ environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides, e.g. TECHOPS_PLANNING__HORIZON_DAYS.
	if err := k.Load(env.Provider("TECHOPS_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "techops_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Planning.SetDefaults()
	cfg.Reports.SetDefaults()
	if err := cfg.Planning.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Reports.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Alerts.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
