package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `planning:
  horizon_start: "2026-03-01"
  horizon_days: 90
  labor_hours_per_day: 160
  capacity_scale: 0.7
  base_hours:
    ORY: 40
inputs:
  fleet: data/fleet.csv
  tasks: data/task_cards.csv
  history: data/history.csv
reports:
  dir: out
  format: json
metrics:
  prometheus_enabled: true
alerts:
  enabled: true
  broker: "tcp://localhost:1883"
  topic_prefix: "ops/risk"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"horizon_start", cfg.Planning.HorizonStart, "2026-03-01"},
		{"horizon_days", cfg.Planning.HorizonDays, 90},
		{"labor_hours_per_day", cfg.Planning.LaborHoursPerDay, 160.0},
		{"capacity_scale", cfg.Planning.CapacityScale, 0.7},
		{"base_hours", cfg.Planning.BaseHours["ORY"], 40.0},
		{"strategy default", cfg.Planning.Strategy, "greedy"},
		{"fleet", cfg.Inputs.Fleet, "data/fleet.csv"},
		{"tasks", cfg.Inputs.Tasks, "data/task_cards.csv"},
		{"history", cfg.Inputs.History, "data/history.csv"},
		{"reports_dir", cfg.Reports.Dir, "out"},
		{"reports_format", cfg.Reports.Format, "json"},
		{"prometheus", cfg.Metrics.PrometheusEnabled, true},
		{"alerts_enabled", cfg.Alerts.Enabled, true},
		{"alerts_broker", cfg.Alerts.Broker, "tcp://localhost:1883"},
		{"alerts_prefix", cfg.Alerts.Prefix(), "ops/risk"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("inputs:\n  fleet: f.csv\n  tasks: t.csv\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Planning.HorizonDays != 120 || cfg.Planning.LaborHoursPerDay != 80 {
		t.Fatalf("planning defaults not applied: %+v", cfg.Planning)
	}
	if cfg.Planning.CapacityScale != 1 {
		t.Fatalf("scale default = %g", cfg.Planning.CapacityScale)
	}
	if cfg.Reports.Dir != "reports" || cfg.Reports.Format != "csv" {
		t.Fatalf("report defaults not applied: %+v", cfg.Reports)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("planning:\n  horizon_days: 90\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TECHOPS_PLANNING__HORIZON_DAYS", "30")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Planning.HorizonDays != 30 {
		t.Fatalf("env override not applied: %d", cfg.Planning.HorizonDays)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		file string
		data string
	}{
		{"unsupported extension", "config.toml", ""},
		{"negative horizon", "a.yaml", "planning:\n  horizon_days: -1\n"},
		{"bad date", "b.yaml", "planning:\n  horizon_start: \"01/03/2026\"\n"},
		{"bad format", "c.yaml", "reports:\n  format: xlsx\n"},
		{"alerts without broker", "d.yaml", "alerts:\n  enabled: true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
