package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "heston" {
		t.Errorf("expected model heston, got %s", cfg.Model)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Horizon <= 0 {
		t.Error("horizon should be positive")
	}
	if cfg.Paths <= 0 {
		t.Error("paths should be positive")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Heston.Sigma = 0.35
	cfg.Seed = 99

	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Heston.Sigma != 0.35 {
		t.Errorf("sigma: got %f, want 0.35", loaded.Heston.Sigma)
	}
	if loaded.Seed != 99 {
		t.Errorf("seed: got %d, want 99", loaded.Seed)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("heston", "calm")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Heston.Rho != -0.5 {
		t.Errorf("expected rho -0.5, got %f", cfg.Heston.Rho)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("heston", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "calm"); cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("heston"); len(presets) == 0 {
		t.Error("expected presets for heston")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestBuildProcess(t *testing.T) {
	ref := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		model string
		size  int
	}{
		{"heston", 2},
		{"blackscholes", 1},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Model = tt.model
		p, err := cfg.BuildProcess(ref)
		if err != nil {
			t.Fatalf("model %s: %v", tt.model, err)
		}
		if p.Size() != tt.size {
			t.Errorf("model %s: expected size %d, got %d", tt.model, tt.size, p.Size())
		}

		x0, err := p.InitialValues()
		if err != nil {
			t.Fatalf("model %s: initial values: %v", tt.model, err)
		}
		if x0[0] != cfg.Market.Spot {
			t.Errorf("model %s: spot: got %f, want %f", tt.model, x0[0], cfg.Market.Spot)
		}
	}
}

func TestBuildProcess_UnknownModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model = "bogus"
	if _, err := cfg.BuildProcess(time.Now()); err == nil {
		t.Error("expected error for unknown model")
	}
}
