package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultTicketRushConfig(t *testing.T) {
	cfg := DefaultTicketRushConfig()

	if cfg.Map.Width <= 0 || cfg.Map.Height <= 0 {
		t.Error("Default map dimensions must be positive")
	}
	if cfg.Player.Speed <= 0 {
		t.Error("Default player speed must be positive")
	}
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		t.Error("Default player dimensions must be positive")
	}
	if cfg.Interaction.Buffer <= 0 {
		t.Error("Default interaction buffer must be positive")
	}
	if cfg.Timers.SubmissionWindow <= 0 || cfg.Timers.PenaltyWindow <= 0 {
		t.Error("Default timer windows must be positive")
	}
	if cfg.Timers.RespawnDelay <= 0 || cfg.Timers.NotificationSecs <= 0 {
		t.Error("Default delays must be positive")
	}
	if cfg.Timers.TicketTimeScale != 1.0 {
		t.Errorf("Default ticket time scale = %f, expected 1.0", cfg.Timers.TicketTimeScale)
	}
	if cfg.Scoring.CorrectBase <= 0 || cfg.Scoring.FailPenalty < 0 {
		t.Error("Default scoring values out of range")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg TicketRushConfig
	if err := yaml.Unmarshal(defaultTicketRushYAML, &cfg); err != nil {
		t.Fatalf("Embedded default YAML does not parse: %v", err)
	}

	if cfg != DefaultTicketRushConfig() {
		t.Errorf("Embedded default %+v differs from hardcoded default %+v",
			cfg, DefaultTicketRushConfig())
	}
}

func TestApplyTicketRushPreset(t *testing.T) {
	base := DefaultTicketRushConfig()

	tests := []struct {
		name    string
		preset  DifficultyPreset
		window  float64
		penalty float64
		scale   float64
	}{
		{"easy", DifficultyEasy, 20, 15, 1.25},
		{"normal", DifficultyNormal, base.Timers.SubmissionWindow, base.Timers.PenaltyWindow, base.Timers.TicketTimeScale},
		{"hard", DifficultyHard, 10, 7, 0.75},
		{"fixed", DifficultyFixed, base.Timers.SubmissionWindow, base.Timers.PenaltyWindow, base.Timers.TicketTimeScale},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTicketRushConfig()
			ApplyTicketRushPreset(&cfg, tc.preset)

			if cfg.Timers.SubmissionWindow != tc.window {
				t.Errorf("SubmissionWindow = %f, expected %f", cfg.Timers.SubmissionWindow, tc.window)
			}
			if cfg.Timers.PenaltyWindow != tc.penalty {
				t.Errorf("PenaltyWindow = %f, expected %f", cfg.Timers.PenaltyWindow, tc.penalty)
			}
			if cfg.Timers.TicketTimeScale != tc.scale {
				t.Errorf("TicketTimeScale = %f, expected %f", cfg.Timers.TicketTimeScale, tc.scale)
			}
			// Presets only touch timers
			if cfg.Map != base.Map || cfg.Player != base.Player || cfg.Scoring != base.Scoring {
				t.Error("Preset should not change map, player, or scoring config")
			}
		})
	}
}

func TestLoadTicketRushCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ticketrush.yaml")

	content := `
map:
  width: 100
  height: 30
player:
  width: 2
  height: 1
  speed: 24
timers:
  submission_window: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTicketRush(path)
	if err != nil {
		t.Fatalf("LoadTicketRush(%s) = %v", path, err)
	}
	if cfg.Map.Width != 100 || cfg.Map.Height != 30 {
		t.Errorf("Map = %+v, expected 100x30", cfg.Map)
	}
	if cfg.Player.Speed != 24 {
		t.Errorf("Player.Speed = %f, expected 24", cfg.Player.Speed)
	}
	if cfg.Timers.SubmissionWindow != 5 {
		t.Errorf("SubmissionWindow = %f, expected 5", cfg.Timers.SubmissionWindow)
	}
}

func TestLoadTicketRushCustomPathErrors(t *testing.T) {
	if _, err := LoadTicketRush(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Missing explicit config path should be an error, not a fallback")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("map: [not, a, struct]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTicketRush(bad); err == nil {
		t.Error("Malformed explicit config should be an error")
	}
}
