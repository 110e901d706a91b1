// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for Ticket Rush.
package config

// TicketRushConfig contains all tuning for the Ticket Rush game.
type TicketRushConfig struct {
	Map         MapConfig         `yaml:"map"`
	Player      PlayerConfig      `yaml:"player"`
	Interaction InteractionConfig `yaml:"interaction"`
	Timers      TimerConfig       `yaml:"timers"`
	Scoring     ScoringConfig     `yaml:"scoring"`
}

// MapConfig defines the world bounds in world units (terminal cells).
type MapConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player dimensions and movement speed.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // World units per second
}

// InteractionConfig defines proximity and drop behavior.
type InteractionConfig struct {
	Buffer        float64 `yaml:"buffer"`         // Station proximity margin
	StationOffset float64 `yaml:"station_offset"` // Block placement offset beside a station
}

// TimerConfig defines the countdown windows, in seconds of game time.
type TimerConfig struct {
	SubmissionWindow float64 `yaml:"submission_window"` // Armed when a ticket becomes ready
	PenaltyWindow    float64 `yaml:"penalty_window"`    // Armed on a wrong-block drop
	RespawnDelay     float64 `yaml:"respawn_delay"`     // Delay before the next ticket spawns
	NotificationSecs float64 `yaml:"notification_secs"` // Banner display time
	TicketTimeScale  float64 `yaml:"ticket_time_scale"` // Multiplier on catalog time budgets
}

// ScoringConfig defines point awards and penalties.
type ScoringConfig struct {
	CorrectBase int `yaml:"correct_base"` // Points per correct answer, multiplied by combo
	FailPenalty int `yaml:"fail_penalty"` // Points lost on wrong answer or timeout
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyTicketRushPreset adjusts the timer windows for a difficulty preset.
// "fixed" and "normal" leave the config untouched.
func ApplyTicketRushPreset(cfg *TicketRushConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timers.SubmissionWindow = 20
		cfg.Timers.PenaltyWindow = 15
		cfg.Timers.TicketTimeScale = 1.25
	case DifficultyHard:
		cfg.Timers.SubmissionWindow = 10
		cfg.Timers.PenaltyWindow = 7
		cfg.Timers.TicketTimeScale = 0.75
	}
}
