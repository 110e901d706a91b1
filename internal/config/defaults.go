package config

import (
	_ "embed"
)

//go:embed defaults/ticketrush.yaml
var defaultTicketRushYAML []byte

// DefaultTicketRushConfig returns the hardcoded default configuration.
// Used as a last resort if the embedded YAML cannot be parsed.
func DefaultTicketRushConfig() TicketRushConfig {
	return TicketRushConfig{
		Map: MapConfig{
			Width:  72,
			Height: 19,
		},
		Player: PlayerConfig{
			Width:  3,
			Height: 2,
			Speed:  16.0,
		},
		Interaction: InteractionConfig{
			Buffer:        2.0,
			StationOffset: 1.0,
		},
		Timers: TimerConfig{
			SubmissionWindow: 15.0,
			PenaltyWindow:    10.0,
			RespawnDelay:     1.5,
			NotificationSecs: 1.2,
			TicketTimeScale:  1.0,
		},
		Scoring: ScoringConfig{
			CorrectBase: 100,
			FailPenalty: 20,
		},
	}
}
