// Package ticketrush implements the two-player cooperative Ticket Rush
// game: the Reader reads tickets at the board while the Compiler collects
// typed knowledge blocks and submits an answer at the desk before one of
// several overlapping deadlines expires.
//
// The package contains pure game logic with no external dependencies
// (especially no Bubble Tea). The platform handles input mapping, timing,
// and rendering.
package ticketrush

import (
	"math/rand"

	"github.com/vovakirdan/ticket-rush/internal/catalog"
	"github.com/vovakirdan/ticket-rush/internal/config"
	"github.com/vovakirdan/ticket-rush/internal/core"
	"github.com/vovakirdan/ticket-rush/internal/registry"
)

// SessionState is the top-level state machine position.
type SessionState int

const (
	StateMenu SessionState = iota
	StatePlaying
	StateOver
)

// String returns a human-readable name for the session state.
func (s SessionState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Session end reasons recorded in the summary.
const (
	EndTicketExpired   = "ticket_expired"
	EndPenaltyExpired  = "penalty_expired"
	EndDeadlineExpired = "deadline_expired"
)

// SessionSummary is reported to the platform when a session terminates.
type SessionSummary struct {
	FinalScore     int
	TicketsCorrect int
	TicketsFailed  int
	ComboPeak      int
	EndReason      string
	DurationSecs   float64
}

// Package-level variables for config/catalog paths set via CLI
// (like the platform's other games).
var (
	configPath       string
	catalogPath      string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom gameplay config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetCatalogPath sets the custom content catalog path for loading.
func SetCatalogPath(path string) {
	catalogPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// optionActions maps submission option slots to their actions.
var optionActions = [...]core.Action{
	core.ActionOption1,
	core.ActionOption2,
	core.ActionOption3,
	core.ActionOption4,
}

// Game implements the Ticket Rush session: state machine, ticket
// lifecycle, timer set, and actor movement. The whole session advances
// through one Step call per tick; there is no parallelism inside.
type Game struct {
	// Session state machine
	state SessionState
	score int
	combo int

	// Entities
	players  []*Player
	stations []*Station
	ground   []*Block

	// Active task and timer set
	ticket   *Ticket
	deadline *float64 // Submission deadline; nil = unarmed
	penalty  *penaltyTimer
	chaos    *chaosWindow
	sched    scheduler

	// Interaction views
	boardOpen  bool
	submitOpen bool

	// Notification banner (latest event, dismissed via scheduler)
	banner    *core.Notification
	bannerSeq uint64
	events    []core.Notification

	// Session statistics
	ticketsCorrect int
	ticketsFailed  int
	comboPeak      int
	endReason      string

	// Clock: advanced by dt every tick; all expiries are absolute values
	// on this clock.
	now float64
	dt  float64

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.TicketRushConfig
	content *catalog.Catalog
	rng     *rand.Rand
	mapW    float64
	mapH    float64
}

// New creates a new Ticket Rush game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("ticketrush", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "ticketrush"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ticket Rush"
}

// Reset initializes the game into the menu state. The office layout is
// prepared immediately so the menu renders over the floor.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTicketRush(configPath)
	if err != nil {
		cfg = config.DefaultTicketRushConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTicketRushPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	content, err := catalog.Load(catalogPath)
	if err != nil {
		content = catalog.Default()
	}
	g.content = content

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.dt = 1.0 / float64(core.Max(runtime.TickRate, 1))
	g.mapW = cfg.Map.Width
	g.mapH = cfg.Map.Height

	g.state = StateMenu
	g.score = 0
	g.combo = 1
	g.now = 0
	g.ticket = nil
	g.deadline = nil
	g.penalty = nil
	g.chaos = nil
	g.sched.clear()
	g.boardOpen = false
	g.submitOpen = false
	g.banner = nil
	g.events = nil
	g.ticketsCorrect = 0
	g.ticketsFailed = 0
	g.comboPeak = 1
	g.endReason = ""

	g.setupLevel()
}

// setupLevel builds the players and stations in their starting positions.
func (g *Game) setupLevel() {
	pw := g.cfg.Player.Width
	ph := g.cfg.Player.Height
	speed := g.cfg.Player.Speed

	g.players = []*Player{
		{
			ID:    core.Player1,
			Role:  RoleReader,
			Rect:  core.NewRectF(g.mapW/3, g.mapH*0.55, pw, ph),
			Speed: speed,
			Color: core.ColorBrightCyan,
		},
		{
			ID:    core.Player2,
			Role:  RoleCompiler,
			Rect:  core.NewRectF(g.mapW*2/3, g.mapH*0.55, pw, ph),
			Speed: speed,
			Color: core.ColorBrightMagenta,
		},
	}

	g.stations = nil
	g.buildStations()
	g.ground = nil
}

// startSession performs the full state reset and transitions to PLAYING.
// Restarting after game over is equivalent to initial construction: all
// timers disarm and every pending scheduled action is cancelled.
func (g *Game) startSession() {
	g.score = 0
	g.combo = 1
	g.comboPeak = 1
	g.ticketsCorrect = 0
	g.ticketsFailed = 0
	g.endReason = ""
	g.now = 0
	g.deadline = nil
	g.penalty = nil
	g.chaos = nil
	g.sched.clear()
	g.boardOpen = false
	g.submitOpen = false
	g.banner = nil

	g.setupLevel()
	g.spawnTicket()
	g.state = StatePlaying
}

// terminate ends the session: all timers halt, pending actions cancel,
// and any open interaction views close.
func (g *Game) terminate(reason string) {
	g.state = StateOver
	g.endReason = reason
	g.deadline = nil
	g.penalty = nil
	g.chaos = nil
	g.sched.clear()
	g.boardOpen = false
	g.submitOpen = false
}

// notify records an event for the platform and replaces the banner.
// The banner dismisses itself after the configured display time unless a
// newer notification has replaced it first.
func (g *Game) notify(n core.Notification) {
	g.events = append(g.events, n)
	g.bannerSeq++
	seq := g.bannerSeq
	g.banner = &n
	g.sched.schedule(g.now+g.cfg.Timers.NotificationSecs, func(g *Game) {
		if g.bannerSeq == seq {
			g.banner = nil
		}
	})
}

// Step advances the game by one tick. Within a tick the order is fixed:
// timer-expiry checks run before movement and interaction resolution, so
// a session that should terminate this tick never processes another
// interaction first.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	g.events = nil

	if g.state != StatePlaying {
		if g.startRequested(in) {
			g.startSession()
		}
		return g.result()
	}

	g.now += g.dt

	// (a) Ticket expiry. The SPEED chaos advances the deadline by an
	// extra frame's worth of time each tick, roughly doubling the expiry
	// rate without ever extending it back when the modifier ends.
	if g.ticket != nil && g.ticket.Resolution == ResolutionNone {
		if g.chaosActive(catalog.ChaosSpeed) {
			g.ticket.ExpiresAt -= g.dt
		}
		if g.now >= g.ticket.ExpiresAt {
			g.terminate(EndTicketExpired)
			return g.result()
		}
	}

	// (b) Wrong-block penalty expiry.
	if g.penalty != nil && g.now >= g.penalty.expiresAt {
		g.terminate(EndPenaltyExpired)
		return g.result()
	}

	// (c) Submission deadline expiry.
	if g.deadline != nil && g.now >= *g.deadline {
		g.terminate(EndDeadlineExpired)
		return g.result()
	}

	// (d) Chaos window expiry deactivates the modifier, never terminates.
	if g.chaos != nil && g.now >= g.chaos.expiresAt {
		g.endChaos()
	}

	// Deferred one-shot actions (ticket re-spawn, banner dismissal).
	for _, e := range g.sched.drainDue(g.now) {
		e.fn(g)
	}

	// (e) Movement, then interaction resolution on release edges.
	for _, p := range g.players {
		g.movePlayer(p, in.Player(p.ID))
	}
	for _, p := range g.players {
		frame := in.Player(p.ID)
		if frame.WasReleased(core.ActionInteract) {
			g.handleAction(p)
		}
		for i, a := range optionActions {
			if frame.WasReleased(a) {
				g.submitOption(p, i)
			}
		}
		if frame.WasReleased(core.ActionChaos) {
			g.TriggerChaos()
		}
	}

	// The board view follows the Reader: it closes once they walk away.
	if g.boardOpen && !g.readerNearBoard() {
		g.boardOpen = false
	}

	// (f) Station highlights are transient and recomputed every tick.
	g.refreshHighlights()

	return g.result()
}

// startRequested reports whether any player asked to start or restart.
func (g *Game) startRequested(in core.MultiInputFrame) bool {
	for _, p := range g.players {
		if in.Player(p.ID).WasReleased(core.ActionStart) {
			return true
		}
	}
	return false
}

// readerNearBoard reports whether the Reader is within interaction range
// of the board.
func (g *Game) readerNearBoard() bool {
	for _, p := range g.players {
		if p.Role != RoleReader {
			continue
		}
		s := g.findNearbyStation(p)
		return s != nil && s.Kind == StationBoard
	}
	return false
}

// result packages the current state and this tick's events.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append(res.Events, g.events...)
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateOver,
		Started:  g.state != StateMenu,
	}
}

// Summary returns the session summary. Meaningful once the session has
// terminated.
func (g *Game) Summary() SessionSummary {
	return SessionSummary{
		FinalScore:     g.score,
		TicketsCorrect: g.ticketsCorrect,
		TicketsFailed:  g.ticketsFailed,
		ComboPeak:      g.comboPeak,
		EndReason:      g.endReason,
		DurationSecs:   g.now,
	}
}
