package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ticket-rush/internal/core"
	"github.com/vovakirdan/ticket-rush/internal/games/ticketrush"
	"github.com/vovakirdan/ticket-rush/internal/registry"
	"github.com/vovakirdan/ticket-rush/internal/storage"
)

// resultSummarizer is implemented by games that report a session summary
// worth persisting beyond the bare score.
type resultSummarizer interface {
	Summary() ticketrush.SessionSummary
}

// holdKey identifies one player's level-triggered action.
type holdKey struct {
	player core.PlayerID
	action core.Action
}

// Model is the Bubble Tea model for running a local two-player session.
//
// Terminals report key presses only, never releases, so held movement is
// emulated: each press of a movement key opens a short hold window that
// keyboard auto-repeat keeps refreshing while the key stays down.
// Edge-triggered keys (interact, options) are queued as release events and
// delivered to exactly one simulation tick.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	keys    *KeyMapper
	holds   map[holdKey]int // Remaining ticks per held action
	pending []Binding       // Release edges for the next tick

	gameState   core.GameState
	quitting    bool
	resultSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		holds:  make(map[holdKey]int),
	}
}

// holdTicks is how long one key press keeps a movement action alive.
// Long enough to bridge the auto-repeat interval of common terminals.
func (m Model) holdTicks() int {
	t := m.config.TickRate / 5
	if t < 1 {
		t = 1
	}
	return t
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield size comes from the gameplay config, not the
		// terminal, so a resize only adjusts the drawing surface.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input for both players.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	b, ok := m.keys.Lookup(msg)
	if !ok {
		return m, nil
	}

	if b.Held {
		m.holds[holdKey{b.Player, b.Action}] = m.holdTicks()
	} else {
		m.pending = append(m.pending, b)
	}
	return m, nil
}

// handleTick assembles the input frame and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := core.NewMultiInputFrame()

	frameFor := func(id core.PlayerID) core.InputFrame {
		if f, ok := in.ByPlayer[id]; ok {
			return f
		}
		f := core.NewInputFrame()
		in.SetPlayer(id, f)
		return f
	}

	for k, ticks := range m.holds {
		if ticks <= 0 {
			delete(m.holds, k)
			continue
		}
		f := frameFor(k.player)
		f.Hold(k.action)
		m.holds[k] = ticks - 1
	}

	for _, b := range m.pending {
		f := frameFor(b.Player)
		f.Release(b.Action)
	}
	m.pending = nil

	result := m.game.Step(in)

	// A restart clears game-over, so the next termination saves again.
	if m.gameState.GameOver && !result.State.GameOver {
		m.resultSaved = false
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult persists the score and, when available, the session summary.
// Best-effort: a storage failure never interrupts play.
func (m *Model) saveResult() {
	if m.store == nil {
		return
	}

	//nolint:errcheck
	m.store.SaveScore(m.game.ID(), m.gameState.Score)

	if sum, ok := m.game.(resultSummarizer); ok {
		s := sum.Summary()
		//nolint:errcheck
		m.store.SaveSession(storage.SessionRecord{
			GameID:         m.game.ID(),
			FinalScore:     s.FinalScore,
			TicketsCorrect: s.TicketsCorrect,
			TicketsFailed:  s.TicketsFailed,
			ComboPeak:      s.ComboPeak,
			EndReason:      s.EndReason,
			DurationSecs:   int(s.DurationSecs),
		})
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".ticketrush", "screenshots")
	//nolint:errcheck
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
