package ticketrush

import (
	"strings"

	"github.com/vovakirdan/ticket-rush/internal/catalog"
	"github.com/vovakirdan/ticket-rush/internal/core"
)

// Snapshot is the read-only projection of session state the presentation
// layer renders from. The core never issues drawing calls itself; Render
// is implemented on top of this snapshot.
type Snapshot struct {
	State SessionState
	Score int
	Combo int
	Now   float64

	MapW float64
	MapH float64

	Players  []PlayerView
	Stations []StationView
	Ground   []BlockView

	Ticket            *TicketView
	PenaltyRemaining  float64 // Negative when unarmed
	DeadlineRemaining float64 // Negative when unarmed

	ChaosName      string // Empty when no modifier is active
	ChaosRemaining float64
	Blind          bool // View obstruction modifier active

	BoardOpen  bool
	SubmitOpen bool
	Banner     *core.Notification

	HintText string

	Summary SessionSummary // Meaningful when State == StateOver
}

// PlayerView is the renderable projection of a player.
type PlayerView struct {
	ID      core.PlayerID
	Role    string
	Rect    core.RectF
	Color   core.Color
	Facing  Facing
	Holding *BlockView
}

// BlockView is the renderable projection of a block.
type BlockView struct {
	Rect  core.RectF
	Label string
	Color core.Color
	Wrong bool
}

// StationView is the renderable projection of a station.
type StationView struct {
	Kind        StationKind
	Rect        core.RectF
	Label       string
	BlockLabel  string // Shelves only: label of the dispensed block
	Color       core.Color
	Highlighted bool
	Prompt      string
}

// TicketView is the renderable projection of the active ticket.
type TicketView struct {
	ID           string
	Text         string
	Options      []string
	Requirements []RequirementView
	Remaining    float64
	Resolution   Resolution
}

// RequirementView is one requirement slot with its collection state.
type RequirementView struct {
	Label     string
	Collected bool
}

// Snapshot captures the current session state for rendering and replay
// verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:             g.state,
		Score:             g.score,
		Combo:             g.combo,
		Now:               g.now,
		MapW:              g.mapW,
		MapH:              g.mapH,
		PenaltyRemaining:  -1,
		DeadlineRemaining: -1,
		BoardOpen:         g.boardOpen,
		SubmitOpen:        g.submitOpen,
		Banner:            g.banner,
		Summary:           g.Summary(),
	}

	for _, p := range g.players {
		pv := PlayerView{
			ID:     p.ID,
			Role:   p.Role.String(),
			Rect:   p.Rect,
			Color:  p.Color,
			Facing: p.Facing,
		}
		if p.Holding != nil {
			bv := blockView(p.Holding)
			pv.Holding = &bv
		}
		snap.Players = append(snap.Players, pv)
	}

	for _, s := range g.stations {
		sv := StationView{
			Kind:        s.Kind,
			Rect:        s.Rect,
			Label:       s.Label,
			Color:       s.Color,
			Highlighted: s.Highlighted,
			Prompt:      s.Prompt,
		}
		if s.Kind == StationShelf {
			if info, ok := g.content.Block(s.BlockKind); ok {
				sv.BlockLabel = info.Label
			}
		}
		snap.Stations = append(snap.Stations, sv)
	}

	for _, b := range g.ground {
		snap.Ground = append(snap.Ground, blockView(b))
	}

	if t := g.ticket; t != nil {
		tv := TicketView{
			ID:         t.ID,
			Text:       t.Text,
			Options:    t.Options,
			Remaining:  t.ExpiresAt - g.now,
			Resolution: t.Resolution,
		}
		if tv.Remaining < 0 {
			tv.Remaining = 0
		}
		for i, req := range t.Requirements {
			label := string(req)
			if info, ok := g.content.Block(req); ok {
				label = info.Label
			}
			tv.Requirements = append(tv.Requirements, RequirementView{
				Label:     label,
				Collected: t.Collected[i],
			})
		}
		snap.Ticket = &tv
	}

	if g.penalty != nil {
		snap.PenaltyRemaining = g.penalty.expiresAt - g.now
	}
	if g.deadline != nil {
		snap.DeadlineRemaining = *g.deadline - g.now
	}
	if g.chaos != nil {
		snap.ChaosName = g.chaos.tmpl.Name
		snap.ChaosRemaining = g.chaos.expiresAt - g.now
		snap.Blind = g.chaos.tmpl.ID == catalog.ChaosBlind
	}

	snap.HintText = g.hintText()
	return snap
}

// blockView projects a block for rendering.
func blockView(b *Block) BlockView {
	return BlockView{
		Rect:  b.Rect,
		Label: b.Label,
		Color: b.Color,
		Wrong: b.Wrong,
	}
}

// hintText builds the step-by-step progress line shown in the HUD.
func (g *Game) hintText() string {
	t := g.ticket
	if t == nil || t.Resolution != ResolutionNone {
		return "WAITING FOR TICKET..."
	}

	var missing []string
	for i, req := range t.Requirements {
		if t.Collected[i] {
			continue
		}
		label := string(req)
		if info, ok := g.content.Block(req); ok {
			label = info.Label
		}
		missing = append(missing, label)
	}

	if len(missing) == 0 {
		return "ALL BLOCKS READY! P2: GO TO DESK & PRESS ENTER"
	}
	return "NEED: " + strings.Join(missing, ", ") + " -> DROP AT DESK"
}
