package ticketrush

import (
	"fmt"

	"github.com/vovakirdan/ticket-rush/internal/core"
)

// handleAction resolves one player's action-key release. Interactions are
// edge-triggered: the platform reports one release event per key press,
// so holding the key cannot repeat-fire. Invalid interactions (wrong role
// at a station, no open slot, nothing in reach) are silent no-ops by
// contract, never errors.
func (g *Game) handleAction(p *Player) {
	if p.Holding != nil {
		g.handleDrop(p)
		return
	}
	g.handlePickup(p)
}

// handleDrop resolves the action for a player carrying a block.
func (g *Game) handleDrop(p *Player) {
	station := g.findNearbyStation(p)
	if station == nil {
		g.dropOnGround(p)
		return
	}

	switch station.Kind {
	case StationDesk:
		g.tryInsert(p)

	case StationBin:
		// Destroy the block. Binning any wrong-flagged block clears the
		// armed penalty.
		if p.Holding.Wrong && g.penalty != nil {
			g.penalty = nil
		}
		p.Holding = nil

	default:
		// Place on the station's edge (board, shelf top act as tables).
		off := g.cfg.Interaction.StationOffset
		p.Holding.Rect.X = station.Rect.X + off
		p.Holding.Rect.Y = station.Rect.Y + off
		g.ground = append(g.ground, p.Holding)
		p.Holding = nil
	}
}

// dropOnGround places the held block at the player's feet. A block whose
// kind matches no outstanding ticket requirement at drop time is flagged
// wrong and arms the penalty countdown, unless one is already armed.
func (g *Game) dropOnGround(p *Player) {
	b := p.Holding

	needed := g.ticket != nil &&
		g.ticket.Resolution == ResolutionNone &&
		g.ticket.requiresOutstanding(b.Kind)
	if !needed {
		b.Wrong = true
		g.armPenalty(b)
	}

	b.Rect.X = p.Rect.X
	b.Rect.Y = p.Rect.Bottom()
	g.ground = append(g.ground, b)
	p.Holding = nil
}

// armPenalty starts the wrong-block countdown for the flagged block.
// A second wrong drop while one penalty is pending is ignored.
func (g *Game) armPenalty(b *Block) {
	if g.penalty != nil {
		return
	}
	g.penalty = &penaltyTimer{
		block:     b,
		expiresAt: g.now + g.cfg.Timers.PenaltyWindow,
	}
	g.notify(core.Notification{
		Title:    "WRONG BLOCK!",
		Message:  fmt.Sprintf("TRASH IT IN %.0f SECONDS!", g.cfg.Timers.PenaltyWindow),
		Severity: core.SeverityError,
	})
}

// handlePickup resolves the action for an empty-handed player. Stations
// take priority over ground blocks.
func (g *Game) handlePickup(p *Player) {
	if station := g.findNearbyStation(p); station != nil {
		switch station.Kind {
		case StationShelf:
			// Shelves are unlimited sources; the block spawns directly
			// into the player's hand.
			info, _ := g.content.Block(station.BlockKind)
			p.Holding = &Block{
				Kind:  station.BlockKind,
				Rect:  core.NewRectF(p.Rect.X+heldOffsetX, p.Rect.Y-heldOffsetY, 3, 1),
				Label: info.Label,
				Color: info.ScreenColor(),
			}

		case StationBoard:
			if p.Role == RoleReader {
				g.openBoardView()
			}

		case StationDesk:
			if p.Role == RoleCompiler {
				g.openSubmitView()
			}
		}
		return
	}

	if b := g.findNearbyBlock(p); b != nil {
		g.removeFromGround(b)
		p.Holding = b
	}
}

// openBoardView shows the ticket detail to the Reader. The view closes
// automatically when the Reader walks out of board range.
func (g *Game) openBoardView() {
	if g.ticket == nil {
		return
	}
	g.boardOpen = true
}

// openSubmitView shows the answer options to the Compiler. Only opens once
// the ticket is ready; otherwise the action is silently absorbed. Opening
// the view schedules an automatic timeout submission.
func (g *Game) openSubmitView() {
	t := g.ticket
	if t == nil || t.Resolution != ResolutionNone || !t.Ready() {
		return
	}
	if g.submitOpen {
		return
	}
	g.submitOpen = true

	// Auto-submit a timeout if the Compiler stalls with the view open.
	g.sched.schedule(g.now+g.cfg.Timers.SubmissionWindow, func(g *Game) {
		if g.submitOpen && g.ticket == t && t.Resolution == ResolutionNone {
			g.submit("", true)
		}
	})
}

// submitOption resolves a numbered answer choice from the Compiler while
// the submission view is open.
func (g *Game) submitOption(p *Player, idx int) {
	if !g.submitOpen || p.Role != RoleCompiler {
		return
	}
	t := g.ticket
	if t == nil || t.Resolution != ResolutionNone {
		return
	}
	if idx < 0 || idx >= len(t.Options) {
		return
	}
	g.submit(t.Options[idx], false)
}

// removeFromGround removes a block from the ground collection.
func (g *Game) removeFromGround(b *Block) {
	for i, gb := range g.ground {
		if gb == b {
			g.ground = append(g.ground[:i], g.ground[i+1:]...)
			return
		}
	}
}
