package ticketrush

import (
	"fmt"

	"github.com/vovakirdan/ticket-rush/internal/catalog"
	"github.com/vovakirdan/ticket-rush/internal/core"
)

// Resolution is the terminal outcome of a submitted ticket.
type Resolution int

const (
	ResolutionNone Resolution = iota // Still active
	ResolutionCorrect
	ResolutionIncorrect
	ResolutionTimedOut
)

// String returns a human-readable name for the resolution.
func (r Resolution) String() string {
	switch r {
	case ResolutionNone:
		return "none"
	case ResolutionCorrect:
		return "correct"
	case ResolutionIncorrect:
		return "incorrect"
	case ResolutionTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Ticket is the active task. Requirements and Collected are index-aligned:
// two requirements of the same kind are two independent slots.
type Ticket struct {
	ID           string
	Text         string
	Options      []string
	Answer       string
	Requirements []catalog.BlockKind
	Collected    []bool
	ExpiresAt    float64 // Absolute time on the session clock
	Resolution   Resolution
}

// Ready reports whether every requirement slot has been collected.
func (t *Ticket) Ready() bool {
	for _, c := range t.Collected {
		if !c {
			return false
		}
	}
	return true
}

// openSlot returns the lowest requirement index whose kind matches and
// whose slot is still open, or -1 if no such slot exists.
func (t *Ticket) openSlot(kind catalog.BlockKind) int {
	for i, req := range t.Requirements {
		if req == kind && !t.Collected[i] {
			return i
		}
	}
	return -1
}

// requiresOutstanding reports whether at least one open slot wants the
// given kind.
func (t *Ticket) requiresOutstanding(kind catalog.BlockKind) bool {
	return t.openSlot(kind) >= 0
}

// spawnTicket draws one template uniformly at random from the catalog and
// materializes a fresh ticket. The expiry is fixed at spawn time as an
// absolute timestamp; the submission deadline resets to unarmed.
func (g *Game) spawnTicket() {
	tmpl := g.content.Tickets[g.rng.Intn(len(g.content.Tickets))]

	reqs := make([]catalog.BlockKind, len(tmpl.Blocks))
	copy(reqs, tmpl.Blocks)

	g.ticket = &Ticket{
		ID:           tmpl.ID,
		Text:         tmpl.Text,
		Options:      tmpl.Options,
		Answer:       tmpl.Answer,
		Requirements: reqs,
		Collected:    make([]bool, len(reqs)),
		ExpiresAt:    g.now + tmpl.TimeSecs*g.cfg.Timers.TicketTimeScale,
	}
	g.deadline = nil
}

// tryInsert attempts to insert the player's held block into the active
// ticket. On a match the block is consumed; when this fills the last slot
// the submission deadline arms exactly once. A block with no open slot
// stays in the player's hand.
func (g *Game) tryInsert(p *Player) {
	if g.ticket == nil || g.ticket.Resolution != ResolutionNone || p.Holding == nil {
		return
	}

	idx := g.ticket.openSlot(p.Holding.Kind)
	if idx < 0 {
		return // Keep holding
	}

	g.ticket.Collected[idx] = true
	p.Holding = nil // Consumed

	if g.ticket.Ready() && g.deadline == nil {
		expiry := g.now + g.cfg.Timers.SubmissionWindow
		g.deadline = &expiry
		g.notify(core.Notification{
			Title:    "BLOCKS READY!",
			Message:  fmt.Sprintf("P2: SUBMIT IN %.0f SECONDS!", g.cfg.Timers.SubmissionWindow),
			Severity: core.SeverityWarning,
		})
	}
}

// submit resolves the active ticket. An empty answer with timedOut set
// denotes a timeout; a matching answer is a success; anything else is a
// failure. All three outcomes disarm the submission deadline, close the
// interaction views, and schedule the next spawn after the display delay.
func (g *Game) submit(answer string, timedOut bool) {
	t := g.ticket
	if t == nil || t.Resolution != ResolutionNone {
		return
	}

	g.deadline = nil
	g.boardOpen = false
	g.submitOpen = false

	switch {
	case timedOut:
		t.Resolution = ResolutionTimedOut
		g.score -= g.cfg.Scoring.FailPenalty
		g.combo = 1
		g.ticketsFailed++
		g.notify(core.Notification{
			Title:    "TIME OUT!",
			Message:  fmt.Sprintf("-%d POINTS", g.cfg.Scoring.FailPenalty),
			Severity: core.SeverityError,
		})
	case answer == t.Answer:
		t.Resolution = ResolutionCorrect
		points := g.cfg.Scoring.CorrectBase * g.combo
		g.score += points
		g.combo++
		if g.combo > g.comboPeak {
			g.comboPeak = g.combo
		}
		g.ticketsCorrect++
		g.notify(core.Notification{
			Title:    "SUCCESS!",
			Message:  fmt.Sprintf("+%d POINTS", points),
			Severity: core.SeveritySuccess,
		})
	default:
		t.Resolution = ResolutionIncorrect
		g.score -= g.cfg.Scoring.FailPenalty
		g.combo = 1
		g.ticketsFailed++
		g.notify(core.Notification{
			Title:    "WRONG!",
			Message:  fmt.Sprintf("-%d POINTS", g.cfg.Scoring.FailPenalty),
			Severity: core.SeverityError,
		})
	}

	// Next ticket appears after the result has been on screen for a beat.
	g.sched.schedule(g.now+g.cfg.Timers.RespawnDelay, func(g *Game) {
		g.spawnTicket()
	})
}
