package ticketrush

import (
	"github.com/vovakirdan/ticket-rush/internal/catalog"
	"github.com/vovakirdan/ticket-rush/internal/core"
)

// chaosWindow is a time-boxed global rule perturbation. At most one may be
// active at a time.
type chaosWindow struct {
	tmpl      catalog.ChaosTemplate
	expiresAt float64
}

// TriggerChaos activates a random chaos modifier from the catalog.
// Chaos is a discrete externally-invoked trigger: the core never schedules
// it on its own. The trigger is rejected while the session is not playing
// or while another modifier is already active.
func (g *Game) TriggerChaos() bool {
	if g.state != StatePlaying {
		return false
	}
	if g.chaos != nil {
		return false // Already active
	}

	tmpl := g.content.Chaos[g.rng.Intn(len(g.content.Chaos))]
	g.chaos = &chaosWindow{
		tmpl:      tmpl,
		expiresAt: g.now + tmpl.DurationSecs,
	}

	g.notify(core.Notification{
		Title:    "CHAOS EVENT",
		Message:  tmpl.Name,
		Severity: core.SeverityWarning,
	})
	return true
}

// chaosActive reports whether a chaos modifier of the given kind is
// currently in effect.
func (g *Game) chaosActive(kind catalog.ChaosKind) bool {
	return g.chaos != nil && g.chaos.tmpl.ID == kind
}

// endChaos deactivates the current chaos modifier. Expiry never terminates
// the session.
func (g *Game) endChaos() {
	g.chaos = nil
}
