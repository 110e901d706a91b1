// Package catalog provides the read-only content catalog for Ticket Rush:
// block kinds, ticket templates, and chaos event templates. The game core
// treats the catalog as immutable and samples from it uniformly at random.
package catalog

import (
	"fmt"

	"github.com/vovakirdan/ticket-rush/internal/core"
)

// BlockKind identifies a typed knowledge block (PYTHON, MATH, ...).
type BlockKind string

// ChaosKind identifies a chaos event template.
type ChaosKind string

// Chaos event kinds. REVERSE swaps movement axes, SPEED accelerates the
// ticket deadline, SLOW halves movement, BLIND obscures the view.
const (
	ChaosReverse ChaosKind = "REVERSE"
	ChaosSpeed   ChaosKind = "SPEED"
	ChaosSlow    ChaosKind = "SLOW"
	ChaosBlind   ChaosKind = "BLIND"
)

// BlockInfo describes one block kind: its display label and color.
type BlockInfo struct {
	Kind  BlockKind `yaml:"kind"`
	Label string    `yaml:"label"`
	Color string    `yaml:"color"`
}

// TicketTemplate is one entry of the question bank. Blocks lists the
// required block kinds in order; duplicates are independent requirement
// slots, not a count.
type TicketTemplate struct {
	ID       string      `yaml:"id"`
	Text     string      `yaml:"text"`
	Options  []string    `yaml:"options"`
	Answer   string      `yaml:"answer"`
	Blocks   []BlockKind `yaml:"blocks"`
	TimeSecs float64     `yaml:"time"`
}

// ChaosTemplate describes one chaos event: id, display name, duration.
type ChaosTemplate struct {
	ID           ChaosKind `yaml:"id"`
	Name         string    `yaml:"name"`
	DurationSecs float64   `yaml:"duration"`
}

// Catalog is the full content catalog.
type Catalog struct {
	Blocks  []BlockInfo      `yaml:"blocks"`
	Tickets []TicketTemplate `yaml:"tickets"`
	Chaos   []ChaosTemplate  `yaml:"chaos"`
}

// colorNames maps catalog color names to screen colors.
var colorNames = map[string]core.Color{
	"red":     core.ColorRed,
	"green":   core.ColorGreen,
	"yellow":  core.ColorYellow,
	"blue":    core.ColorBlue,
	"magenta": core.ColorMagenta,
	"cyan":    core.ColorCyan,
	"white":   core.ColorWhite,
	"orange":  core.ColorOrange,
	"gray":    core.ColorGray,
	"brown":   core.ColorBrown,
}

// ScreenColor resolves the block's color name to a screen color.
// Unknown names fall back to the default color.
func (b BlockInfo) ScreenColor() core.Color {
	if c, ok := colorNames[b.Color]; ok {
		return c
	}
	return core.ColorDefault
}

// Block returns the BlockInfo for a kind, or false if the kind is unknown.
func (c *Catalog) Block(kind BlockKind) (BlockInfo, bool) {
	for _, b := range c.Blocks {
		if b.Kind == kind {
			return b, true
		}
	}
	return BlockInfo{}, false
}

// Validate checks the boundary preconditions the game core relies on.
// A catalog that fails validation must be rejected before session start.
func (c *Catalog) Validate() error {
	if len(c.Blocks) == 0 {
		return fmt.Errorf("catalog: no block kinds defined")
	}
	if len(c.Tickets) == 0 {
		return fmt.Errorf("catalog: no ticket templates defined")
	}
	if len(c.Chaos) == 0 {
		return fmt.Errorf("catalog: no chaos templates defined")
	}

	kinds := make(map[BlockKind]bool, len(c.Blocks))
	for _, b := range c.Blocks {
		if b.Kind == "" {
			return fmt.Errorf("catalog: block with empty kind")
		}
		if kinds[b.Kind] {
			return fmt.Errorf("catalog: duplicate block kind %q", b.Kind)
		}
		kinds[b.Kind] = true
	}

	for _, t := range c.Tickets {
		if t.ID == "" {
			return fmt.Errorf("catalog: ticket with empty id")
		}
		if len(t.Options) == 0 {
			return fmt.Errorf("catalog: ticket %s has no options", t.ID)
		}
		found := false
		for _, opt := range t.Options {
			if opt == t.Answer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("catalog: ticket %s answer %q not among options", t.ID, t.Answer)
		}
		if len(t.Blocks) == 0 {
			return fmt.Errorf("catalog: ticket %s requires no blocks", t.ID)
		}
		for _, k := range t.Blocks {
			if !kinds[k] {
				return fmt.Errorf("catalog: ticket %s requires unknown block kind %q", t.ID, k)
			}
		}
		if t.TimeSecs <= 0 {
			return fmt.Errorf("catalog: ticket %s has non-positive time budget", t.ID)
		}
	}

	for _, ch := range c.Chaos {
		if ch.ID == "" {
			return fmt.Errorf("catalog: chaos template with empty id")
		}
		if ch.DurationSecs <= 0 {
			return fmt.Errorf("catalog: chaos %s has non-positive duration", ch.ID)
		}
	}

	return nil
}
