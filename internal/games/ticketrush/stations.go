package ticketrush

import (
	"github.com/vovakirdan/ticket-rush/internal/catalog"
	"github.com/vovakirdan/ticket-rush/internal/core"
)

// buildStations lays out the fixed fixtures: board at the top, shelves in
// the middle row, desk and bin at the bottom. Shelves are created for
// every block kind that appears in at least one ticket's requirements,
// in catalog order.
func (g *Game) buildStations() {
	g.stations = g.stations[:0]

	g.stations = append(g.stations, &Station{
		Kind:  StationBoard,
		Rect:  core.NewRectF(g.mapW/2-7, 0.5, 14, 2.5),
		Label: "TICKET BOARD",
		Color: core.ColorCyan,
	})
	g.stations = append(g.stations, &Station{
		Kind:  StationDesk,
		Rect:  core.NewRectF(g.mapW/2-9, g.mapH-3.5, 18, 3),
		Label: "COMPILER DESK",
		Color: core.ColorMagenta,
	})
	g.stations = append(g.stations, &Station{
		Kind:  StationBin,
		Rect:  core.NewRectF(g.mapW-8, g.mapH-3.5, 6, 3),
		Label: "TRASH",
		Color: core.ColorGray,
	})

	kinds := g.shelfKinds()
	if len(kinds) == 0 {
		return
	}
	spacing := g.mapW / float64(len(kinds)+1)
	for i, kind := range kinds {
		info, _ := g.content.Block(kind)
		g.stations = append(g.stations, &Station{
			Kind:      StationShelf,
			Rect:      core.NewRectF(spacing*float64(i+1)-3, 6, 6, 2),
			Label:     "SHELF",
			Color:     info.ScreenColor(),
			BlockKind: kind,
		})
	}
}

// shelfKinds returns the block kinds required by any ticket, in catalog
// block order.
func (g *Game) shelfKinds() []catalog.BlockKind {
	required := make(map[catalog.BlockKind]bool)
	for _, t := range g.content.Tickets {
		for _, k := range t.Blocks {
			required[k] = true
		}
	}

	var kinds []catalog.BlockKind
	for _, b := range g.content.Blocks {
		if required[b.Kind] {
			kinds = append(kinds, b.Kind)
		}
	}
	return kinds
}

// findNearbyStation returns the first station (catalog order, first match
// wins) whose rectangle intersects the player's rectangle expanded by the
// interaction buffer. Returns nil if none is in range.
func (g *Game) findNearbyStation(p *Player) *Station {
	probe := p.Rect.Expand(g.cfg.Interaction.Buffer)
	for _, s := range g.stations {
		if probe.Intersects(s.Rect) {
			return s
		}
	}
	return nil
}

// findNearbyBlock returns the first ground block directly overlapping the
// player (no buffer). Returns nil if none.
func (g *Game) findNearbyBlock(p *Player) *Block {
	for _, b := range g.ground {
		if p.Rect.Intersects(b.Rect) {
			return b
		}
	}
	return nil
}

// refreshHighlights recomputes the transient station highlight flags and
// prompts from current player proximity. Called every tick; stale state
// never survives a tick.
func (g *Game) refreshHighlights() {
	for _, s := range g.stations {
		s.Highlighted = false
		s.Prompt = ""
	}

	for _, p := range g.players {
		s := g.findNearbyStation(p)
		if s == nil {
			continue
		}
		s.Highlighted = true
		if p.ID == core.Player1 {
			s.Prompt = "PRESS E"
		} else {
			s.Prompt = "PRESS ENTER"
		}
	}
}
