package ticketrush

import (
	"fmt"

	"github.com/vovakirdan/ticket-rush/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar  = '█'
	StationChar = '░'
	WrongMark   = '!'
	BlindChar   = '▒'
)

// facingGlyphs by direction (down, left, up, right).
var facingGlyphs = [...]rune{'v', '<', '^', '>'}

// severityColors maps notification severities to banner colors.
var severityColors = map[core.Severity]core.Color{
	core.SeverityInfo:     core.ColorBrightWhite,
	core.SeveritySuccess:  core.ColorBrightGreen,
	core.SeverityWarning:  core.ColorBrightYellow,
	core.SeverityError:    core.ColorBrightRed,
}

// Render draws the current game state to the screen. All drawing reads
// from the snapshot; the simulation state is never touched here.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()

	minW := int(snap.MapW) + 2
	minH := int(snap.MapH) + 4
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	// Map area is centered below the two HUD rows.
	offX := (dst.Width() - int(snap.MapW)) / 2
	offY := 2

	renderHUD(dst, snap)
	dst.DrawBox(core.NewRect(offX-1, offY-1, int(snap.MapW)+2, int(snap.MapH)+2))

	if snap.Blind {
		renderBlind(dst, snap, offX, offY)
	} else {
		renderStations(dst, snap, offX, offY)
		renderBlocks(dst, snap, offX, offY)
		renderPlayers(dst, snap, offX, offY)
	}

	switch snap.State {
	case StateMenu:
		renderMenu(dst)
	case StateOver:
		renderGameOver(dst, snap)
	default:
		if snap.BoardOpen {
			renderBoardView(dst, snap)
		}
		if snap.SubmitOpen {
			renderSubmitView(dst, snap)
		}
	}

	if snap.Banner != nil {
		renderBanner(dst, snap.Banner)
	}
}

// renderHUD draws the score line and the hint/countdown line.
func renderHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf("Score: %d  Combo: x%d", snap.Score, snap.Combo)
	if snap.Ticket != nil && snap.Ticket.Resolution == ResolutionNone {
		left += fmt.Sprintf("  Ticket: %.0fs", snap.Ticket.Remaining)
	}
	dst.DrawText(1, 0, left)

	if snap.ChaosName != "" {
		chaos := fmt.Sprintf("%s (%.0fs)", snap.ChaosName, snap.ChaosRemaining)
		dst.DrawTextColor(dst.Width()-len(chaos)-1, 0, chaos, core.ColorBrightYellow)
	}

	line := snap.HintText
	if snap.PenaltyRemaining >= 0 {
		line = fmt.Sprintf("TRASH THE WRONG BLOCK! %.0fs  |  %s", snap.PenaltyRemaining, line)
	}
	if snap.DeadlineRemaining >= 0 {
		line = fmt.Sprintf("SUBMIT IN %.0fs  |  %s", snap.DeadlineRemaining, line)
	}
	dst.DrawTextColor(1, 1, line, core.ColorGray)
}

// renderStations draws the fixtures with labels and proximity prompts.
func renderStations(dst *core.Screen, snap Snapshot, offX, offY int) {
	for _, s := range snap.Stations {
		x, y := s.Rect.Cell()
		w := int(s.Rect.W)
		h := int(s.Rect.H)
		if h < 1 {
			h = 1
		}

		color := s.Color
		if s.Highlighted {
			color = core.ColorBrightWhite
		}
		dst.DrawRect(core.NewRect(offX+x, offY+y, w, h), StationChar, color)

		label := s.Label
		if s.Kind == StationShelf && s.BlockLabel != "" {
			label = fmt.Sprintf("[%s]", s.BlockLabel)
		}
		lx := offX + x + (w-len(label))/2
		dst.DrawTextColor(lx, offY+y+h/2, label, color)

		if s.Prompt != "" {
			px := offX + x + (w-len(s.Prompt))/2
			dst.DrawTextColor(px, offY+y-1, s.Prompt, core.ColorBrightGreen)
		}
	}
}

// renderBlocks draws the ground blocks.
func renderBlocks(dst *core.Screen, snap Snapshot, offX, offY int) {
	for _, b := range snap.Ground {
		drawBlock(dst, b, offX, offY)
	}
}

// drawBlock draws one block at its world cell.
func drawBlock(dst *core.Screen, b BlockView, offX, offY int) {
	x, y := b.Rect.Cell()
	label := fmt.Sprintf("[%s]", b.Label)
	color := b.Color
	if b.Wrong {
		label = fmt.Sprintf("[%c%s]", WrongMark, b.Label)
		color = core.ColorBrightRed
	}
	dst.DrawTextColor(offX+x, offY+y, label, color)
}

// renderPlayers draws both players and whatever they hold.
func renderPlayers(dst *core.Screen, snap Snapshot, offX, offY int) {
	for _, p := range snap.Players {
		x, y := p.Rect.Cell()
		w := int(p.Rect.W)
		h := int(p.Rect.H)
		dst.DrawRect(core.NewRect(offX+x, offY+y, w, h), PlayerChar, p.Color)

		// Role initial and facing glyph on the body.
		dst.SetCell(offX+x+w/2, offY+y, rune(p.Role[0]), core.ColorBrightWhite)
		if h > 1 {
			dst.SetCell(offX+x+w/2, offY+y+1, facingGlyphs[p.Facing], core.ColorBrightWhite)
		}
	}

	// Held blocks on top.
	for _, p := range snap.Players {
		if p.Holding != nil {
			drawBlock(dst, *p.Holding, offX, offY)
		}
	}
}

// renderBlind fills the playfield with noise while the view is obstructed.
func renderBlind(dst *core.Screen, snap Snapshot, offX, offY int) {
	dst.DrawRect(core.NewRect(offX, offY, int(snap.MapW), int(snap.MapH)), BlindChar, core.ColorGray)
	dst.DrawTextCentered(offY+int(snap.MapH)/2, "STACK OVERFLOW")
}

// renderMenu draws the start screen over the office floor.
func renderMenu(dst *core.Screen) {
	lines := []string{
		"TICKET RUSH",
		"",
		"P1 READER: WASD move, E interact",
		"P2 COMPILER: arrows move, ENTER interact",
		"",
		"Press SPACE to start",
	}
	drawCenteredPanel(dst, lines)
}

// renderGameOver draws the session summary.
func renderGameOver(dst *core.Screen, snap Snapshot) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Final Score: %d", snap.Summary.FinalScore),
		fmt.Sprintf("Tickets: %d solved, %d failed", snap.Summary.TicketsCorrect, snap.Summary.TicketsFailed),
		"",
		"Press SPACE to restart",
	}
	drawCenteredPanel(dst, lines)
}

// renderBoardView draws the Reader's ticket detail view.
func renderBoardView(dst *core.Screen, snap Snapshot) {
	if snap.Ticket == nil {
		return
	}
	lines := []string{
		fmt.Sprintf("TICKET %s", snap.Ticket.ID),
		"",
		snap.Ticket.Text,
		"",
	}
	for _, opt := range snap.Ticket.Options {
		lines = append(lines, "  "+opt)
	}
	drawCenteredPanel(dst, lines)
}

// renderSubmitView draws the Compiler's numbered answer options.
func renderSubmitView(dst *core.Screen, snap Snapshot) {
	if snap.Ticket == nil {
		return
	}
	lines := []string{
		"SUBMIT ANSWER",
		"",
		snap.Ticket.Text,
		"",
	}
	for i, opt := range snap.Ticket.Options {
		lines = append(lines, fmt.Sprintf("  %d) %s", i+1, opt))
	}
	drawCenteredPanel(dst, lines)
}

// renderBanner draws the transient notification line.
func renderBanner(dst *core.Screen, n *core.Notification) {
	text := fmt.Sprintf(" %s %s ", n.Title, n.Message)
	x := (dst.Width() - len(text)) / 2
	dst.DrawTextColor(x, 2, text, severityColors[n.Severity])
}

// drawCenteredPanel draws a boxed panel with the given lines centered on
// screen.
func drawCenteredPanel(dst *core.Screen, lines []string) {
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	boxW := w + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, l := range lines {
		lx := boxX + (boxW-len(l))/2
		dst.DrawText(lx, boxY+1+i, l)
	}
}
