package ticketrush

import (
	"testing"

	"github.com/vovakirdan/ticket-rush/internal/catalog"
	"github.com/vovakirdan/ticket-rush/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

// newPlayingGame returns a game with a running session.
func newPlayingGame() *Game {
	g := New()
	g.Reset(testConfig())
	g.startSession()
	return g
}

// releaseInput builds a frame with a single release edge for one player.
func releaseInput(id core.PlayerID, a core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	f := core.NewInputFrame()
	f.Release(a)
	in.SetPlayer(id, f)
	return in
}

// holdInput builds a frame with held actions for one player.
func holdInput(id core.PlayerID, actions ...core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	in.SetPlayer(id, f)
	return in
}

func TestGameStartsInMenu(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if g.state != StateMenu {
		t.Errorf("Game should start in menu state, got %s", g.state)
	}
	if g.State().Started {
		t.Error("Game should not report started in menu state")
	}
	if len(g.players) != 2 {
		t.Errorf("Level should have 2 players, got %d", len(g.players))
	}
	if len(g.stations) == 0 {
		t.Error("Level should have stations built in menu state")
	}
}

func TestStartOnRelease(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.Step(releaseInput(core.Player1, core.ActionStart))

	if g.state != StatePlaying {
		t.Errorf("Start release should begin the session, got %s", g.state)
	}
	if g.ticket == nil {
		t.Error("Session start should spawn a ticket")
	}
	if g.score != 0 || g.combo != 1 {
		t.Errorf("Fresh session should have score 0 combo 1, got %d/%d", g.score, g.combo)
	}
}

func TestTicketExpiryEndsSession(t *testing.T) {
	g := newPlayingGame()

	g.ticket.ExpiresAt = g.now
	g.Step(core.NewMultiInputFrame())

	if g.state != StateOver {
		t.Errorf("Ticket expiry should end the session, got %s", g.state)
	}
	if g.endReason != EndTicketExpired {
		t.Errorf("End reason should be %s, got %s", EndTicketExpired, g.endReason)
	}
	if g.sched.len() != 0 {
		t.Errorf("Termination should cancel pending actions, %d remain", g.sched.len())
	}
}

func TestPenaltyExpiryEndsSession(t *testing.T) {
	g := newPlayingGame()

	g.penalty = &penaltyTimer{expiresAt: g.now}
	g.Step(core.NewMultiInputFrame())

	if g.state != StateOver {
		t.Errorf("Penalty expiry should end the session, got %s", g.state)
	}
	if g.endReason != EndPenaltyExpired {
		t.Errorf("End reason should be %s, got %s", EndPenaltyExpired, g.endReason)
	}
}

func TestDeadlineExpiryEndsSession(t *testing.T) {
	g := newPlayingGame()

	d := g.now
	g.deadline = &d
	g.Step(core.NewMultiInputFrame())

	if g.state != StateOver {
		t.Errorf("Deadline expiry should end the session, got %s", g.state)
	}
	if g.endReason != EndDeadlineExpired {
		t.Errorf("End reason should be %s, got %s", EndDeadlineExpired, g.endReason)
	}
	if g.submitOpen || g.boardOpen {
		t.Error("Termination should close interaction views")
	}
}

func TestExpiryBeforeInteraction(t *testing.T) {
	// A tick in which the ticket expires must not process interactions.
	g := newPlayingGame()
	g.ticket.ExpiresAt = g.now

	in := releaseInput(core.Player2, core.ActionInteract)
	g.Step(in)

	if g.state != StateOver {
		t.Errorf("Session should be over, got %s", g.state)
	}
	for _, p := range g.players {
		if p.Holding != nil {
			t.Error("No interaction should resolve on the terminating tick")
		}
	}
}

func TestRestartResetsEverything(t *testing.T) {
	g := newPlayingGame()

	g.score = 500
	g.combo = 4
	g.penalty = &penaltyTimer{expiresAt: g.now + 5}
	g.terminate(EndTicketExpired)

	g.Step(releaseInput(core.Player2, core.ActionStart))

	if g.state != StatePlaying {
		t.Errorf("Restart should return to playing, got %s", g.state)
	}
	if g.score != 0 || g.combo != 1 {
		t.Errorf("Restart should reset score and combo, got %d/%d", g.score, g.combo)
	}
	if g.penalty != nil || g.chaos != nil || g.deadline != nil {
		t.Error("Restart should disarm all timers")
	}
	if g.now != 0 {
		t.Errorf("Restart should reset the clock, got %f", g.now)
	}
	if g.ticket == nil {
		t.Error("Restart should spawn a fresh ticket")
	}
}

func TestSpeedChaosAcceleratesTicket(t *testing.T) {
	g := newPlayingGame()
	g.chaos = &chaosWindow{
		tmpl:      catalog.ChaosTemplate{ID: catalog.ChaosSpeed, Name: "DEPLOY FRIDAY", DurationSecs: 7},
		expiresAt: g.now + 7,
	}

	before := g.ticket.ExpiresAt
	g.Step(core.NewMultiInputFrame())

	// The deadline moves one extra dt closer per tick while SPEED is
	// active, so remaining time shrinks at twice the clock rate.
	if got, want := g.ticket.ExpiresAt, before-g.dt; got != want {
		t.Errorf("SPEED should advance the expiry by dt, got %f want %f", got, want)
	}
}

func TestChaosExpiryKeepsPlaying(t *testing.T) {
	g := newPlayingGame()
	g.chaos = &chaosWindow{
		tmpl:      catalog.ChaosTemplate{ID: catalog.ChaosSlow, DurationSecs: 10},
		expiresAt: g.now,
	}

	g.Step(core.NewMultiInputFrame())

	if g.state != StatePlaying {
		t.Errorf("Chaos expiry should never end the session, got %s", g.state)
	}
	if g.chaos != nil {
		t.Error("Expired chaos modifier should deactivate")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testConfig()

	script := func(i int) core.MultiInputFrame {
		switch {
		case i == 0:
			return releaseInput(core.Player1, core.ActionStart)
		case i%7 < 3:
			return holdInput(core.Player1, core.ActionRight, core.ActionDown)
		case i%11 == 0:
			return releaseInput(core.Player2, core.ActionInteract)
		default:
			return holdInput(core.Player2, core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for i := 0; i < 300; i++ {
			if res := g.Step(script(i)); res.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()

	if s1.Score != s2.Score {
		t.Errorf("Determinism failed: scores differ %d vs %d", s1.Score, s2.Score)
	}
	if s1.Now != s2.Now {
		t.Errorf("Determinism failed: clocks differ %f vs %f", s1.Now, s2.Now)
	}
	if len(s1.Players) != len(s2.Players) {
		t.Fatalf("Determinism failed: player counts differ")
	}
	for i := range s1.Players {
		if s1.Players[i].Rect != s2.Players[i].Rect {
			t.Errorf("Determinism failed: player %d rects differ %+v vs %+v",
				i, s1.Players[i].Rect, s2.Players[i].Rect)
		}
	}
	if (s1.Ticket == nil) != (s2.Ticket == nil) {
		t.Error("Determinism failed: ticket presence differs")
	} else if s1.Ticket != nil && s1.Ticket.ID != s2.Ticket.ID {
		t.Errorf("Determinism failed: ticket ids differ %s vs %s", s1.Ticket.ID, s2.Ticket.ID)
	}
}

func TestGameRender(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("Render should draw something to the screen")
	}
}

func TestSummaryAfterTermination(t *testing.T) {
	g := newPlayingGame()
	g.score = 300
	g.ticketsCorrect = 3
	g.ticketsFailed = 1
	g.comboPeak = 3
	g.terminate(EndPenaltyExpired)

	s := g.Summary()
	if s.FinalScore != 300 || s.TicketsCorrect != 3 || s.TicketsFailed != 1 {
		t.Errorf("Summary should carry session stats, got %+v", s)
	}
	if s.EndReason != EndPenaltyExpired {
		t.Errorf("Summary end reason should be %s, got %s", EndPenaltyExpired, s.EndReason)
	}
}
