package feed

import (
	"errors"
	"testing"
)

type fakePlayer struct {
	playCalls  int
	pauseCalls int
	muteCalls  int
	playErr    error
}

func (p *fakePlayer) Play() error {
	p.playCalls++
	return p.playErr
}

func (p *fakePlayer) Pause() { p.pauseCalls++ }
func (p *fakePlayer) Mute()  { p.muteCalls++ }

func newTestEngine(viewport float64, ids ...string) (*Engine, map[string]*fakePlayer) {
	e := NewEngine(viewport)
	players := make(map[string]*fakePlayer, len(ids))
	for _, id := range ids {
		p := &fakePlayer{}
		players[id] = p
		e.Register(id, p)
	}
	e.SetVideos(ids)
	return e, players
}

func TestScrollActivation(t *testing.T) {
	const h = 800.0
	e, players := newTestEngine(h, "a", "b", "c")

	t.Run("FirstVideoActiveOnLoad", func(t *testing.T) {
		if got := e.ActiveID(); got != "a" {
			t.Fatalf("active after load = %q, want %q", got, "a")
		}
		if players["a"].playCalls != 1 {
			t.Fatalf("player a play calls = %d, want 1", players["a"].playCalls)
		}
	})

	t.Run("OffsetZeroKeepsFirst", func(t *testing.T) {
		e.HandleScroll(0)
		if got := e.ActiveID(); got != "a" {
			t.Fatalf("active at offset 0 = %q, want %q", got, "a")
		}
	})

	t.Run("NearestSlideRounding", func(t *testing.T) {
		e.HandleScroll(1.4 * h)
		if got := e.ActiveID(); got != "b" {
			t.Fatalf("active at 1.4*H = %q, want %q", got, "b")
		}
		if players["a"].pauseCalls == 0 {
			t.Fatal("previous active video was not paused")
		}

		e.HandleScroll(2.6 * h)
		if got := e.ActiveID(); got != "c" {
			t.Fatalf("active at 2.6*H = %q, want %q", got, "c")
		}
	})

	t.Run("RepeatedEventsAreIdempotent", func(t *testing.T) {
		before := players["c"].playCalls
		for i := 0; i < 5; i++ {
			e.HandleScroll(2.6 * h)
		}
		if players["c"].playCalls != before {
			t.Fatalf("redundant activation: play calls went from %d to %d", before, players["c"].playCalls)
		}
	})

	t.Run("OffsetClampedToSequence", func(t *testing.T) {
		e.HandleScroll(10 * h)
		if got := e.ActiveID(); got != "c" {
			t.Fatalf("active beyond last slide = %q, want %q", got, "c")
		}
		e.HandleScroll(-h)
		if got := e.ActiveID(); got != "a" {
			t.Fatalf("active below first slide = %q, want %q", got, "a")
		}
	})
}

func TestEmptyFeed(t *testing.T) {
	e := NewEngine(800)
	e.SetVideos(nil)

	if got := e.ActiveID(); got != "" {
		t.Fatalf("active on empty feed = %q, want none", got)
	}

	// Scroll noise against an empty feed must stay inert.
	e.HandleScroll(400)
	if got := e.ActiveID(); got != "" {
		t.Fatalf("active after scroll on empty feed = %q, want none", got)
	}
}

func TestSingleVideoStableUnderScrollNoise(t *testing.T) {
	e, players := newTestEngine(800, "only")

	for _, offset := range []float64{0, 12.5, 300, 799, 1600, -40} {
		e.HandleScroll(offset)
		if got := e.ActiveID(); got != "only" {
			t.Fatalf("active at offset %v = %q, want %q", offset, got, "only")
		}
	}
	if players["only"].playCalls != 1 {
		t.Fatalf("play calls = %d, want 1", players["only"].playCalls)
	}
}

func TestAutoplayRejectionFallsBackToMutedPause(t *testing.T) {
	e := NewEngine(800)
	blocked := &fakePlayer{playErr: errors.New("autoplay blocked")}
	e.Register("a", blocked)
	e.SetVideos([]string{"a"})

	if blocked.muteCalls != 1 || blocked.pauseCalls == 0 {
		t.Fatalf("rejected playback should mute and pause, got mutes=%d pauses=%d",
			blocked.muteCalls, blocked.pauseCalls)
	}
	if got := e.ActiveID(); got != "a" {
		t.Fatalf("rejected playback should not clear activation, active = %q", got)
	}
}

func TestLateRegistrationSyncsState(t *testing.T) {
	e := NewEngine(800)
	e.SetVideos([]string{"a", "b"})

	late := &fakePlayer{}
	e.Register("a", late)
	if late.playCalls != 1 {
		t.Fatalf("late-registered active player play calls = %d, want 1", late.playCalls)
	}

	idle := &fakePlayer{}
	e.Register("b", idle)
	if idle.playCalls != 0 || idle.pauseCalls != 1 {
		t.Fatalf("late-registered inactive player got plays=%d pauses=%d", idle.playCalls, idle.pauseCalls)
	}
}
