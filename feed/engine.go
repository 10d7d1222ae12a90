// Package feed tracks scroll position over a vertically snapping list
// of videos and keeps exactly one entry playing at a time.
package feed

import "math"

// Player controls playback of a single feed entry. Play reports
// playback-start rejection (e.g. an autoplay policy); the engine treats
// that as a recoverable state, never an error.
type Player interface {
	Play() error
	Pause()
	Mute()
}

// Engine derives the single active video from the scroll offset. Each
// video occupies exactly one viewport-height slide, so the nearest
// slide is round(offset / viewportHeight). Scroll events arrive on one
// goroutine per view; the engine is not safe for concurrent use.
type Engine struct {
	viewportHeight float64
	videoIDs       []string
	players        map[string]Player
	activeID       string
}

func NewEngine(viewportHeight float64) *Engine {
	return &Engine{
		viewportHeight: viewportHeight,
		players:        make(map[string]Player),
	}
}

// SetVideos replaces the feed sequence, as fetched once on mount. A
// non-empty sequence activates its first entry immediately, before any
// scrolling; an empty one leaves nothing active.
func (e *Engine) SetVideos(ids []string) {
	e.videoIDs = append(e.videoIDs[:0], ids...)
	if len(e.videoIDs) == 0 {
		e.deactivate()
		return
	}
	e.activate(e.videoIDs[0])
}

// Register attaches the player for one feed entry and syncs it with
// the current activation state, so mount order does not matter.
func (e *Engine) Register(id string, p Player) {
	e.players[id] = p
	if id == e.activeID {
		e.play(p)
	} else {
		p.Pause()
	}
}

func (e *Engine) Unregister(id string) {
	delete(e.players, id)
}

// HandleScroll recomputes the active video for a new scroll offset.
// Offsets that round to the current slide are no-ops: no redundant
// activation transitions are emitted.
func (e *Engine) HandleScroll(offset float64) {
	if len(e.videoIDs) == 0 || e.viewportHeight <= 0 {
		return
	}

	index := int(math.Round(offset / e.viewportHeight))
	if index < 0 {
		index = 0
	}
	if index >= len(e.videoIDs) {
		index = len(e.videoIDs) - 1
	}

	e.activate(e.videoIDs[index])
}

// SetViewportHeight adjusts the slide height after a viewport resize.
func (e *Engine) SetViewportHeight(h float64) {
	e.viewportHeight = h
}

// ActiveID returns the id of the video whose playback is running, or
// "" when the feed is empty.
func (e *Engine) ActiveID() string {
	return e.activeID
}

func (e *Engine) activate(id string) {
	if id == e.activeID {
		return
	}

	if prev, ok := e.players[e.activeID]; ok {
		prev.Pause()
	}
	e.activeID = id
	if p, ok := e.players[id]; ok {
		e.play(p)
	}
}

func (e *Engine) deactivate() {
	if prev, ok := e.players[e.activeID]; ok {
		prev.Pause()
	}
	e.activeID = ""
}

// play starts playback, falling back to a muted paused state when the
// start is rejected.
func (e *Engine) play(p Player) {
	if err := p.Play(); err != nil {
		p.Mute()
		p.Pause()
	}
}
