package interact

import (
	"github.com/undeadbits/outbreak/internal/core"
)

// Selector chooses the nearest in-range interactable each tick and routes
// input to it. At most one entry is focused at a time and at most one
// action is invoked per tick.
type Selector struct {
	query  QueryFunc
	paused PauseFunc
	sinks  []PromptSink

	radius        float64
	maxCandidates int

	focused       Interactable
	lastKey       core.Action
	promptVisible bool
}

// NewSelector creates a selector over the given proximity query.
// maxCandidates bounds the per-tick query result (the source capped it
// at 3); radius is the interaction range in cells.
func NewSelector(query QueryFunc, paused PauseFunc, radius float64, maxCandidates int) *Selector {
	if maxCandidates <= 0 {
		maxCandidates = 3
	}
	return &Selector{
		query:         query,
		paused:        paused,
		radius:        radius,
		maxCandidates: maxCandidates,
		lastKey:       core.ActionNone,
	}
}

// AddPromptSink registers a display for the focused entry's prompt text.
func (s *Selector) AddPromptSink(sink PromptSink) {
	s.sinks = append(s.sinks, sink)
}

// Focused returns the currently focused entry, or nil.
func (s *Selector) Focused() Interactable {
	return s.focused
}

// LastKey returns the action key of the focused entry, or ActionNone when
// nothing is in range.
func (s *Selector) LastKey() core.Action {
	return s.lastKey
}

// Tick runs one selection pass from origin and dispatches input on behalf
// of who. It returns true if the focused entry's action was invoked this
// tick (successfully or not).
//
// While the host is paused no query runs, any displayed prompt is closed,
// and focus is cleared so that unpausing re-selects from scratch.
func (s *Selector) Tick(origin core.Vec2, who Interactor, input core.InputFrame) bool {
	if s.paused != nil && s.paused() {
		s.clearFocus()
		return false
	}

	best := s.selectNearest(origin)
	if best == nil {
		// Both "nothing in range" and "nothing in range implements the
		// capability" collapse to the same clear path.
		s.clearFocus()
		return false
	}

	s.focused = best
	s.showPrompt(best.Prompt())

	key := best.ActionKey()
	if key == core.ActionNone {
		key = core.ActionInteract
	}
	s.lastKey = key

	// Input frames are edge-triggered: an action is present only on the
	// tick its key was freshly pressed, so this invokes exactly once per
	// physical press.
	if input.Has(key) {
		best.Interact(who)
		return true
	}
	return false
}

// selectNearest returns the minimum-distance capability-bearing candidate,
// or nil. Strict comparison keeps the first of equally distant candidates,
// which is deterministic because the query returns stable spawn order.
func (s *Selector) selectNearest(origin core.Vec2) Interactable {
	candidates := s.query(origin, s.radius, s.maxCandidates)

	var best Interactable
	bestDist := 0.0
	for _, c := range candidates {
		entry, ok := c.Object.(Interactable)
		if !ok {
			continue
		}
		d := origin.DistSq(c.Position)
		if best == nil || d < bestDist {
			best = entry
			bestDist = d
		}
	}
	return best
}

// clearFocus drops the focused entry and hides prompts. Hiding happens at
// most once per show, so repeated ticks with an empty world produce no
// duplicate hide calls.
func (s *Selector) clearFocus() {
	s.focused = nil
	s.lastKey = core.ActionNone
	if !s.promptVisible {
		return
	}
	s.promptVisible = false
	for _, sink := range s.sinks {
		sink.HidePrompt()
	}
}

func (s *Selector) showPrompt(text string) {
	s.promptVisible = true
	for _, sink := range s.sinks {
		sink.ShowPrompt(text)
	}
}
