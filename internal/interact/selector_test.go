package interact

import (
	"testing"

	"github.com/undeadbits/outbreak/internal/core"
)

func TestEmptyWorldClearsFocusAndHidesOnce(t *testing.T) {
	prompt := &fakePromptSink{}
	entry := &stubEntry{prompt: "use"}

	results := []Candidate{{Object: entry, Position: core.Vec2{X: 1}}}
	query := func(origin core.Vec2, radius float64, max int) []Candidate {
		return results
	}

	sel := NewSelector(query, nil, 2.0, 3)
	sel.AddPromptSink(prompt)

	sel.Tick(core.Vec2{}, nil, core.NewInputFrame())
	if !prompt.shown {
		t.Fatal("prompt should be shown while an entry is focused")
	}

	// The entry walks out of range; repeated ticks against the now-empty
	// world produce exactly one hide and no further mutation.
	results = nil
	for i := 0; i < 5; i++ {
		sel.Tick(core.Vec2{}, nil, core.NewInputFrame())
	}

	if sel.Focused() != nil {
		t.Error("focus should be nil with no candidates")
	}
	if sel.LastKey() != core.ActionNone {
		t.Error("last key should reset with no candidates")
	}
	if prompt.hideCalls != 1 {
		t.Errorf("hideCalls = %d, expected exactly 1", prompt.hideCalls)
	}
	if prompt.shown {
		t.Error("prompt should be hidden")
	}
}

func TestCapabilityLessCandidatesClearFocus(t *testing.T) {
	prompt := &fakePromptSink{}
	candidates := []Candidate{
		{Object: &bareObject{}, Position: core.Vec2{X: 1}},
		{Object: &bareObject{}, Position: core.Vec2{X: 2}},
	}
	sel := NewSelector(staticQuery(candidates), nil, 5.0, 3)
	sel.AddPromptSink(prompt)
	sel.showPrompt("stale")

	sel.Tick(core.Vec2{}, nil, core.NewInputFrame())

	if sel.Focused() != nil {
		t.Error("colliders without the capability should not take focus")
	}
	if prompt.shown {
		t.Error("prompt should be hidden when nothing implements the capability")
	}
	if prompt.hideCalls != 1 {
		t.Errorf("hideCalls = %d, expected 1", prompt.hideCalls)
	}
}

func TestNearestCandidateWins(t *testing.T) {
	near := &stubEntry{prompt: "near"}
	far := &stubEntry{prompt: "far"}
	candidates := []Candidate{
		{Object: far, Position: core.Vec2{X: 3}},
		{Object: near, Position: core.Vec2{X: 1}},
		{Object: &bareObject{}, Position: core.Vec2{X: 0.5}}, // closest but not interactable
	}
	prompt := &fakePromptSink{}
	sel := NewSelector(staticQuery(candidates), nil, 5.0, 3)
	sel.AddPromptSink(prompt)

	sel.Tick(core.Vec2{}, nil, core.NewInputFrame())

	if sel.Focused() != Interactable(near) {
		t.Error("nearest capability-bearing candidate should be focused")
	}
	if prompt.lastText != "near" {
		t.Errorf("prompt = %q, expected %q", prompt.lastText, "near")
	}
}

func TestDistanceTieKeepsQueryOrder(t *testing.T) {
	first := &stubEntry{prompt: "first"}
	second := &stubEntry{prompt: "second"}
	candidates := []Candidate{
		{Object: first, Position: core.Vec2{X: 2}},
		{Object: second, Position: core.Vec2{X: -2}},
	}
	sel := NewSelector(staticQuery(candidates), nil, 5.0, 3)

	sel.Tick(core.Vec2{}, nil, core.NewInputFrame())

	if sel.Focused() != Interactable(first) {
		t.Error("equal distances should resolve to the first candidate in query order")
	}
}

func TestEdgeTriggeredDispatch(t *testing.T) {
	entry := &stubEntry{prompt: "use", succeed: true}
	sel := NewSelector(staticQuery([]Candidate{{Object: entry, Position: core.Vec2{X: 1}}}), nil, 5.0, 3)

	// No press: focus but no invocation.
	sel.Tick(core.Vec2{}, nil, core.NewInputFrame())
	if entry.invoked != 0 {
		t.Fatalf("invoked = %d before any press", entry.invoked)
	}

	// Press tick: exactly one invocation.
	if !sel.Tick(core.Vec2{}, nil, frameWith(core.ActionInteract)) {
		t.Error("Tick should report dispatch on press")
	}
	if entry.invoked != 1 {
		t.Errorf("invoked = %d, expected 1", entry.invoked)
	}

	// Following empty frames: no repeat while focus is held.
	sel.Tick(core.Vec2{}, nil, core.NewInputFrame())
	sel.Tick(core.Vec2{}, nil, core.NewInputFrame())
	if entry.invoked != 1 {
		t.Errorf("invoked = %d after idle ticks, expected still 1", entry.invoked)
	}
}

func TestKeyOverrideRouting(t *testing.T) {
	entry := &stubEntry{prompt: "special", key: core.ActionConfirm}
	sel := NewSelector(staticQuery([]Candidate{{Object: entry, Position: core.Vec2{X: 1}}}), nil, 5.0, 3)

	// Default key does nothing for an overridden entry.
	sel.Tick(core.Vec2{}, nil, frameWith(core.ActionInteract))
	if entry.invoked != 0 {
		t.Error("default key should not trigger an entry with an overridden key")
	}

	sel.Tick(core.Vec2{}, nil, frameWith(core.ActionConfirm))
	if entry.invoked != 1 {
		t.Error("overridden key should trigger the entry")
	}
	if sel.LastKey() != core.ActionConfirm {
		t.Errorf("LastKey = %v, expected ActionConfirm", sel.LastKey())
	}
}

func TestPauseSuppressesQueryAndClosesPrompts(t *testing.T) {
	entry := &stubEntry{prompt: "use"}
	queryCalls := 0
	query := func(origin core.Vec2, radius float64, max int) []Candidate {
		queryCalls++
		return []Candidate{{Object: entry, Position: core.Vec2{X: 1}}}
	}

	paused := false
	prompt := &fakePromptSink{}
	sel := NewSelector(query, func() bool { return paused }, 5.0, 3)
	sel.AddPromptSink(prompt)

	sel.Tick(core.Vec2{}, nil, core.NewInputFrame())
	if queryCalls != 1 || !prompt.shown {
		t.Fatal("unpaused tick should query and show prompt")
	}

	paused = true
	sel.Tick(core.Vec2{}, nil, frameWith(core.ActionInteract))
	if queryCalls != 1 {
		t.Error("paused tick should not query")
	}
	if prompt.shown {
		t.Error("paused tick should close prompts")
	}
	if entry.invoked != 0 {
		t.Error("paused tick should not dispatch")
	}

	// Resume: behavior returns to normal.
	paused = false
	sel.Tick(core.Vec2{}, nil, core.NewInputFrame())
	if queryCalls != 2 || !prompt.shown {
		t.Error("unpausing should resume querying and prompting")
	}
}

func TestQueryBoundRespected(t *testing.T) {
	big := make([]Candidate, 10)
	for i := range big {
		big[i] = Candidate{Object: &bareObject{}, Position: core.Vec2{X: float64(i)}}
	}
	var seen int
	query := func(origin core.Vec2, radius float64, max int) []Candidate {
		seen = max
		if len(big) > max {
			return big[:max]
		}
		return big
	}

	sel := NewSelector(query, nil, 5.0, 3)
	sel.Tick(core.Vec2{}, nil, core.NewInputFrame())

	if seen != 3 {
		t.Errorf("query max = %d, expected 3", seen)
	}
}
