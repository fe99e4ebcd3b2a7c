package interact

import (
	"github.com/undeadbits/outbreak/internal/core"
)

// Test doubles shared by the package tests.

type fakeLedger struct {
	balance      int
	adjustments  []int
	warnings     []string
	balanceReads int
}

func (l *fakeLedger) Balance() int {
	l.balanceReads++
	return l.balance
}

func (l *fakeLedger) Adjust(delta int) {
	l.balance += delta
	l.adjustments = append(l.adjustments, delta)
}

func (l *fakeLedger) Warn(msg string) {
	l.warnings = append(l.warnings, msg)
}

func (l *fakeLedger) lastWarning() string {
	if len(l.warnings) == 0 {
		return ""
	}
	return l.warnings[len(l.warnings)-1]
}

type fakeAmmoSink struct {
	current  int
	max      int
	requests []int
}

func (s *fakeAmmoSink) Ammo() (int, int) {
	return s.current, s.max
}

func (s *fakeAmmoSink) AddAmmo(request int) int {
	s.requests = append(s.requests, request)
	room := s.max - s.current
	if room <= 0 {
		return 0
	}
	added := room
	if request >= 0 && request < room {
		added = request
	}
	s.current += added
	return added
}

type fakeHealthSink struct {
	current int
	max     int
	damage  []int
}

func (s *fakeHealthSink) Health() (int, int) {
	return s.current, s.max
}

func (s *fakeHealthSink) AddHealth(request int) int {
	room := s.max - s.current
	if room <= 0 {
		return 0
	}
	healed := room
	if request >= 0 && request < room {
		healed = request
	}
	s.current += healed
	return healed
}

func (s *fakeHealthSink) TakeDamage(amount int) {
	s.damage = append(s.damage, amount)
	s.current -= amount
}

type fakeInteractor struct {
	ammo   *fakeAmmoSink
	health *fakeHealthSink
}

func (f *fakeInteractor) AmmoSink() AmmoSink {
	if f.ammo == nil {
		return nil
	}
	return f.ammo
}

func (f *fakeInteractor) HealthSink() HealthSink {
	if f.health == nil {
		return nil
	}
	return f.health
}

type fakePromptSink struct {
	shown     bool
	lastText  string
	showCalls int
	hideCalls int
}

func (p *fakePromptSink) ShowPrompt(text string) {
	p.shown = true
	p.lastText = text
	p.showCalls++
}

func (p *fakePromptSink) HidePrompt() {
	p.shown = false
	p.hideCalls++
}

func (p *fakePromptSink) PromptShown() bool {
	return p.shown
}

// stubEntry is a minimal interactable for selector tests.
type stubEntry struct {
	prompt    string
	key       core.Action
	invoked   int
	succeed   bool
}

func (e *stubEntry) Prompt() string {
	return e.prompt
}

func (e *stubEntry) ActionKey() core.Action {
	if e.key == core.ActionNone {
		return core.ActionInteract
	}
	return e.key
}

func (e *stubEntry) Interact(who Interactor) bool {
	e.invoked++
	return e.succeed
}

// bareObject implements nothing; it stands in for colliders without the
// interactable capability.
type bareObject struct{}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func staticQuery(candidates []Candidate) QueryFunc {
	return func(origin core.Vec2, radius float64, max int) []Candidate {
		if len(candidates) > max {
			return candidates[:max]
		}
		return candidates
	}
}
