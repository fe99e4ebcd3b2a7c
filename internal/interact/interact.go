// Package interact implements proximity-based interaction: world objects
// that offer a player-facing action behind a prompt, and the per-tick
// selector that focuses the nearest one and dispatches input to it.
//
// The package is engine-free. Positions, input edges, pause state, and the
// point/ammo/health services are supplied by the host through the small
// interfaces below; entries receive their collaborators at construction.
package interact

import (
	"github.com/undeadbits/outbreak/internal/core"
)

// RequestAll asks a sink to fill to capacity. Sinks treat any negative
// request as unbounded and clamp to their maximum.
const RequestAll = -1

// PointLedger is the player's spendable point balance. Warn carries
// player-facing messages (insufficient points, full sinks) to the HUD.
type PointLedger interface {
	Balance() int
	Adjust(delta int)
	Warn(msg string)
}

// AmmoSink is a mutable ammo reserve that accepts additions up to capacity.
type AmmoSink interface {
	// Ammo returns the current and maximum ammo.
	Ammo() (current, max int)
	// AddAmmo adds up to request rounds (RequestAll fills to capacity)
	// and returns the quantity actually added.
	AddAmmo(request int) int
}

// HealthSink is a mutable health pool.
type HealthSink interface {
	// Health returns the current and maximum health.
	Health() (current, max int)
	// AddHealth heals up to request points (RequestAll fills to capacity)
	// and returns the quantity actually healed.
	AddHealth(request int) int
	// TakeDamage removes health.
	TakeDamage(amount int)
}

// Interactor is the acting player as seen by an interactable entry.
// Entries resolve their target sink against it when they carry no cached
// sink of their own.
type Interactor interface {
	AmmoSink() AmmoSink
	HealthSink() HealthSink
}

// PromptSink displays the focused entry's prompt text.
type PromptSink interface {
	ShowPrompt(text string)
	HidePrompt()
	PromptShown() bool
}

// Interactable is a world object offering a player action gated by a
// prompt and a key. The action key is part of the static contract; there
// is no runtime capability inspection beyond the initial type assertion
// the selector performs on query results.
type Interactable interface {
	// Prompt returns the current user-facing text. It may vary with the
	// entry's state (a chest reads differently open and closed).
	Prompt() string

	// ActionKey returns the input action that triggers this entry.
	ActionKey() core.Action

	// Interact performs the entry's action on behalf of who.
	// It returns true on success; on failure all prior state is left
	// unchanged except where an entry explicitly degrades.
	Interact(who Interactor) bool
}

// PauseFunc reports the host's global pause state.
type PauseFunc func() bool

// Candidate is one result of a spatial proximity query: a world object
// and its position. The object may or may not implement Interactable;
// the selector silently skips those that do not.
type Candidate struct {
	Object   any
	Position core.Vec2
}

// QueryFunc returns at most max objects within radius of origin.
// Implementations must return candidates in a stable order (the survival
// world uses ascending spawn order); the selector breaks distance ties in
// favor of the first candidate returned.
type QueryFunc func(origin core.Vec2, radius float64, max int) []Candidate
