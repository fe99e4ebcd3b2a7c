package interact

import (
	"fmt"

	"github.com/undeadbits/outbreak/internal/core"
)

// ChestConfig configures a chest entry.
type ChestConfig struct {
	Key        core.Action // defaults to ActionInteract
	HealthCost int         // HP taken on the closed-to-open transition

	Sink     HealthSink       // optional cached sink, wins over the interactor's
	OnToggle func(open bool)  // animation signal on every state change
}

// Chest is a stateful interactable with no point cost: opening it costs
// health, closing it is free. It never consumes itself; it toggles.
type Chest struct {
	cfg    ChestConfig
	ledger PointLedger // warnings only, never debited
	paused PauseFunc
	open   bool
}

// NewChest creates a closed chest. The ledger is used only as the warning
// channel.
func NewChest(ledger PointLedger, paused PauseFunc, cfg ChestConfig) *Chest {
	if cfg.Key == core.ActionNone {
		cfg.Key = core.ActionInteract
	}
	return &Chest{cfg: cfg, ledger: ledger, paused: paused}
}

// IsOpen reports the chest's current state.
func (c *Chest) IsOpen() bool {
	return c.open
}

// Prompt depends on state: opening advertises the health cost, closing
// is free.
func (c *Chest) Prompt() string {
	if c.open {
		return "Press E to close"
	}
	return fmt.Sprintf("Press E to open (costs %d HP)", c.cfg.HealthCost)
}

// ActionKey returns the triggering input action.
func (c *Chest) ActionKey() core.Action {
	return c.cfg.Key
}

// Interact toggles the chest. Opening takes HealthCost from the health
// sink and is refused when the player could not survive it. When no sink
// resolves at all the chest degrades: it opens anyway, cost skipped, with
// a warning. (Pickups hard-fail in the same situation; the asymmetry is
// deliberate, see DESIGN.md.)
func (c *Chest) Interact(who Interactor) bool {
	if c.paused != nil && c.paused() {
		return false
	}

	if c.open {
		c.open = false
		if c.cfg.OnToggle != nil {
			c.cfg.OnToggle(false)
		}
		return true
	}

	sink := c.cfg.Sink
	if sink == nil && who != nil {
		sink = who.HealthSink()
	}
	if sink == nil {
		c.warn("The chest opens freely - nothing to take a toll from.")
	} else {
		cur, _ := sink.Health()
		if cur <= c.cfg.HealthCost {
			c.warn(fmt.Sprintf("Not enough health! Opening costs %d HP.", c.cfg.HealthCost))
			return false
		}
		sink.TakeDamage(c.cfg.HealthCost)
	}

	c.open = true
	if c.cfg.OnToggle != nil {
		c.cfg.OnToggle(true)
	}
	return true
}

func (c *Chest) warn(msg string) {
	if c.ledger != nil {
		c.ledger.Warn(msg)
	}
}
