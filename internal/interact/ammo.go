package interact

import (
	"fmt"

	"github.com/undeadbits/outbreak/internal/core"
)

// AmmoPickupConfig configures an ammo pickup entry.
type AmmoPickupConfig struct {
	Prompt string      // user-facing text, e.g. "buy ammo"
	Key    core.Action // defaults to ActionInteract
	Cost   int         // point price, >= 0

	Amount     int  // rounds added per use when RestoreMax is false
	RestoreMax bool // request an unbounded refill instead of Amount

	ConsumeOnUse bool // remove the entry after a successful action

	Sink       AmmoSink   // optional cached sink, wins over the interactor's
	OnConsumed func()     // called once when the entry consumes itself
	OnFeedback func()     // optional audio/visual feedback trigger
}

// AmmoPickup exchanges points for weapon ammo.
type AmmoPickup struct {
	cfg    AmmoPickupConfig
	ledger PointLedger
	paused PauseFunc
	used   bool
}

// NewAmmoPickup creates an ammo pickup. The ledger and pause state are
// injected; there is no ambient service lookup.
func NewAmmoPickup(ledger PointLedger, paused PauseFunc, cfg AmmoPickupConfig) *AmmoPickup {
	if cfg.Key == core.ActionNone {
		cfg.Key = core.ActionInteract
	}
	return &AmmoPickup{cfg: cfg, ledger: ledger, paused: paused}
}

// Prompt returns the pickup's prompt text.
func (p *AmmoPickup) Prompt() string {
	return p.cfg.Prompt
}

// ActionKey returns the triggering input action.
func (p *AmmoPickup) ActionKey() core.Action {
	return p.cfg.Key
}

// Consumed reports whether the entry has removed itself.
func (p *AmmoPickup) Consumed() bool {
	return p.used
}

// Interact attempts the purchase. Preconditions are checked in order and
// short-circuit on the first failure: pause, ledger reachable, balance,
// sink resolvable, sink not full. No state is mutated on failure.
func (p *AmmoPickup) Interact(who Interactor) bool {
	if p.used {
		return false
	}
	if p.paused != nil && p.paused() {
		return false
	}
	if p.ledger == nil {
		return false
	}

	if bal := p.ledger.Balance(); bal < p.cfg.Cost {
		p.ledger.Warn(fmt.Sprintf("Need %d more points!", p.cfg.Cost-bal))
		return false
	}

	sink := p.cfg.Sink
	if sink == nil && who != nil {
		sink = who.AmmoSink()
	}
	if sink == nil {
		p.ledger.Warn("No weapon to resupply!")
		return false
	}

	cur, max := sink.Ammo()
	if cur >= max {
		p.ledger.Warn("Ammo already full!")
		return false
	}

	request := p.cfg.Amount
	if p.cfg.RestoreMax {
		request = RequestAll
	}
	added := sink.AddAmmo(request)
	if added <= 0 {
		// Apparent deficit but nothing fit; treat as full, no debit.
		p.ledger.Warn("Ammo already full!")
		return false
	}

	p.ledger.Adjust(-p.cfg.Cost)
	if p.cfg.OnFeedback != nil {
		p.cfg.OnFeedback()
	}
	if p.cfg.ConsumeOnUse {
		p.used = true
		if p.cfg.OnConsumed != nil {
			p.cfg.OnConsumed()
		}
	}
	return true
}
