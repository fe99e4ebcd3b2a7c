package interact

import (
	"fmt"

	"github.com/undeadbits/outbreak/internal/core"
)

// HealPickupConfig configures a healing pickup entry.
type HealPickupConfig struct {
	Prompt string      // user-facing text, e.g. "patch up"
	Key    core.Action // defaults to ActionInteract
	Cost   int         // point price, >= 0

	Amount     int  // health restored per use when RestoreMax is false
	RestoreMax bool // request a full heal instead of Amount

	ConsumeOnUse bool

	Sink       HealthSink // optional cached sink, wins over the interactor's
	OnConsumed func()
	OnFeedback func()
}

// HealPickup exchanges points for health.
type HealPickup struct {
	cfg    HealPickupConfig
	ledger PointLedger
	paused PauseFunc
	used   bool
}

// NewHealPickup creates a heal pickup with injected collaborators.
func NewHealPickup(ledger PointLedger, paused PauseFunc, cfg HealPickupConfig) *HealPickup {
	if cfg.Key == core.ActionNone {
		cfg.Key = core.ActionInteract
	}
	return &HealPickup{cfg: cfg, ledger: ledger, paused: paused}
}

// Prompt returns the pickup's prompt text.
func (p *HealPickup) Prompt() string {
	return p.cfg.Prompt
}

// ActionKey returns the triggering input action.
func (p *HealPickup) ActionKey() core.Action {
	return p.cfg.Key
}

// Consumed reports whether the entry has removed itself.
func (p *HealPickup) Consumed() bool {
	return p.used
}

// Interact attempts the heal. Unlike the ammo pickup, a full health pool
// refuses the action before the ledger balance is even read, so a player
// at max health never sees a points message for a heal they cannot use.
func (p *HealPickup) Interact(who Interactor) bool {
	if p.used {
		return false
	}
	if p.paused != nil && p.paused() {
		return false
	}
	if p.ledger == nil {
		return false
	}

	sink := p.cfg.Sink
	if sink == nil && who != nil {
		sink = who.HealthSink()
	}
	if sink == nil {
		p.ledger.Warn("No one to heal!")
		return false
	}

	cur, max := sink.Health()
	if cur >= max {
		p.ledger.Warn("Health already full!")
		return false
	}

	if bal := p.ledger.Balance(); bal < p.cfg.Cost {
		p.ledger.Warn(fmt.Sprintf("Need %d more points!", p.cfg.Cost-bal))
		return false
	}

	request := p.cfg.Amount
	if p.cfg.RestoreMax {
		request = RequestAll
	}
	healed := sink.AddHealth(request)
	if healed <= 0 {
		p.ledger.Warn("Health already full!")
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
