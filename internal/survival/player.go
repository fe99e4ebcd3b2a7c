package survival

import (
	"github.com/undeadbits/outbreak/internal/core"
	"github.com/undeadbits/outbreak/internal/interact"
)

// Player is the survivor: position, health pool, and the weapon's ammo
// reserve. It implements interact.Interactor and is its own ammo and
// health sink.
type Player struct {
	pos core.Vec2

	health    int
	maxHealth int

	ammo    int
	maxAmmo int

	fireCooldown int
}

// NewPlayer creates a player at pos with full health.
func NewPlayer(pos core.Vec2, maxHealth, maxAmmo, startAmmo int) *Player {
	return &Player{
		pos:       pos,
		health:    maxHealth,
		maxHealth: maxHealth,
		ammo:      core.Clamp(startAmmo, 0, maxAmmo),
		maxAmmo:   maxAmmo,
	}
}

// Position returns the player's world position.
func (p *Player) Position() core.Vec2 {
	return p.pos
}

// SetPosition moves the player.
func (p *Player) SetPosition(pos core.Vec2) {
	p.pos = pos
}

// Alive reports whether the player has health left.
func (p *Player) Alive() bool {
	return p.health > 0
}

// AmmoSink exposes the player's weapon reserve to interactables.
func (p *Player) AmmoSink() interact.AmmoSink {
	return p
}

// HealthSink exposes the player's health pool to interactables.
func (p *Player) HealthSink() interact.HealthSink {
	return p
}

// Ammo returns the current and maximum ammo.
func (p *Player) Ammo() (int, int) {
	return p.ammo, p.maxAmmo
}

// AddAmmo adds up to request rounds (negative request fills to capacity)
// and returns the quantity actually added.
func (p *Player) AddAmmo(request int) int {
	room := p.maxAmmo - p.ammo
	if room <= 0 {
		return 0
	}
	added := room
	if request >= 0 && request < room {
		added = request
	}
	p.ammo += added
	return added
}

// SpendAmmo removes one round; returns false when empty.
func (p *Player) SpendAmmo() bool {
	if p.ammo <= 0 {
		return false
	}
	p.ammo--
	return true
}

// Health returns the current and maximum health.
func (p *Player) Health() (int, int) {
	return p.health, p.maxHealth
}

// AddHealth heals up to request points (negative request fills to
// capacity) and returns the quantity actually healed.
func (p *Player) AddHealth(request int) int {
	room := p.maxHealth - p.health
	if room <= 0 {
		return 0
	}
	healed := room
	if request >= 0 && request < room {
		healed = request
	}
	p.health += healed
	return healed
}

// TakeDamage removes health, clamped at zero.
func (p *Player) TakeDamage(amount int) {
	p.health -= amount
	if p.health < 0 {
		p.health = 0
	}
}
