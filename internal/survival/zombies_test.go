package survival

import (
	"strings"
	"testing"

	"github.com/undeadbits/outbreak/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24})
	if g.tooSmall {
		t.Fatal("Test screen should fit the arena")
	}
	return g
}

func hasMessage(g *Game, substr string) bool {
	for _, m := range g.messages.Visible() {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestZombieStepsTowardPlayer(t *testing.T) {
	g := newTestGame(t)
	px, py := g.player.Position().Cell()

	g.spawnZombie(core.Vec2{X: float64(px + 4), Y: float64(py)})
	z := g.zombies[0]

	g.stepZombie(z, px, py)

	zx, zy := z.pos.Cell()
	if zx != px+3 || zy != py {
		t.Errorf("Expected zombie at (%d,%d), got (%d,%d)", px+3, py, zx, zy)
	}
}

func TestZombieAttackRespectsCooldown(t *testing.T) {
	g := newTestGame(t)
	px, py := g.player.Position().Cell()
	g.spawnZombie(core.Vec2{X: float64(px + 1), Y: float64(py)})

	g.updateZombies()
	hp, maxHP := g.player.Health()
	if hp != maxHP-g.cfg.Waves.ZombieDamage {
		t.Fatalf("Expected %d HP after one claw, got %d", maxHP-g.cfg.Waves.ZombieDamage, hp)
	}

	// Still adjacent, still on cooldown.
	g.updateZombies()
	hp2, _ := g.player.Health()
	if hp2 != hp {
		t.Errorf("Cooldown should block a second attack: %d -> %d", hp, hp2)
	}
}

func TestShootKillsAndCreditsBounty(t *testing.T) {
	g := newTestGame(t)
	px, py := g.player.Position().Cell()
	g.spawnZombie(core.Vec2{X: float64(px + 3), Y: float64(py)})
	z := g.zombies[0]

	entitiesBefore := g.world.CountEntities()
	ammoBefore, _ := g.player.Ammo()

	if !g.shoot() {
		t.Fatal("Shot with a target in range should fire")
	}
	if ammo, _ := g.player.Ammo(); ammo != ammoBefore-1 {
		t.Errorf("Expected %d ammo after firing, got %d", ammoBefore-1, ammo)
	}
	if z.hits != g.cfg.Waves.ZombieHits-1 {
		t.Errorf("Expected %d hits remaining, got %d", g.cfg.Waves.ZombieHits-1, z.hits)
	}

	// Cooldown blocks the follow-up shot.
	if g.shoot() {
		t.Error("Shot during cooldown should not fire")
	}

	g.player.fireCooldown = 0
	if !g.shoot() {
		t.Fatal("Second shot should fire after cooldown")
	}
	if len(g.zombies) != 0 {
		t.Errorf("Expected zombie dead, %d alive", len(g.zombies))
	}
	if g.kills != 1 {
		t.Errorf("Expected 1 kill, got %d", g.kills)
	}
	if g.ledger.Earned() != g.cfg.Waves.KillPoints {
		t.Errorf("Expected %d points earned, got %d", g.cfg.Waves.KillPoints, g.ledger.Earned())
	}
	if g.world.CountEntities() != entitiesBefore-1 {
		t.Error("Dead zombie should leave the world entity list")
	}
}

func TestShootWithoutTarget(t *testing.T) {
	g := newTestGame(t)
	ammoBefore, _ := g.player.Ammo()

	if g.shoot() {
		t.Error("Shot with no target should not fire")
	}
	if ammo, _ := g.player.Ammo(); ammo != ammoBefore {
		t.Error("Missed trigger pull should not spend ammo")
	}
	if !hasMessage(g, "No target in range.") {
		t.Error("Expected a no-target message")
	}
}

func TestShootOutOfAmmo(t *testing.T) {
	g := newTestGame(t)
	px, py := g.player.Position().Cell()
	g.spawnZombie(core.Vec2{X: float64(px + 2), Y: float64(py)})
	g.player.ammo = 0

	if g.shoot() {
		t.Error("Shot with empty reserve should not fire")
	}
	if g.zombies[0].hits != g.cfg.Waves.ZombieHits {
		t.Error("Dry fire should not damage the target")
	}
	if !hasMessage(g, "Out of ammo!") {
		t.Error("Expected an out-of-ammo message")
	}
}
