package survival

import (
	"github.com/undeadbits/outbreak/internal/core"
)

// Zombie is a walker: it shambles toward the player, claws on contact,
// and dies after a configured number of hits.
type Zombie struct {
	pos          core.Vec2
	hits         int // remaining shots to kill
	moveTicker   int
	attackTicker int
	entity       *Entity
}

// Position returns the zombie's world position.
func (z *Zombie) Position() core.Vec2 {
	return z.pos
}

// spawnZombie places a zombie at the given spawn point.
func (g *Game) spawnZombie(pos core.Vec2) {
	z := &Zombie{
		pos:  pos,
		hits: g.cfg.Waves.ZombieHits,
	}
	// Zombies live in the world entity list too: they show up in the
	// proximity query as capability-less candidates the selector skips.
	z.entity = g.world.Add(pos, z)
	g.zombies = append(g.zombies, z)
}

// updateZombies advances movement and attacks for every walker.
func (g *Game) updateZombies() {
	moveEvery := g.diff.MoveTicks(g.cfg.Waves.ZombieMoveTicks, g.wave, g.ledger.Earned())

	for _, z := range g.zombies {
		if z.attackTicker > 0 {
			z.attackTicker--
		}

		px, py := g.player.Position().Cell()
		zx, zy := z.pos.Cell()

		// Claw when adjacent (8-neighborhood) and off cooldown.
		if core.Abs(px-zx) <= 1 && core.Abs(py-zy) <= 1 && z.attackTicker == 0 {
			g.player.TakeDamage(g.cfg.Waves.ZombieDamage)
			z.attackTicker = g.cfg.Waves.ZombieAttackTicks
			continue
		}

		z.moveTicker++
		if z.moveTicker < moveEvery {
			continue
		}
		z.moveTicker = 0
		g.stepZombie(z, px, py)
	}
}

// stepZombie moves one cell toward the player, preferring the axis with
// the larger gap and falling back to the other when blocked.
func (g *Game) stepZombie(z *Zombie, px, py int) {
	zx, zy := z.pos.Cell()
	dx, dy := 0, 0
	if px > zx {
		dx = 1
	} else if px < zx {
		dx = -1
	}
	if py > zy {
		dy = 1
	} else if py < zy {
		dy = -1
	}

	var first, second [2]int
	if core.Abs(px-zx) >= core.Abs(py-zy) {
		first, second = [2]int{zx + dx, zy}, [2]int{zx, zy + dy}
	} else {
		first, second = [2]int{zx, zy + dy}, [2]int{zx + dx, zy}
	}

	for _, next := range [][2]int{first, second} {
		if next == [2]int{zx, zy} {
			continue
		}
		if next == [2]int{px, py} {
			continue // never stack onto the player
		}
		if !g.world.Walkable(next[0], next[1]) || g.zombieAt(next[0], next[1]) != nil {
			continue
		}
		z.pos = core.Vec2{X: float64(next[0]), Y: float64(next[1])}
		z.entity.SetPosition(z.pos)
		return
	}
}

// zombieAt returns the live zombie occupying the cell, or nil.
func (g *Game) zombieAt(x, y int) *Zombie {
	for _, z := range g.zombies {
		zx, zy := z.pos.Cell()
		if zx == x && zy == y {
			return z
		}
	}
	return nil
}

// shoot fires at the nearest zombie within range. Returns true when a
// shot was fired.
func (g *Game) shoot() bool {
	if g.player.fireCooldown > 0 {
		return false
	}

	target := g.nearestZombie(g.cfg.Player.FireRange)
	if target == nil {
		g.messages.Push("No target in range.")
		return false
	}
	if !g.player.SpendAmmo() {
		g.messages.Push("Out of ammo!")
		return false
	}

	g.player.fireCooldown = g.cfg.Player.FireCooldownTicks
	target.hits--
	if target.hits <= 0 {
		g.killZombie(target)
	}
	return true
}

// nearestZombie returns the closest live zombie within radius, or nil.
func (g *Game) nearestZombie(radius float64) *Zombie {
	origin := g.player.Position()
	radiusSq := radius * radius

	var best *Zombie
	bestDist := 0.0
	for _, z := range g.zombies {
		d := origin.DistSq(z.pos)
		if d > radiusSq {
			continue
		}
		if best == nil || d < bestDist {
			best = z
			bestDist = d
		}
	}
	return best
}

// killZombie removes the walker and credits the bounty.
func (g *Game) killZombie(target *Zombie) {
	for i, z := range g.zombies {
		if z == target {
			g.zombies = append(g.zombies[:i], g.zombies[i+1:]...)
			break
		}
	}
	g.world.Remove(target.entity)
	g.kills++
	g.ledger.Adjust(g.cfg.Waves.KillPoints)
}
