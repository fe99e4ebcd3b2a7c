package survival

import (
	"fmt"

	"github.com/undeadbits/outbreak/internal/core"
)

// wavePhase tracks where the run is in the spawn cycle.
type wavePhase int

const (
	phaseBreather wavePhase = iota // countdown before the next wave
	phaseSpawning                  // zombies still queued to spawn
	phaseActive                    // all spawned, fight until cleared
)

// startWave queues the spawns for the next wave.
func (g *Game) startWave() {
	g.wave++
	count := g.diff.SpawnCount(
		g.cfg.Waves.BaseZombies+(g.wave-1)*g.cfg.Waves.PerWave,
		g.wave, g.ledger.Earned(),
	)
	g.pendingSpawns = count
	g.spawnTicker = 0
	g.phase = phaseSpawning
	g.messages.Push(fmt.Sprintf("Wave %d incoming!", g.wave))
}

// updateWaves drives the spawn cycle and wave transitions.
func (g *Game) updateWaves() {
	switch g.phase {
	case phaseBreather:
		g.interWaveTicker--
		if g.interWaveTicker <= 0 {
			g.startWave()
		}

	case phaseSpawning:
		g.spawnTicker++
		if g.spawnTicker < g.cfg.Waves.SpawnEveryTicks {
			return
		}
		g.spawnTicker = 0

		if len(g.zombies) < g.cfg.Waves.MaxAlive && g.pendingSpawns > 0 {
			g.spawnZombie(g.nextSpawnPoint())
			g.pendingSpawns--
		}
		if g.pendingSpawns == 0 {
			g.phase = phaseActive
		}

	case phaseActive:
		if len(g.zombies) > 0 {
			return
		}
		// Wave cleared.
		g.ledger.Adjust(g.cfg.Waves.WaveClearBonus)
		g.messages.Push(fmt.Sprintf("Wave %d cleared! +%d points", g.wave, g.cfg.Waves.WaveClearBonus))

		if g.mode == ModeCampaign && g.wave >= g.cfg.Waves.FinalWave {
			g.won = true
			return
		}
		g.phase = phaseBreather
		g.interWaveTicker = g.cfg.Waves.InterWaveTicks
	}
}

// nextSpawnPoint cycles through the level's zombie spawn markers,
// starting at a seed-dependent offset so runs differ between seeds but
// stay reproducible for one.
func (g *Game) nextSpawnPoint() core.Vec2 {
	if len(g.zombieSpawns) == 0 {
		// Defensive fallback; levels always carry spawn markers.
		return core.Vec2{X: 1, Y: 1}
	}
	p := g.zombieSpawns[g.spawnCursor%len(g.zombieSpawns)]
	g.spawnCursor++
	return p
}
