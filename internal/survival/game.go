// Package survival implements Outbreak, a top-down zombie survival game:
// hold out against waves of walkers, earn points for kills, and spend
// them at ammo crates, first-aid kits, and the supply chest scattered
// around the arena.
package survival

import (
	"fmt"
	"math/rand"

	"github.com/undeadbits/outbreak/internal/config"
	"github.com/undeadbits/outbreak/internal/core"
	"github.com/undeadbits/outbreak/internal/interact"
	"github.com/undeadbits/outbreak/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Package-level variables for config/difficulty, set by the CLI before
// the game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements the Outbreak survival game.
type Game struct {
	mode Mode
	cfg  config.OutbreakConfig
	diff *config.DifficultyManager
	rng  *rand.Rand
	tick uint64

	world    *World
	player   *Player
	ledger   *Ledger
	messages *MessageLog
	selector *interact.Selector
	prompt   *promptBar

	// Wave state
	zombies         []*Zombie
	zombieSpawns    []core.Vec2
	spawnCursor     int
	wave            int
	pendingSpawns   int
	spawnTicker     int
	interWaveTicker int
	phase           wavePhase
	kills           int

	chest       *interact.Chest
	chestLooted bool
	pickupsLeft int

	// Layout
	levelIndex int
	mapWidth   int
	mapHeight  int
	screenW    int
	screenH    int
	mapOffsetX int
	mapOffsetY int
	hudHeight  int

	// Game state flags
	paused   bool
	gameOver bool
	won      bool
	tooSmall bool
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("outbreak", func() registry.Game {
		return New()
	})
	registry.Register("outbreak_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "outbreak_endless"
	}
	return "outbreak"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Outbreak (Endless)"
	}
	return "Outbreak"
}

// Reset initializes/restarts the run.
func (g *Game) Reset(rcfg core.RuntimeConfig) {
	cfg, err := config.LoadOutbreak(configPath)
	if err != nil {
		cfg = config.DefaultOutbreakConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(rcfg.Seed))
	g.tick = 0
	g.paused = false
	g.gameOver = false
	g.won = false
	g.kills = 0
	g.wave = 0
	g.zombies = nil
	g.zombieSpawns = nil
	g.spawnCursor = 0
	g.pendingSpawns = 0
	g.spawnTicker = 0
	g.chestLooted = false
	g.pickupsLeft = 0

	g.screenW = rcfg.ScreenW
	g.screenH = rcfg.ScreenH
	g.hudHeight = 2 // Top HUD lines

	if g.mode == ModeEndless {
		g.levelIndex = g.rng.Intn(LevelCount())
	} else {
		g.levelIndex = 0
	}

	g.messages = &MessageLog{}
	g.ledger = NewLedger(g.messages)
	g.prompt = &promptBar{}

	g.loadLevel()
	if len(g.zombieSpawns) > 0 {
		g.spawnCursor = g.rng.Intn(len(g.zombieSpawns))
	}

	paused := func() bool { return g.paused }
	g.selector = interact.NewSelector(
		g.world.Nearby,
		paused,
		g.cfg.Interaction.Radius,
		g.cfg.Interaction.MaxCandidates,
	)
	g.selector.AddPromptSink(g.prompt)

	// First wave after an initial breather.
	g.phase = phaseBreather
	g.interWaveTicker = g.cfg.Waves.InterWaveTicks
}

// loadLevel parses the arena layout and places the static content.
func (g *Game) loadLevel() {
	level := GetLevel(g.levelIndex)
	if level == nil {
		return
	}

	layout := level.Layout
	g.mapHeight = len(layout)
	g.mapWidth = 0
	for _, row := range layout {
		if len(row) > g.mapWidth {
			g.mapWidth = len(row)
		}
	}

	// Check if screen is too small (map + HUD + prompt/message lines)
	requiredW := g.mapWidth
	requiredH := g.mapHeight + g.hudHeight + 3
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
	} else {
		g.tooSmall = false
	}

	g.mapOffsetX = (g.screenW - g.mapWidth) / 2
	g.mapOffsetY = g.hudHeight

	g.world = NewWorld(g.mapWidth, g.mapHeight)

	playerPos := core.Vec2{X: float64(g.mapWidth / 2), Y: float64(g.mapHeight / 2)}
	for y, row := range layout {
		for x, ch := range row {
			pos := core.Vec2{X: float64(x), Y: float64(y)}
			switch ch {
			case '#':
				g.world.SetWall(x, y)
			case 'P':
				playerPos = pos
			case 'Z':
				g.zombieSpawns = append(g.zombieSpawns, pos)
			case 'A':
				g.placeAmmoCrate(pos)
			case 'H':
				g.placeFirstAidKit(pos)
			case 'C':
				g.placeChest(pos)
			}
		}
	}

	g.player = NewPlayer(playerPos,
		g.cfg.Player.MaxHealth, g.cfg.Player.MaxAmmo, g.cfg.Player.StartAmmo)
}

// placeAmmoCrate wires an ammo pickup entry into the world.
func (g *Game) placeAmmoCrate(pos core.Vec2) {
	paused := func() bool { return g.paused }

	var ent *Entity
	pickup := interact.NewAmmoPickup(g.ledger, paused, interact.AmmoPickupConfig{
		Prompt:       fmt.Sprintf("Press E to buy ammo (%d points)", g.cfg.Pickups.AmmoCost),
		Cost:         g.cfg.Pickups.AmmoCost,
		Amount:       g.cfg.Pickups.AmmoAmount,
		RestoreMax:   g.cfg.Pickups.AmmoRestoreMax,
		ConsumeOnUse: true,
		OnConsumed: func() {
			g.world.Remove(ent)
			g.pickupsLeft--
			g.messages.Push("Ammo restocked.")
		},
	})
	ent = g.world.Add(pos, pickup)
	g.pickupsLeft++
}

// placeFirstAidKit wires a heal pickup entry into the world.
func (g *Game) placeFirstAidKit(pos core.Vec2) {
	paused := func() bool { return g.paused }

	var ent *Entity
	pickup := interact.NewHealPickup(g.ledger, paused, interact.HealPickupConfig{
		Prompt:       fmt.Sprintf("Press E to patch up (%d points)", g.cfg.Pickups.HealCost),
		Cost:         g.cfg.Pickups.HealCost,
		Amount:       g.cfg.Pickups.HealAmount,
		RestoreMax:   g.cfg.Pickups.HealRestoreMax,
		ConsumeOnUse: true,
		OnConsumed: func() {
			g.world.Remove(ent)
			g.pickupsLeft--
			g.messages.Push("Patched up.")
		},
	})
	ent = g.world.Add(pos, pickup)
	g.pickupsLeft++
}

// placeChest wires the supply chest into the world. The first open of a
// run pays out a point bounty; after that the chest is just a door.
func (g *Game) placeChest(pos core.Vec2) {
	paused := func() bool { return g.paused }

	chest := interact.NewChest(g.ledger, paused, interact.ChestConfig{
		HealthCost: g.cfg.Chest.HealthCost,
		OnToggle: func(open bool) {
			if open && !g.chestLooted {
				g.chestLooted = true
				g.ledger.Adjust(g.cfg.Chest.LootPoints)
				g.messages.Push(fmt.Sprintf("Scavenged the chest! +%d points", g.cfg.Chest.LootPoints))
			}
		},
	})
	g.chest = chest
	g.world.Add(pos, chest)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	// The selector runs every live tick: while paused it performs no
	// query and closes any open prompt, resuming cleanly on unpause.
	if !g.gameOver && !g.won && !g.tooSmall {
		g.selector.Tick(g.player.Position(), g.player, input)
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.movePlayer(input)

	if input.Has(core.ActionFire) {
		g.shoot()
	}
	if g.player.fireCooldown > 0 {
		g.player.fireCooldown--
	}

	g.updateZombies()
	g.updateWaves()
	g.messages.Tick()

	if !g.player.Alive() {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// movePlayer handles one cell of movement per pressed direction.
func (g *Game) movePlayer(input core.InputFrame) {
	x, y := g.player.Position().Cell()
	nx, ny := x, y

	switch {
	case input.Has(core.ActionUp):
		ny--
	case input.Has(core.ActionDown):
		ny++
	case input.Has(core.ActionLeft):
		nx--
	case input.Has(core.ActionRight):
		nx++
	default:
		return
	}

	if !g.world.Walkable(nx, ny) || g.zombieAt(nx, ny) != nil {
		return
	}
	g.player.SetPosition(core.Vec2{X: float64(nx), Y: float64(ny)})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ledger.Earned(),
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}
