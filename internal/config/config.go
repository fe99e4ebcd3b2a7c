// Package config provides YAML-based game configuration loading and
// difficulty management for Outbreak.
package config

// OutbreakConfig contains all tunables for the survival game.
type OutbreakConfig struct {
	Player      PlayerConfig      `yaml:"player"`
	Interaction InteractionConfig `yaml:"interaction"`
	Pickups     PickupsConfig     `yaml:"pickups"`
	Chest       ChestConfig       `yaml:"chest"`
	Waves       WavesConfig       `yaml:"waves"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// PlayerConfig defines the player's resources and weapon.
type PlayerConfig struct {
	MaxHealth         int     `yaml:"max_health"`
	MaxAmmo           int     `yaml:"max_ammo"`
	StartAmmo         int     `yaml:"start_ammo"`
	FireRange         float64 `yaml:"fire_range"`
	FireCooldownTicks int     `yaml:"fire_cooldown_ticks"`
}

// InteractionConfig defines the proximity interaction parameters.
type InteractionConfig struct {
	// Radius is the interaction range in cells.
	Radius float64 `yaml:"radius"`
	// MaxCandidates bounds the per-tick proximity query.
	MaxCandidates int `yaml:"max_candidates"`
}

// PickupsConfig prices and sizes the point-gated pickups.
type PickupsConfig struct {
	AmmoCost       int  `yaml:"ammo_cost"`
	AmmoAmount     int  `yaml:"ammo_amount"`
	AmmoRestoreMax bool `yaml:"ammo_restore_max"`

	HealCost       int  `yaml:"heal_cost"`
	HealAmount     int  `yaml:"heal_amount"`
	HealRestoreMax bool `yaml:"heal_restore_max"`
}

// ChestConfig defines the supply chest: opening costs health, the first
// open of a run yields a point bounty.
type ChestConfig struct {
	HealthCost int `yaml:"health_cost"`
	LootPoints int `yaml:"loot_points"`
}

// WavesConfig defines zombie wave scheduling and combat numbers.
type WavesConfig struct {
	BaseZombies     int `yaml:"base_zombies"`      // zombies in wave 1
	PerWave         int `yaml:"per_wave"`          // extra zombies per later wave
	MaxAlive        int `yaml:"max_alive"`         // cap on simultaneously alive zombies
	FinalWave       int `yaml:"final_wave"`        // campaign ends after this wave
	SpawnEveryTicks int `yaml:"spawn_every_ticks"` // delay between spawns within a wave
	InterWaveTicks  int `yaml:"inter_wave_ticks"`  // breather between waves

	ZombieHits          int `yaml:"zombie_hits"`            // shots to kill one zombie
	ZombieDamage        int `yaml:"zombie_damage"`          // contact damage per attack
	ZombieMoveTicks     int `yaml:"zombie_move_ticks"`      // ticks between zombie steps
	ZombieAttackTicks   int `yaml:"zombie_attack_ticks"`    // cooldown between attacks
	KillPoints          int `yaml:"kill_points"`            // ledger credit per kill
	WaveClearBonus      int `yaml:"wave_clear_bonus"`       // ledger credit per cleared wave
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave", "score", or "none"
	MaxAt int    `yaml:"max_at"` // wave/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	MoveTickReduction int `yaml:"move_tick_reduction"` // zombie step interval reduction at max
	ExtraZombies      int `yaml:"extra_zombies"`       // extra spawns per wave at max
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *OutbreakConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay numbers based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 150
		cfg.Waves.ZombieDamage = 10
	case DifficultyHard:
		cfg.Waves.BaseZombies += 2
		cfg.Waves.ZombieDamage = 25
	}
}
