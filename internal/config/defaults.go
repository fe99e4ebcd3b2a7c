package config

import (
	_ "embed"
)

//go:embed defaults/outbreak.yaml
var defaultOutbreakYAML []byte

// DefaultOutbreakConfig returns the default configuration. It mirrors the
// embedded YAML and serves as the last-resort fallback if the embed fails
// to parse.
func DefaultOutbreakConfig() OutbreakConfig {
	return OutbreakConfig{
		Player: PlayerConfig{
			MaxHealth:         100,
			MaxAmmo:           60,
			StartAmmo:         24,
			FireRange:         8.0,
			FireCooldownTicks: 6,
		},
		Interaction: InteractionConfig{
			Radius:        1.8,
			MaxCandidates: 3,
		},
		Pickups: PickupsConfig{
			AmmoCost:       250,
			AmmoAmount:     24,
			AmmoRestoreMax: true,
			HealCost:       150,
			HealAmount:     25,
			HealRestoreMax: true,
		},
		Chest: ChestConfig{
			HealthCost: 25,
			LootPoints: 400,
		},
		Waves: WavesConfig{
			BaseZombies:       3,
			PerWave:           2,
			MaxAlive:          8,
			FinalWave:         10,
			SpawnEveryTicks:   45,
			InterWaveTicks:    150,
			ZombieHits:        2,
			ZombieDamage:      15,
			ZombieMoveTicks:   10,
			ZombieAttackTicks: 30,
			KillPoints:        60,
			WaveClearBonus:    100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				MoveTickReduction: 6,
				ExtraZombies:      3,
			},
		},
	}
}
