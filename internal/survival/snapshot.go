package survival

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Mode          string // "campaign" or "endless"
	Wave          int
	Score         int // total points earned
	Balance       int // spendable points
	Spent         int
	Kills         int
	Health        int
	Ammo          int
	PlayerX       int
	PlayerY       int
	ZombiesAlive  int
	PendingSpawns int
	PickupsLeft   int
	ChestOpen     bool
	ChestLooted   bool
	State         GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	}

	px, py := g.player.Position().Cell()
	hp, _ := g.player.Health()
	ammo, _ := g.player.Ammo()

	chestOpen := false
	if g.chest != nil {
		chestOpen = g.chest.IsOpen()
	}

	return Snapshot{
		Tick:          g.tick,
		Mode:          string(g.mode),
		Wave:          g.wave,
		Score:         g.ledger.Earned(),
		Balance:       g.ledger.Balance(),
		Spent:         g.ledger.Spent(),
		Kills:         g.kills,
		Health:        hp,
		Ammo:          ammo,
		PlayerX:       px,
		PlayerY:       py,
		ZombiesAlive:  len(g.zombies),
		PendingSpawns: g.pendingSpawns,
		PickupsLeft:   g.pickupsLeft,
		ChestOpen:     chestOpen,
		ChestLooted:   g.chestLooted,
		State:         state,
	}
}
