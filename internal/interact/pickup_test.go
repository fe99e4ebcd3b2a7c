package interact

import (
	"testing"
)

func TestAmmoPickupRestoreToMax(t *testing.T) {
	ledger := &fakeLedger{balance: 500}
	sink := &fakeAmmoSink{current: 30, max: 100}
	removed := false

	pickup := NewAmmoPickup(ledger, nil, AmmoPickupConfig{
		Prompt:       "Press E to buy ammo (250 points)",
		Cost:         250,
		RestoreMax:   true,
		ConsumeOnUse: true,
		OnConsumed:   func() { removed = true },
	})

	ok := pickup.Interact(&fakeInteractor{ammo: sink})

	if !ok {
		t.Fatal("purchase should succeed")
	}
	if len(sink.requests) != 1 || sink.requests[0] != RequestAll {
		t.Errorf("AddAmmo requests = %v, expected one unbounded request", sink.requests)
	}
	if sink.current != 100 {
		t.Errorf("ammo after refill = %d, expected 100", sink.current)
	}
	if ledger.balance != 250 {
		t.Errorf("balance = %d, expected exactly the cost debited (250)", ledger.balance)
	}
	if !removed {
		t.Error("consumable pickup should remove itself on success")
	}
	if !pickup.Consumed() {
		t.Error("Consumed() should report true after removal")
	}
}

func TestAmmoPickupFixedAmount(t *testing.T) {
	ledger := &fakeLedger{balance: 100}
	sink := &fakeAmmoSink{current: 10, max: 100}

	pickup := NewAmmoPickup(ledger, nil, AmmoPickupConfig{Cost: 50, Amount: 30})

	if !pickup.Interact(&fakeInteractor{ammo: sink}) {
		t.Fatal("purchase should succeed")
	}
	if sink.current != 40 {
		t.Errorf("ammo = %d, expected 40", sink.current)
	}
	if ledger.balance != 50 {
		t.Errorf("balance = %d, expected 50", ledger.balance)
	}
}

func TestAmmoPickupInsufficientPoints(t *testing.T) {
	ledger := &fakeLedger{balance: 238}
	sink := &fakeAmmoSink{current: 30, max: 100}

	pickup := NewAmmoPickup(ledger, nil, AmmoPickupConfig{Cost: 250, RestoreMax: true})

	if pickup.Interact(&fakeInteractor{ammo: sink}) {
		t.Fatal("purchase should fail when balance is short")
	}
	if got, want := ledger.lastWarning(), "Need 12 more points!"; got != want {
		t.Errorf("warning = %q, expected %q", got, want)
	}
	if ledger.balance != 238 {
		t.Errorf("balance changed to %d, expected unchanged 238", ledger.balance)
	}
	if len(sink.requests) != 0 {
		t.Error("sink should not be touched on failed precondition")
	}
}

func TestAmmoPickupMissingSink(t *testing.T) {
	ledger := &fakeLedger{balance: 500}

	pickup := NewAmmoPickup(ledger, nil, AmmoPickupConfig{Cost: 100})

	if pickup.Interact(&fakeInteractor{}) {
		t.Fatal("purchase should fail without an ammo sink")
	}
	if len(ledger.warnings) != 1 {
		t.Errorf("warnings = %v, expected one missing-sink warning", ledger.warnings)
	}
	if ledger.balance != 500 {
		t.Error("ledger should not be debited when no sink resolves")
	}
}

func TestAmmoPickupCachedSinkWins(t *testing.T) {
	ledger := &fakeLedger{balance: 500}
	cached := &fakeAmmoSink{current: 0, max: 50}
	other := &fakeAmmoSink{current: 0, max: 50}

	pickup := NewAmmoPickup(ledger, nil, AmmoPickupConfig{Cost: 10, Amount: 20, Sink: cached})

	if !pickup.Interact(&fakeInteractor{ammo: other}) {
		t.Fatal("purchase should succeed")
	}
	if cached.current != 20 {
		t.Errorf("cached sink ammo = %d, expected 20", cached.current)
	}
	if other.current != 0 {
		t.Error("interactor sink should be untouched when a cached sink is set")
	}
}

func TestAmmoPickupAlreadyFull(t *testing.T) {
	ledger := &fakeLedger{balance: 500}
	sink := &fakeAmmoSink{current: 100, max: 100}

	pickup := NewAmmoPickup(ledger, nil, AmmoPickupConfig{Cost: 100, RestoreMax: true})

	if pickup.Interact(&fakeInteractor{ammo: sink}) {
		t.Fatal("purchase should fail at capacity")
	}
	if got, want := ledger.lastWarning(), "Ammo already full!"; got != want {
		t.Errorf("warning = %q, expected %q", got, want)
	}
	if ledger.balance != 500 {
		t.Error("no debit at capacity")
	}
}

func TestAmmoPickupZeroAddedDespiteDeficit(t *testing.T) {
	// Sink reports a deficit but accepts nothing: fail with the full
	// warning and no debit.
	ledger := &fakeLedger{balance: 500}
	sink := &stingyAmmoSink{}

	pickup := NewAmmoPickup(ledger, nil, AmmoPickupConfig{Cost: 100, Amount: 30, Sink: sink})

	if pickup.Interact(nil) {
		t.Fatal("purchase should fail when nothing was added")
	}
	if ledger.balance != 500 {
		t.Error("no debit when added quantity is zero")
	}
	if got, want := ledger.lastWarning(), "Ammo already full!"; got != want {
		t.Errorf("warning = %q, expected %q", got, want)
	}
}

func TestAmmoPickupPausedAndNoLedger(t *testing.T) {
	sink := &fakeAmmoSink{current: 0, max: 10}

	paused := NewAmmoPickup(&fakeLedger{balance: 100}, func() bool { return true },
		AmmoPickupConfig{Cost: 0, Amount: 5})
	if paused.Interact(&fakeInteractor{ammo: sink}) {
		t.Error("interaction should fail while paused")
	}

	noLedger := NewAmmoPickup(nil, nil, AmmoPickupConfig{Cost: 0, Amount: 5})
	if noLedger.Interact(&fakeInteractor{ammo: sink}) {
		t.Error("interaction should fail without a ledger")
	}
	if sink.current != 0 {
		t.Error("sink should be untouched by failed interactions")
	}
}

func TestHealPickupRefusesAtFullBeforeLedger(t *testing.T) {
	ledger := &fakeLedger{balance: 500}
	sink := &fakeHealthSink{current: 100, max: 100}

	pickup := NewHealPickup(ledger, nil, HealPickupConfig{Cost: 100, RestoreMax: true})

	if pickup.Interact(&fakeInteractor{health: sink}) {
		t.Fatal("heal should refuse at full health")
	}
	if ledger.balanceReads != 0 {
		t.Errorf("balance reads = %d, expected 0 (refusal precedes the ledger)", ledger.balanceReads)
	}
	if ledger.balance != 500 {
		t.Error("no debit at full health")
	}
	if got, want := ledger.lastWarning(), "Health already full!"; got != want {
		t.Errorf("warning = %q, expected %q", got, want)
	}
}

func TestHealPickupHealsAndDebits(t *testing.T) {
	ledger := &fakeLedger{balance: 300}
	sink := &fakeHealthSink{current: 40, max: 100}
	removed := false

	pickup := NewHealPickup(ledger, nil, HealPickupConfig{
		Cost:         150,
		RestoreMax:   true,
		ConsumeOnUse: true,
		OnConsumed:   func() { removed = true },
	})

	if !pickup.Interact(&fakeInteractor{health: sink}) {
		t.Fatal("heal should succeed")
	}
	if sink.current != 100 {
		t.Errorf("health = %d, expected 100", sink.current)
	}
	if ledger.balance != 150 {
		t.Errorf("balance = %d, expected 150", ledger.balance)
	}
	if !removed {
		t.Error("consumable heal should remove itself")
	}
}

func TestHealPickupInsufficientPoints(t *testing.T) {
	ledger := &fakeLedger{balance: 20}
	sink := &fakeHealthSink{current: 50, max: 100}

	pickup := NewHealPickup(ledger, nil, HealPickupConfig{Cost: 100, Amount: 25})

	if pickup.Interact(&fakeInteractor{health: sink}) {
		t.Fatal("heal should fail when balance is short")
	}
	if got, want := ledger.lastWarning(), "Need 80 more points!"; got != want {
		t.Errorf("warning = %q, expected %q", got, want)
	}
	if sink.current != 50 {
		t.Error("health should be unchanged on failure")
	}
}

// stingyAmmoSink reports a deficit but never accepts ammo.
type stingyAmmoSink struct{}

func (s *stingyAmmoSink) Ammo() (int, int) {
	return 10, 100
}

func (s *stingyAmmoSink) AddAmmo(request int) int {
	return 0
}
