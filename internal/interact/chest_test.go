package interact

import (
	"strings"
	"testing"
)

func TestChestRefusesWhenHealthTooLow(t *testing.T) {
	ledger := &fakeLedger{}
	sink := &fakeHealthSink{current: 20, max: 100}

	chest := NewChest(ledger, nil, ChestConfig{HealthCost: 25})

	if chest.Interact(&fakeInteractor{health: sink}) {
		t.Fatal("opening should be refused at 20 HP with a 25 HP cost")
	}
	if chest.IsOpen() {
		t.Error("chest should remain closed after refusal")
	}
	if len(sink.damage) != 0 {
		t.Error("no damage should be applied on refusal")
	}
	if len(ledger.warnings) != 1 {
		t.Errorf("warnings = %v, expected one", ledger.warnings)
	}
}

func TestChestOpensAtCostAndClosesFree(t *testing.T) {
	sink := &fakeHealthSink{current: 30, max: 100}
	var toggles []bool

	chest := NewChest(&fakeLedger{}, nil, ChestConfig{
		HealthCost: 25,
		OnToggle:   func(open bool) { toggles = append(toggles, open) },
	})
	who := &fakeInteractor{health: sink}

	if !chest.Interact(who) {
		t.Fatal("opening should succeed at 30 HP")
	}
	if sink.current != 5 {
		t.Errorf("health = %d, expected 5 after the toll", sink.current)
	}
	if !chest.IsOpen() {
		t.Error("chest should be open")
	}

	// Immediate re-interact closes with no further cost.
	if !chest.Interact(who) {
		t.Fatal("closing should succeed")
	}
	if sink.current != 5 {
		t.Errorf("health = %d, closing must be free", sink.current)
	}
	if chest.IsOpen() {
		t.Error("chest should be closed again")
	}

	if len(toggles) != 2 || toggles[0] != true || toggles[1] != false {
		t.Errorf("toggle signals = %v, expected [true false]", toggles)
	}
}

func TestChestDegradesWithoutHealthSink(t *testing.T) {
	ledger := &fakeLedger{}
	chest := NewChest(ledger, nil, ChestConfig{HealthCost: 25})

	if !chest.Interact(&fakeInteractor{}) {
		t.Fatal("chest should open anyway when no health sink resolves")
	}
	if !chest.IsOpen() {
		t.Error("chest should be open")
	}
	if len(ledger.warnings) != 1 {
		t.Errorf("warnings = %v, expected the degraded-open warning", ledger.warnings)
	}
}

func TestChestPromptFollowsState(t *testing.T) {
	chest := NewChest(&fakeLedger{}, nil, ChestConfig{HealthCost: 25})

	if p := chest.Prompt(); !strings.Contains(p, "open") || !strings.Contains(p, "25 HP") {
		t.Errorf("closed prompt = %q, should advertise opening and its cost", p)
	}

	chest.Interact(&fakeInteractor{health: &fakeHealthSink{current: 100, max: 100}})

	if p := chest.Prompt(); !strings.Contains(p, "close") {
		t.Errorf("open prompt = %q, should offer closing", p)
	}
}

func TestChestPaused(t *testing.T) {
	sink := &fakeHealthSink{current: 100, max: 100}
	chest := NewChest(&fakeLedger{}, func() bool { return true }, ChestConfig{HealthCost: 10})

	if chest.Interact(&fakeInteractor{health: sink}) {
		t.Error("interaction should fail while paused")
	}
	if chest.IsOpen() {
		t.Error("chest state should not change while paused")
	}
}

func TestChestCachedSinkWins(t *testing.T) {
	cached := &fakeHealthSink{current: 50, max: 100}
	other := &fakeHealthSink{current: 50, max: 100}

	chest := NewChest(&fakeLedger{}, nil, ChestConfig{HealthCost: 10, Sink: cached})

	if !chest.Interact(&fakeInteractor{health: other}) {
		t.Fatal("opening should succeed")
	}
	if cached.current != 40 {
		t.Errorf("cached sink health = %d, expected 40", cached.current)
	}
	if other.current != 50 {
		t.Error("interactor sink should be untouched when a cached sink is set")
	}
}
