package survival

import (
	"testing"

	"github.com/undeadbits/outbreak/internal/core"
)

func TestNearbyBoundAndSpawnOrder(t *testing.T) {
	w := NewWorld(10, 10)
	origin := core.Vec2{X: 5, Y: 5}

	// Five entities, all at the same distance from origin.
	names := []string{"a", "b", "c", "d", "e"}
	for _, name := range names {
		w.Add(core.Vec2{X: 6, Y: 5}, name)
	}

	got := w.Nearby(origin, 2.0, 3)
	if len(got) != 3 {
		t.Fatalf("Expected query capped at 3 results, got %d", len(got))
	}
	for i, c := range got {
		if c.Object != names[i] {
			t.Errorf("Result %d: expected %q (spawn order), got %v", i, names[i], c.Object)
		}
	}
}

func TestNearbyRespectsRadius(t *testing.T) {
	w := NewWorld(20, 20)
	origin := core.Vec2{X: 5, Y: 5}

	w.Add(core.Vec2{X: 6, Y: 5}, "near")
	w.Add(core.Vec2{X: 15, Y: 5}, "far")

	got := w.Nearby(origin, 2.0, 10)
	if len(got) != 1 {
		t.Fatalf("Expected 1 in-range entity, got %d", len(got))
	}
	if got[0].Object != "near" {
		t.Errorf("Expected the near entity, got %v", got[0].Object)
	}
}

func TestRemoveTombstonesEntity(t *testing.T) {
	w := NewWorld(10, 10)
	origin := core.Vec2{X: 5, Y: 5}

	w.Add(core.Vec2{X: 5, Y: 4}, "first")
	mid := w.Add(core.Vec2{X: 5, Y: 5}, "second")
	w.Add(core.Vec2{X: 5, Y: 6}, "third")

	w.Remove(mid)

	if n := w.CountEntities(); n != 2 {
		t.Errorf("Expected 2 live entities after removal, got %d", n)
	}

	got := w.Nearby(origin, 3.0, 10)
	if len(got) != 2 {
		t.Fatalf("Expected 2 query results after removal, got %d", len(got))
	}
	if got[0].Object != "first" || got[1].Object != "third" {
		t.Errorf("Spawn order broken after removal: %v, %v", got[0].Object, got[1].Object)
	}
}

func TestWalkable(t *testing.T) {
	w := NewWorld(10, 10)
	w.SetWall(3, 3)

	if w.Walkable(3, 3) {
		t.Error("Wall cell should not be walkable")
	}
	if !w.Walkable(4, 3) {
		t.Error("Open cell should be walkable")
	}
	if w.Walkable(-1, 0) || w.Walkable(0, -1) || w.Walkable(10, 0) || w.Walkable(0, 10) {
		t.Error("Out-of-bounds cells should not be walkable")
	}
}
