package survival

import (
	"github.com/undeadbits/outbreak/internal/core"
	"github.com/undeadbits/outbreak/internal/interact"
)

// Entity is anything placed in the world. The wrapped object may
// additionally implement interact.Interactable; the selector sorts that
// out per tick.
type Entity struct {
	id      int
	pos     core.Vec2
	object  any
	removed bool
}

// Position returns the entity's world position.
func (e *Entity) Position() core.Vec2 {
	return e.pos
}

// SetPosition moves the entity.
func (e *Entity) SetPosition(pos core.Vec2) {
	e.pos = pos
}

// Object returns the wrapped game object.
func (e *Entity) Object() any {
	return e.object
}

// World holds the arena grid and all placed entities. Entities keep their
// spawn order, which makes the proximity query deterministic: equal
// distances resolve to the earliest-spawned entity.
type World struct {
	width    int
	height   int
	walls    map[[2]int]bool
	entities []*Entity
	nextID   int
}

// NewWorld creates an empty world of the given size.
func NewWorld(width, height int) *World {
	return &World{
		width:  width,
		height: height,
		walls:  make(map[[2]int]bool),
	}
}

// Width returns the arena width in cells.
func (w *World) Width() int {
	return w.width
}

// Height returns the arena height in cells.
func (w *World) Height() int {
	return w.height
}

// SetWall marks a cell as solid.
func (w *World) SetWall(x, y int) {
	w.walls[[2]int{x, y}] = true
}

// Wall reports whether the cell is solid.
func (w *World) Wall(x, y int) bool {
	return w.walls[[2]int{x, y}]
}

// Walkable reports whether the cell is inside the arena and not solid.
func (w *World) Walkable(x, y int) bool {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return false
	}
	return !w.walls[[2]int{x, y}]
}

// Add places an object in the world and returns its entity handle.
func (w *World) Add(pos core.Vec2, object any) *Entity {
	e := &Entity{id: w.nextID, pos: pos, object: object}
	w.nextID++
	w.entities = append(w.entities, e)
	return e
}

// Remove takes an entity out of the world. The slot is tombstoned rather
// than compacted so spawn order stays stable for later entities.
func (w *World) Remove(e *Entity) {
	if e != nil {
		e.removed = true
	}
}

// Nearby returns at most max entities within radius of origin, in spawn
// order. This is the bounded proximity query behind the interaction
// selector; the fixed cap avoids unbounded allocation per tick.
func (w *World) Nearby(origin core.Vec2, radius float64, max int) []interact.Candidate {
	if max <= 0 {
		return nil
	}
	radiusSq := radius * radius

	var found []interact.Candidate
	for _, e := range w.entities {
		if e.removed {
			continue
		}
		if origin.DistSq(e.pos) > radiusSq {
			continue
		}
		found = append(found, interact.Candidate{Object: e.object, Position: e.pos})
		if len(found) == max {
			break
		}
	}
	return found
}

// EachEntity calls fn for every live entity in spawn order.
func (w *World) EachEntity(fn func(e *Entity)) {
	for _, e := range w.entities {
		if !e.removed {
			fn(e)
		}
	}
}

// CountEntities returns the number of live entities.
func (w *World) CountEntities() int {
	n := 0
	for _, e := range w.entities {
		if !e.removed {
			n++
		}
	}
	return n
}
