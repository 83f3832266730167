package gen

import "fmt"

// Placement decides where the generated prototype lives relative to its
// blueprint.
type Placement int

const (
	// Nested keeps the prototype alongside the other prototypes of the
	// batch in one shared file, tied to the declaring blueprint.
	Nested Placement = iota
	// Detached emits the prototype into its own file as an independent
	// type with no reference back to the blueprint. Detached prototypes
	// are safe to share across unrelated blueprints.
	Detached
)

var placementNames = [...]string{
	Nested:   "nested",
	Detached: "detached",
}

// String returns the textual name of the placement.
func (p Placement) String() string {
	if int(p) < len(placementNames) {
		return placementNames[p]
	}
	return fmt.Sprintf("invalid(%d)", p)
}

// ResolvePlacement maps a blueprint's detach flag to the prototype
// placement. The decision is deterministic and local to the blueprint;
// nothing else in the batch affects it.
func ResolvePlacement(t *Blueprint) Placement {
	if t.Detach {
		return Detached
	}
	return Nested
}
