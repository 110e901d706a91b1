package ticketrush

import (
	"github.com/vovakirdan/ticket-rush/internal/catalog"
	"github.com/vovakirdan/ticket-rush/internal/core"
)

// Role defines what a player is allowed to do at stations.
type Role int

const (
	RoleReader   Role = iota // Reads tickets at the board
	RoleCompiler             // Submits answers at the desk
	RoleIntern               // Reserved for 3-4 player configurations
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleReader:
		return "READER"
	case RoleCompiler:
		return "COMPILER"
	case RoleIntern:
		return "INTERN"
	default:
		return "UNKNOWN"
	}
}

// Facing is the direction a player last moved in.
type Facing int

const (
	FacingDown Facing = iota
	FacingLeft
	FacingUp
	FacingRight
)

// String returns a human-readable name for the facing direction.
func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingUp:
		return "up"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Player is a movable actor controlled by one of the local players.
// A player holds at most one block; the block is owned exclusively by the
// player while held.
type Player struct {
	ID      core.PlayerID
	Role    Role
	Rect    core.RectF
	Speed   float64 // World units per second
	Facing  Facing
	Holding *Block // nil when empty-handed
	Color   core.Color
}

// Block is a typed knowledge token. A block is owned by exactly one of:
// a player (held), the ground collection, or nothing (consumed/destroyed).
type Block struct {
	Kind  catalog.BlockKind
	Rect  core.RectF
	Label string
	Color core.Color

	// Wrong marks a block that matched no outstanding ticket requirement
	// when it was dropped. Immutable once set; the block can only be
	// cleaned up by destruction at the bin.
	Wrong bool
}

// StationKind identifies a fixed interactive fixture.
type StationKind int

const (
	StationBoard StationKind = iota // Reader opens the ticket view here
	StationShelf                    // Unlimited source of one block kind
	StationDesk                     // Insert blocks, Compiler submits here
	StationBin                      // Destroys blocks, clears wrong-block penalties
)

// String returns a human-readable name for the station kind.
func (k StationKind) String() string {
	switch k {
	case StationBoard:
		return "BOARD"
	case StationShelf:
		return "SHELF"
	case StationDesk:
		return "DESK"
	case StationBin:
		return "BIN"
	default:
		return "UNKNOWN"
	}
}

// Station is a fixed-position interactive fixture. Highlighted and Prompt
// are transient: recomputed from player proximity every tick, never
// persisted across ticks.
type Station struct {
	Kind      StationKind
	Rect      core.RectF
	Label     string
	Color     core.Color
	BlockKind catalog.BlockKind // Shelves only: the kind this shelf dispenses

	Highlighted bool
	Prompt      string
}
