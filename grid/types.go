// SPDX-License-Identifier: MIT

// Package grid defines the cell model, roles and sentinel errors
// shared by the builders and the pathfinding engine.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates rows or cols is not positive.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all layout rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrMissingEndpoint indicates that Start or End is absent.
	ErrMissingEndpoint = errors.New("grid: start and end cells are required")
	// ErrDuplicateRole indicates more than one Start or End cell.
	ErrDuplicateRole = errors.New("grid: start and end must be unique")
	// ErrSameEndpoints indicates Start and End occupy the same cell.
	ErrSameEndpoints = errors.New("grid: start and end must differ")
	// ErrWallOnEndpoint indicates a wall placed on Start or End.
	ErrWallOnEndpoint = errors.New("grid: wall cannot cover start or end")
	// ErrUnknownGlyph indicates an unrecognised character in a layout.
	ErrUnknownGlyph = errors.New("grid: unknown layout glyph")
)

// Infinity is the distance of a node that has not been reached.
const Infinity = math.MaxInt

// NoPrevious marks a node without a predecessor.
const NoPrevious = -1

// Layout glyphs understood by FromLayout and produced by String.
const (
	GlyphEmpty = '.'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
	GlyphWall  = '#'
	GlyphPath  = '*'
	GlyphSeen  = 'o'
)

// Role is the fixed purpose of a cell.
type Role uint8

const (
	// RoleEmpty is a passable cell.
	RoleEmpty Role = iota
	// RoleStart is the single search origin.
	RoleStart
	// RoleEnd is the single search target.
	RoleEnd
	// RoleWall is an impassable cell.
	RoleWall
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleEnd:
		return "end"
	case RoleWall:
		return "wall"
	default:
		return "empty"
	}
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Coord) Manhattan(o Coord) int {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Node is a single grid cell. All fields are plain values, so copying a Node
// copies its entire state.
type Node struct {
	Row, Col  int  // fixed coordinates
	Role      Role // fixed at construction
	Visited   bool // finalised by a search
	OnPath    bool // part of the reconstructed path
	Distance  int  // g: edges from Start (Infinity if unreached)
	Heuristic int  // h: Manhattan estimate to End (A* only)
	TotalCost int  // f: Distance + Heuristic (A* only)
	Previous  int  // arena index of the predecessor, or NoPrevious
}

// Coord returns the node's coordinate.
func (n *Node) Coord() Coord {
	return Coord{Row: n.Row, Col: n.Col}
}

// Passable reports whether a search may enter the node.
func (n *Node) Passable() bool {
	return n.Role != RoleWall
}

// Grid is a rows×cols arena of nodes in row-major order.
// Nodes[Index(c)] is the node at c. start and end are arena indices.
type Grid struct {
	Rows, Cols int
	Nodes      []Node
	start, end int
}

// offsets lists neighbor deltas (Δrow, Δcol) in the fixed expansion order:
// up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
