// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// New constructs a rows×cols grid with the given Start, End and walls.
// Walls may repeat; a wall on Start or End is rejected rather than dropped,
// so the role invariants hold for every Grid that New returns.
// Every node starts with Distance=Infinity and Previous=NoPrevious.
// Complexity: O(rows×cols + len(walls)) time, O(rows×cols) memory.
func New(rows, cols int, start, end Coord, walls []Coord) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrEmptyGrid, rows, cols)
	}
	g := &Grid{Rows: rows, Cols: cols, Nodes: make([]Node, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Nodes[g.index(r, c)] = Node{Row: r, Col: c, Role: RoleEmpty}
		}
	}
	g.Reset()

	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v", ErrOutOfBounds, end)
	}
	if start == end {
		return nil, fmt.Errorf("%w: both at %v", ErrSameEndpoints, start)
	}
	g.start, g.end = g.Index(start), g.Index(end)
	g.Nodes[g.start].Role = RoleStart
	g.Nodes[g.end].Role = RoleEnd

	for _, w := range walls {
		if !g.InBounds(w) {
			return nil, fmt.Errorf("%w: wall %v", ErrOutOfBounds, w)
		}
		if w == start || w == end {
			return nil, fmt.Errorf("%w: wall %v", ErrWallOnEndpoint, w)
		}
		g.Nodes[g.Index(w)].Role = RoleWall
	}

	return g, nil
}

// FromLayout parses a textual grid: '.' empty, 'S' start, 'E' end, '#' wall.
// Path and visit marks ('*', 'o') produced by String are read back as empty
// cells, so a rendered grid can be parsed again.
func FromLayout(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	var (
		start, end       Coord
		hasStart, hasEnd bool
		walls            []Coord
	)
	for r, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), width)
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case GlyphEmpty, GlyphPath, GlyphSeen:
			case GlyphWall:
				walls = append(walls, Coord{r, c})
			case GlyphStart:
				if hasStart {
					return nil, fmt.Errorf("%w: second start at (%d,%d)", ErrDuplicateRole, r, c)
				}
				start, hasStart = Coord{r, c}, true
			case GlyphEnd:
				if hasEnd {
					return nil, fmt.Errorf("%w: second end at (%d,%d)", ErrDuplicateRole, r, c)
				}
				end, hasEnd = Coord{r, c}, true
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, line[c], r, c)
			}
		}
	}
	if !hasStart || !hasEnd {
		return nil, ErrMissingEndpoint
	}

	return New(len(rows), width, start, end, walls)
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// index maps (row, col) to a row-major arena index.
func (g *Grid) index(r, c int) int {
	return r*g.Cols + c
}

// Index maps c to its arena index. The caller ensures InBounds(c).
func (g *Grid) Index(c Coord) int {
	return g.index(c.Row, c.Col)
}

// Coord converts an arena index back to a coordinate.
func (g *Grid) Coord(idx int) Coord {
	return Coord{Row: idx / g.Cols, Col: idx % g.Cols}
}

// At returns the node at c, or nil when c is out of bounds.
func (g *Grid) At(c Coord) *Node {
	if !g.InBounds(c) {
		return nil
	}

	return &g.Nodes[g.Index(c)]
}

// Start returns the Start coordinate.
func (g *Grid) Start() Coord { return g.Coord(g.start) }

// End returns the End coordinate.
func (g *Grid) End() Coord { return g.Coord(g.end) }

// StartIndex returns the arena index of Start.
func (g *Grid) StartIndex() int { return g.start }

// EndIndex returns the arena index of End.
func (g *Grid) EndIndex() int { return g.end }

// Neighbors appends the in-bounds neighbors of idx to buf in the order
// up, down, left, right and returns the extended slice. Walls are included;
// callers filter with Node.Passable.
// Complexity: O(1).
func (g *Grid) Neighbors(idx int, buf []int) []int {
	r, c := idx/g.Cols, idx%g.Cols
	for _, d := range offsets {
		nr, nc := r+d[0], c+d[1]
		if nr < 0 || nr >= g.Rows || nc < 0 || nc >= g.Cols {
			continue
		}
		buf = append(buf, g.index(nr, nc))
	}

	return buf
}

// Passable returns the number of non-wall cells.
func (g *Grid) Passable() int {
	n := 0
	for i := range g.Nodes {
		if g.Nodes[i].Passable() {
			n++
		}
	}

	return n
}

// Walls returns the number of wall cells.
func (g *Grid) Walls() int {
	return len(g.Nodes) - g.Passable()
}

// Validate re-checks the role invariants. It guards grids assembled by hand
// (for example a zero Grid value) before a search touches them.
func (g *Grid) Validate() error {
	if g == nil || g.Rows <= 0 || g.Cols <= 0 || len(g.Nodes) != g.Rows*g.Cols {
		return ErrEmptyGrid
	}
	starts, ends := 0, 0
	for i := range g.Nodes {
		switch g.Nodes[i].Role {
		case RoleStart:
			starts++
			if i != g.start {
				return fmt.Errorf("%w: stray start at %v", ErrDuplicateRole, g.Coord(i))
			}
		case RoleEnd:
			ends++
			if i != g.end {
				return fmt.Errorf("%w: stray end at %v", ErrDuplicateRole, g.Coord(i))
			}
		}
	}
	if starts == 0 || ends == 0 {
		return ErrMissingEndpoint
	}
	if starts > 1 || ends > 1 {
		return ErrDuplicateRole
	}

	return nil
}

// Reset clears search metadata on every node. Roles are untouched.
func (g *Grid) Reset() {
	for i := range g.Nodes {
		n := &g.Nodes[i]
		n.Visited = false
		n.OnPath = false
		n.Distance = Infinity
		n.Heuristic = 0
		n.TotalCost = Infinity
		n.Previous = NoPrevious
	}
}

// Clone returns a deep copy of g. Nodes hold only values, so a slice copy
// is sufficient.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	cp := *g
	cp.Nodes = make([]Node, len(g.Nodes))
	copy(cp.Nodes, g.Nodes)

	return &cp
}

// String renders the grid with the layout glyphs, marking path cells '*'
// and visited cells 'o'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			sb.WriteByte(g.Nodes[g.index(r, c)].Glyph())
		}
		if r < g.Rows-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Glyph returns the layout character for n.
func (n *Node) Glyph() byte {
	switch {
	case n.Role == RoleStart:
		return GlyphStart
	case n.Role == RoleEnd:
		return GlyphEnd
	case n.Role == RoleWall:
		return GlyphWall
	case n.OnPath:
		return GlyphPath
	case n.Visited:
		return GlyphSeen
	default:
		return GlyphEmpty
	}
}
