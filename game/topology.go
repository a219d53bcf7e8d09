package game

import "fmt"

const (
	SideLength = 5
	Dim        = 2*SideLength - 1 // Number of rows, also the length of the middle row
)

// Coord addresses a field by row index (0 is row 'A' at the bottom) and hex
// coordinate. The coordinate is not the index into the jagged row: rows above
// the middle row start at coordinate row-(SideLength-1).
type Coord struct {
	Row int
	Col int
}

// Direction is a neighbor index, 0 is up-left and indices increase clockwise.
type Direction int

const (
	UpLeft Direction = iota
	UpRight
	Right
	DownRight
	DownLeft
	Left
)

const NumDirections = 6

// deltas are (row, coord) offsets per direction.
var deltas = [NumDirections]Coord{
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
	{Row: -1, Col: -1},
	{Row: 0, Col: -1},
}

func (d Direction) Valid() bool {
	return d >= 0 && d < NumDirections
}

func (d Direction) Opposite() Direction {
	return (d + 3) % NumDirections
}

// Neighbor is one of the six neighbor slots of a field. Absent is set when
// the slot falls outside the grid, which is not the same as an empty field.
type Neighbor struct {
	Coord  Coord
	Absent bool
}

// ToRow converts a row letter to a row index.
func ToRow(letter byte) (int, bool) {
	row := int(letter) - 'A'
	if row < 0 || row >= Dim {
		return 0, false
	}
	return row, true
}

func RowLetter(row int) byte {
	return byte('A' + row)
}

// RowLength is the number of fields in the given row.
func RowLength(row int) int {
	return Dim - abs(row-(SideLength-1))
}

// rowOffset is the coordinate of the first field in a row.
func rowOffset(row int) int {
	return max(0, row-(SideLength-1))
}

// ToArrayCol converts a hex coordinate to the index inside the jagged row.
func ToArrayCol(row, coord int) int {
	return coord - rowOffset(row)
}

// ToCoord converts an index inside the jagged row to a hex coordinate.
func ToCoord(row, arrayCol int) int {
	return arrayCol + rowOffset(row)
}

func (c Coord) OnGrid() bool {
	return c.Row >= 0 && c.Row < Dim && c.Col >= 0 && c.Col < Dim && abs(c.Row-c.Col) < SideLength
}

// Neighbor returns the coordinate next to c in direction d, false if it is
// off the grid.
func (c Coord) Neighbor(d Direction) (Coord, bool) {
	if !d.Valid() {
		return Coord{}, false
	}
	n := Coord{Row: c.Row + deltas[d].Row, Col: c.Col + deltas[d].Col}
	return n, n.OnGrid()
}

// Neighbors lists all six neighbor slots, clockwise from up-left.
func (c Coord) Neighbors() [NumDirections]Neighbor {
	var result [NumDirections]Neighbor
	for d := Direction(0); d < NumDirections; d++ {
		n, ok := c.Neighbor(d)
		result[d] = Neighbor{Coord: n, Absent: !ok}
	}
	return result
}

// DirectionTo returns the direction leading from a to the adjacent b.
func DirectionTo(a, b Coord) (Direction, bool) {
	for d := Direction(0); d < NumDirections; d++ {
		if n, ok := a.Neighbor(d); ok && n == b {
			return d, true
		}
	}
	return 0, false
}

func IsAdjacent(a, b Coord) bool {
	_, ok := DirectionTo(a, b)
	return ok
}

// IsColinear reports whether a and b lie on one of the three hex axes.
func IsColinear(a, b Coord) bool {
	return a.Row == b.Row || a.Col == b.Col || a.Row-b.Row == a.Col-b.Col
}

// MidOf returns the field between a and b when both are two steps apart on
// one axis.
func MidOf(a, b Coord) (Coord, bool) {
	for d := Direction(0); d < NumDirections; d++ {
		n, ok := a.Neighbor(d)
		if !ok {
			continue
		}
		if m, ok := b.Neighbor(d.Opposite()); ok && m == n {
			return n, true
		}
	}
	return Coord{}, false
}

// IsColumn reports whether a, b and c form a contiguous line of three.
func IsColumn(a, b, c Coord) bool {
	if !IsAdjacent(a, b) || !IsAdjacent(b, c) || IsAdjacent(a, c) || a == c {
		return false
	}
	m, ok := MidOf(a, c)
	return ok && m == b
}

// AllCoords lists every field coordinate row by row from 'A'.
func AllCoords() []Coord {
	coords := make([]Coord, 0, Dim*Dim)
	for row := 0; row < Dim; row++ {
		for i := 0; i < RowLength(row); i++ {
			coords = append(coords, Coord{Row: row, Col: ToCoord(row, i)})
		}
	}
	return coords
}

// ParseCoord reads a coordinate such as "A1".
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("coordinate %q should be a row letter and a column digit", s)
	}
	row, ok := ToRow(s[0])
	if !ok {
		return Coord{}, fmt.Errorf("row %q out of range A-%c", s[0], RowLetter(Dim-1))
	}
	if s[1] < '0' || s[1] > '9' {
		return Coord{}, fmt.Errorf("column %q is not a digit", s[1])
	}
	col := int(s[1] - '0')
	if col >= Dim {
		return Coord{}, fmt.Errorf("column %d out of range 0-%d", col, Dim-1)
	}
	return Coord{Row: row, Col: col}, nil
}

func (c Coord) String() string {
	return fmt.Sprintf("%c%d", RowLetter(c.Row), c.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
