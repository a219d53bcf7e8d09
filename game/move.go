package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMoveFormat = errors.New("invalid move format")

const (
	localSeparator = ","
	wireDelimiter  = ";"
	wireSeparator  = ","
	wireStartCol   = 1 // Wire columns count from one
)

// Move is a free-standing value: head and tail of the group and the direction
// every marble of the group moves in. Head equals tail for a single marble.
type Move struct {
	Head Coord
	Tail Coord
	Dir  Direction
}

func NewMove(head, tail Coord, dir Direction) Move {
	return Move{Head: head, Tail: tail, Dir: dir}
}

// Inverse swaps head and tail.
func (m Move) Inverse() Move {
	return Move{Head: m.Tail, Tail: m.Head, Dir: m.Dir}
}

// String formats the local form, e.g. "A1,B1,1".
func (m Move) String() string {
	return m.Head.String() + localSeparator + m.Tail.String() + localSeparator + strconv.Itoa(int(m.Dir))
}

// Wire formats the wire form, e.g. "2,A;2,B;1".
func (m Move) Wire() string {
	group := func(c Coord) string {
		return strconv.Itoa(c.Col+wireStartCol) + wireSeparator + string(RowLetter(c.Row))
	}
	return group(m.Head) + wireDelimiter + group(m.Tail) + wireDelimiter + strconv.Itoa(int(m.Dir))
}

// ParseMove reads the local form "<Row><Col>,<Row><Col>,<Dir>".
func ParseMove(s string) (Move, error) {
	parts := strings.Split(strings.TrimSpace(s), localSeparator)
	if len(parts) != 3 {
		return Move{}, fmt.Errorf("%w: %q should have 3 comma separated parts", ErrMoveFormat, s)
	}
	head, err := ParseCoord(parts[0])
	if err != nil {
		return Move{}, fmt.Errorf("%w: head: %v", ErrMoveFormat, err)
	}
	tail, err := ParseCoord(parts[1])
	if err != nil {
		return Move{}, fmt.Errorf("%w: tail: %v", ErrMoveFormat, err)
	}
	dir, err := parseDirection(parts[2])
	if err != nil {
		return Move{}, err
	}
	return NewMove(head, tail, dir), nil
}

// ParseWireMove reads the wire form "<Col+1>,<Row>;<Col+1>,<Row>;<Dir>".
func ParseWireMove(s string) (Move, error) {
	parts := strings.Split(strings.TrimSpace(s), wireDelimiter)
	if len(parts) != 3 {
		return Move{}, fmt.Errorf("%w: %q should have 3 semicolon separated parts", ErrMoveFormat, s)
	}
	head, err := parseWireCoord(parts[0])
	if err != nil {
		return Move{}, fmt.Errorf("%w: head: %v", ErrMoveFormat, err)
	}
	tail, err := parseWireCoord(parts[1])
	if err != nil {
		return Move{}, fmt.Errorf("%w: tail: %v", ErrMoveFormat, err)
	}
	dir, err := parseDirection(parts[2])
	if err != nil {
		return Move{}, err
	}
	return NewMove(head, tail, dir), nil
}

func parseWireCoord(s string) (Coord, error) {
	group := strings.Split(s, wireSeparator)
	if len(group) != 2 {
		return Coord{}, fmt.Errorf("%q should be <column>,<row>", s)
	}
	if !isDigits(group[0]) {
		return Coord{}, fmt.Errorf("column %q is not a number", group[0])
	}
	col, err := strconv.Atoi(group[0])
	if err != nil {
		return Coord{}, fmt.Errorf("column %q is not a number", group[0])
	}
	if col < wireStartCol || col >= Dim+wireStartCol {
		return Coord{}, fmt.Errorf("column %d out of range %d-%d", col, wireStartCol, Dim)
	}
	if len(group[1]) != 1 {
		return Coord{}, fmt.Errorf("row %q should be a single letter", group[1])
	}
	row, ok := ToRow(group[1][0])
	if !ok {
		return Coord{}, fmt.Errorf("row %q out of range A-%c", group[1], RowLetter(Dim-1))
	}
	return Coord{Row: row, Col: col - wireStartCol}, nil
}

func parseDirection(s string) (Direction, error) {
	if !isDigits(s) {
		return 0, fmt.Errorf("%w: direction %q is not a number", ErrMoveFormat, s)
	}
	d, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: direction %q is not a number", ErrMoveFormat, s)
	}
	if !Direction(d).Valid() {
		return 0, fmt.Errorf("%w: direction should be between 0-5, it was %d", ErrMoveFormat, d)
	}
	return Direction(d), nil
}

// isDigits rejects signs and spaces, which strconv.Atoi would accept.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
