package game

import "fmt"

type Colour uint8

const (
	NoColour Colour = iota
	White
	Red
	Black
	Green
)

// Colours lists the playable colours in seating order.
var Colours = []Colour{White, Red, Black, Green}

const EmptySymbol = "+"

func (c Colour) Symbol() string {
	switch c {
	case White:
		return "O"
	case Red:
		return "R"
	case Black:
		return "@"
	case Green:
		return "G"
	default:
		return EmptySymbol
	}
}

func (c Colour) String() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Black:
		return "black"
	case Green:
		return "green"
	default:
		return "none"
	}
}

// ParseColour accepts a colour name or its symbol.
func ParseColour(s string) (Colour, error) {
	for _, c := range Colours {
		if s == c.String() || s == c.Symbol() {
			return c, nil
		}
	}
	return NoColour, fmt.Errorf("unknown colour %q", s)
}

// Marble is a value: two marbles of one colour are interchangeable.
type Marble struct {
	Colour Colour
}

func (m Marble) String() string {
	return m.Colour.Symbol()
}

// Field is a grid cell. Fields compare by coordinate only.
type Field struct {
	Coord    Coord
	Marble   Marble
	Occupied bool
}

func (f Field) Equal(other Field) bool {
	return f.Coord == other.Coord
}

func (f Field) String() string {
	if !f.Occupied {
		return EmptySymbol
	}
	return f.Marble.String()
}
