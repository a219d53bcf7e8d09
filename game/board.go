package game

import "golang.org/x/exp/slices"

// Board is the jagged hex grid together with the captured marbles and the
// teams playing on it. A Board is not safe for concurrent mutation.
type Board struct {
	layout   Layout
	fields   [Dim][]Field
	outerRim []Marble
	teams    []*Team
}

// NewBoard allocates the grid and places the starting marbles of a layout.
func NewBoard(layout Layout) *Board {
	b := &Board{layout: layout}
	for _, colours := range layout.Teams {
		b.teams = append(b.teams, &Team{Colours: slices.Clone(colours)})
	}
	b.Reset()
	return b
}

// Reset empties the grid and outer rim, zeroes the scores and places the
// starting marbles again. Team pointers stay the same.
func (b *Board) Reset() {
	for row := 0; row < Dim; row++ {
		b.fields[row] = make([]Field, RowLength(row))
		for i := range b.fields[row] {
			b.fields[row][i] = Field{Coord: Coord{Row: row, Col: ToCoord(row, i)}}
		}
	}
	b.outerRim = nil
	for _, t := range b.teams {
		t.Score = 0
	}
	for _, p := range b.layout.Placements {
		b.SetMarble(p.Coord, Marble{Colour: p.Colour})
	}
}

// Clone returns a deep copy sharing nothing mutable with b.
func (b *Board) Clone() *Board {
	c := &Board{
		layout:   b.layout,
		outerRim: slices.Clone(b.outerRim),
		teams:    make([]*Team, len(b.teams)),
	}
	for row := range b.fields {
		c.fields[row] = slices.Clone(b.fields[row])
	}
	for i, t := range b.teams {
		c.teams[i] = &Team{Colours: slices.Clone(t.Colours), Score: t.Score}
	}
	return c
}

func (b *Board) Layout() Layout {
	return b.layout
}

func (b *Board) field(c Coord) *Field {
	if !c.OnGrid() {
		return nil
	}
	return &b.fields[c.Row][ToArrayCol(c.Row, c.Col)]
}

// Field returns a copy of the field at c, false when c is off the grid.
func (b *Board) Field(c Coord) (Field, bool) {
	f := b.field(c)
	if f == nil {
		return Field{}, false
	}
	return *f, true
}

// MarbleAt returns the marble at c, false when c is empty or off the grid.
func (b *Board) MarbleAt(c Coord) (Marble, bool) {
	f := b.field(c)
	if f == nil || !f.Occupied {
		return Marble{}, false
	}
	return f.Marble, true
}

// SetMarble places m at c, replacing whatever was there. Off-grid
// coordinates are ignored.
func (b *Board) SetMarble(c Coord, m Marble) {
	if f := b.field(c); f != nil {
		f.Marble = m
		f.Occupied = true
	}
}

func (b *Board) ClearField(c Coord) {
	if f := b.field(c); f != nil {
		f.Marble = Marble{}
		f.Occupied = false
	}
}

// Fields lists copies of all fields row by row from 'A'.
func (b *Board) Fields() []Field {
	result := make([]Field, 0, Dim*Dim)
	for row := range b.fields {
		result = append(result, b.fields[row]...)
	}
	return result
}

// FieldsOf lists the coordinates holding a marble of the given colour.
func (b *Board) FieldsOf(colour Colour) []Coord {
	var result []Coord
	for row := range b.fields {
		for _, f := range b.fields[row] {
			if f.Occupied && f.Marble.Colour == colour {
				result = append(result, f.Coord)
			}
		}
	}
	return result
}

func (b *Board) OuterRim() []Marble {
	return slices.Clone(b.outerRim)
}

func (b *Board) Teams() []*Team {
	return b.teams
}

// TeamOf returns the team owning the colour.
func (b *Board) TeamOf(colour Colour) (*Team, bool) {
	for _, t := range b.teams {
		if t.Has(colour) {
			return t, true
		}
	}
	return nil, false
}

func (b *Board) SameTeam(a, c Colour) bool {
	t, ok := b.TeamOf(a)
	return ok && t.Has(c)
}

// OtherTeams lists every team except t in seating order.
func (b *Board) OtherTeams(t *Team) []*Team {
	var result []*Team
	for _, other := range b.teams {
		if other != t {
			result = append(result, other)
		}
	}
	return result
}

// Colours lists the colours in play in seating order.
func (b *Board) Colours() []Colour {
	return slices.Clone(b.layout.Colours)
}

// CountOnGrid counts the marbles still on the grid.
func (b *Board) CountOnGrid() int {
	count := 0
	for row := range b.fields {
		for _, f := range b.fields[row] {
			if f.Occupied {
				count++
			}
		}
	}
	return count
}

// CountMarbles counts the marbles on the grid and in the outer rim.
func (b *Board) CountMarbles() int {
	return b.CountOnGrid() + len(b.outerRim)
}

// Equal compares marble placement, outer rim and scores.
func (b *Board) Equal(other *Board) bool {
	for row := range b.fields {
		if !slices.Equal(b.fields[row], other.fields[row]) {
			return false
		}
	}
	if !slices.Equal(b.outerRim, other.outerRim) || len(b.teams) != len(other.teams) {
		return false
	}
	for i, t := range b.teams {
		if t.Score != other.teams[i].Score || !slices.Equal(t.Colours, other.teams[i].Colours) {
			return false
		}
	}
	return true
}
