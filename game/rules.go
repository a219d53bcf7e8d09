package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var ErrIllegalMove = errors.New("illegal move")

// MaxGroup is the largest number of marbles moved at once.
const MaxGroup = 3

// Modification relocates the marble at From to To, or into the outer rim when
// Captured is set. Modifications are applied in order.
type Modification struct {
	From     Coord
	To       Coord
	Captured bool
}

type plan struct {
	group  []Coord // Front marble first
	inLine bool
	pushed int
	mods   []Modification
}

// group resolves the marbles named by head and tail in textual order.
func group(head, tail Coord) ([]Coord, bool) {
	if !head.OnGrid() || !tail.OnGrid() {
		return nil, false
	}
	if head == tail {
		return []Coord{head}, true
	}
	if IsAdjacent(head, tail) {
		return []Coord{head, tail}, true
	}
	if mid, ok := MidOf(head, tail); ok {
		return []Coord{head, mid, tail}, true
	}
	return nil, false
}

// plan works out every marble relocation a move causes, false when the move
// is illegal. It never mutates the board.
func (b *Board) plan(m Move) (plan, bool) {
	if !m.Dir.Valid() {
		return plan{}, false
	}
	g, ok := group(m.Head, m.Tail)
	if !ok {
		return plan{}, false
	}
	first, ok := b.MarbleAt(g[0])
	if !ok {
		return plan{}, false
	}
	for _, c := range g[1:] {
		marble, ok := b.MarbleAt(c)
		if !ok || !b.SameTeam(first.Colour, marble.Colour) {
			return plan{}, false
		}
	}

	// The front marble is the one whose neighbor in the move direction is not
	// part of the group.
	if len(g) > 1 {
		if n, ok := g[0].Neighbor(m.Dir); ok && n == g[1] {
			slices.Reverse(g)
		}
	}
	p := plan{group: g, inLine: len(g) == 1}
	if len(g) > 1 {
		axis, _ := DirectionTo(g[1], g[0])
		p.inLine = m.Dir == axis
	}
	if p.inLine {
		if !b.planInLine(&p, m.Dir, first.Colour) {
			return plan{}, false
		}
		return p, true
	}
	return p, b.planSideStep(&p, m.Dir)
}

func (b *Board) planInLine(p *plan, dir Direction, colour Colour) bool {
	dest, ok := p.group[0].Neighbor(dir)
	if !ok {
		return false // Own marbles never leave the grid
	}

	// Walk the opposing run in front of the group.
	var run []Coord
	next, onGrid := dest, true
	for onGrid {
		marble, occupied := b.MarbleAt(next)
		if !occupied {
			break
		}
		if b.SameTeam(colour, marble.Colour) {
			return false
		}
		run = append(run, next)
		if len(run) >= len(p.group) {
			return false
		}
		next, onGrid = next.Neighbor(dir)
	}

	p.pushed = len(run)
	for i := len(run) - 1; i >= 0; i-- {
		to, ok := run[i].Neighbor(dir)
		p.mods = append(p.mods, Modification{From: run[i], To: to, Captured: !ok})
	}
	for _, c := range p.group {
		to, _ := c.Neighbor(dir)
		p.mods = append(p.mods, Modification{From: c, To: to})
	}
	return true
}

func (b *Board) planSideStep(p *plan, dir Direction) bool {
	for _, c := range p.group {
		to, ok := c.Neighbor(dir)
		if !ok {
			return false
		}
		if _, occupied := b.MarbleAt(to); occupied {
			return false
		}
		p.mods = append(p.mods, Modification{From: c, To: to})
	}
	return true
}

// IsValid reports whether the move is legal for whichever team owns the
// marbles. It is total: any coordinates, on or off the grid, are accepted.
func (b *Board) IsValid(m Move) bool {
	_, ok := b.plan(m)
	return ok
}

// IsValidFor additionally requires the acting colour to own the textual head
// marble. In the four player variant any marble of the group will do.
func (b *Board) IsValidFor(m Move, colour Colour) bool {
	p, ok := b.plan(m)
	if !ok {
		return false
	}
	if b.layout.IsFourPlayer() {
		for _, c := range p.group {
			if marble, _ := b.MarbleAt(c); marble.Colour == colour {
				return true
			}
		}
		return false
	}
	head, _ := b.MarbleAt(m.Head)
	return head.Colour == colour
}

// IsValidSingle checks moving the single marble at c.
func (b *Board) IsValidSingle(c Coord, dir Direction) bool {
	return b.IsValid(NewMove(c, c, dir))
}

// IsValidPair checks moving the two adjacent marbles at head and tail.
func (b *Board) IsValidPair(head, tail Coord, dir Direction) bool {
	return IsAdjacent(head, tail) && b.IsValid(NewMove(head, tail, dir))
}

// IsValidTriple checks moving the line head, mid, tail.
func (b *Board) IsValidTriple(head, mid, tail Coord, dir Direction) bool {
	return IsColumn(head, mid, tail) && b.IsValid(NewMove(head, tail, dir))
}

// GroupSize is the number of own marbles a legal move relocates, 0 when the
// move is illegal.
func (b *Board) GroupSize(m Move) int {
	p, ok := b.plan(m)
	if !ok {
		return 0
	}
	return len(p.group)
}

// Modifications lists the relocations a legal move would perform.
func (b *Board) Modifications(m Move) ([]Modification, bool) {
	p, ok := b.plan(m)
	return p.mods, ok
}

// Execute performs a legal move. Executing an illegal move is a programming
// error and panics; validate first or use TryExecute.
func (b *Board) Execute(m Move) {
	p, ok := b.plan(m)
	if !ok {
		panic(fmt.Sprintf("executing illegal move %s", m))
	}
	mover, _ := b.MarbleAt(p.group[0])
	for _, mod := range p.mods {
		marble, _ := b.MarbleAt(mod.From)
		b.ClearField(mod.From)
		if mod.Captured {
			b.outerRim = append(b.outerRim, marble)
			if t, ok := b.TeamOf(mover.Colour); ok {
				t.Score++
			}
			continue
		}
		b.SetMarble(mod.To, marble)
	}
}

// TryExecute validates the move and performs it.
func (b *Board) TryExecute(m Move) error {
	if !b.IsValid(m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	b.Execute(m)
	return nil
}
