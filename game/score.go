package game

import (
	"abalone/meta"
	"strconv"
)

// LoserMarbles is the number of lost marbles that ends the game.
const LoserMarbles = meta.LOSER_MARBLES

// WinnerTeams lists the teams that have captured LoserMarbles or more.
func (b *Board) WinnerTeams() []*Team {
	var winners []*Team
	for _, t := range b.teams {
		if t.Score >= LoserMarbles {
			winners = append(winners, t)
		}
	}
	return winners
}

func (b *Board) HasWinner() bool {
	return len(b.WinnerTeams()) > 0
}

// IsWinner reports whether the colour belongs to a winning team.
func (b *Board) IsWinner(colour Colour) bool {
	for _, t := range b.WinnerTeams() {
		if t.Has(colour) {
			return true
		}
	}
	return false
}

// MostPointsTeam returns the unique highest scoring team, false on a tie.
func (b *Board) MostPointsTeam() (*Team, bool) {
	var best *Team
	tied := false
	for _, t := range b.teams {
		switch {
		case best == nil || t.Score > best.Score:
			best, tied = t, false
		case t.Score == best.Score:
			tied = true
		}
	}
	return best, best != nil && !tied
}

// Lost counts the marbles of the team's colours in the outer rim.
func (b *Board) Lost(t *Team) int {
	lost := 0
	for _, m := range b.outerRim {
		if t.Has(m.Colour) {
			lost++
		}
	}
	return lost
}

// Scores maps every team, by its String form, to its score.
func (b *Board) Scores() map[string]int {
	scores := make(map[string]int, len(b.teams))
	for _, t := range b.teams {
		scores[t.String()] = t.Score
	}
	return scores
}

// Outcome is the result of a finished or running game. Winners is empty for
// a running game and for a draw.
type Outcome struct {
	Over    bool
	Draw    bool
	Winners []*Team
}

// Outcome resolves the game state. Once the turn limit is reached the unique
// highest scorer wins and a tie is a draw.
func (b *Board) Outcome(turnLimitReached bool) Outcome {
	if winners := b.WinnerTeams(); len(winners) > 0 {
		return Outcome{Over: true, Winners: winners}
	}
	if !turnLimitReached {
		return Outcome{}
	}
	if t, ok := b.MostPointsTeam(); ok {
		return Outcome{Over: true, Winners: []*Team{t}}
	}
	return Outcome{Over: true, Draw: true}
}

// WinnerColours flattens the winning teams into colours.
func (o Outcome) WinnerColours() []Colour {
	var colours []Colour
	for _, t := range o.Winners {
		colours = append(colours, t.Colours...)
	}
	return colours
}

func (o Outcome) String() string {
	switch {
	case !o.Over:
		return "running"
	case o.Draw:
		return "draw"
	}
	s := ""
	for i, t := range o.Winners {
		if i > 0 {
			s += ","
		}
		s += t.String() + "(" + strconv.Itoa(t.Score) + ")"
	}
	return s
}
