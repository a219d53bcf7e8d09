package game

import (
	"strconv"
	"strings"
)

// String renders the grid top row first, one symbol per field, framed by the
// column coordinates and followed by the outer rim.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", SideLength+1))
	for i := 0; i < SideLength; i++ {
		sb.WriteString(strconv.Itoa(SideLength-1+i) + " ")
	}
	sb.WriteString("\n" + strings.Repeat(" ", SideLength) + strings.Repeat("↘ ", SideLength) + "\n")
	b.writeRows(&sb, func(f Field) string { return f.String() })
	sb.WriteString(strings.Repeat(" ", 2))
	for i := 0; i < SideLength; i++ {
		sb.WriteString(strconv.Itoa(i) + " ")
	}
	sb.WriteString("\n")
	b.writeOuterRim(&sb)
	return sb.String()
}

// CoordHelp renders the grid with every field replaced by its column
// coordinate, to help reading move coordinates.
func (b *Board) CoordHelp() string {
	var sb strings.Builder
	b.writeRows(&sb, func(f Field) string { return strconv.Itoa(f.Coord.Col) })
	b.writeOuterRim(&sb)
	return sb.String()
}

func (b *Board) writeRows(sb *strings.Builder, cell func(Field) string) {
	for row := Dim - 1; row >= 0; row-- {
		sb.WriteString(strings.Repeat(" ", Dim-RowLength(row)))
		sb.WriteByte(RowLetter(row))
		for _, f := range b.fields[row] {
			sb.WriteString(" " + cell(f))
		}
		sb.WriteString("\n")
	}
}

func (b *Board) writeOuterRim(sb *strings.Builder) {
	symbols := make([]string, len(b.outerRim))
	for i, m := range b.outerRim {
		symbols[i] = m.String()
	}
	sb.WriteString("Out:[" + strings.Join(symbols, ", ") + "]")
}
