package ui

import "strings"

// Seven-segment glyphs, three rows tall.
var segmentGlyphs = map[rune][3]string{
	'0': {" _ ", "| |", "|_|"},
	'1': {"   ", "  |", "  |"},
	'2': {" _ ", " _|", "|_ "},
	'3': {" _ ", " _|", " _|"},
	'4': {"   ", "|_|", "  |"},
	'5': {" _ ", "|_ ", " _|"},
	'6': {" _ ", "|_ ", "|_|"},
	'7': {" _ ", "  |", "  |"},
	'8': {" _ ", "|_|", "|_|"},
	'9': {" _ ", "|_|", " _|"},
	'.': {" ", " ", "."},
	'-': {"   ", " _ ", "   "},
}

// SevenSegment renders s as three rows of segment digits. Unknown runes
// become blanks.
func SevenSegment(s string) string {
	var rows [3]strings.Builder
	for _, r := range s {
		g, ok := segmentGlyphs[r]
		if !ok {
			g = [3]string{" ", " ", " "}
		}
		for i := range rows {
			rows[i].WriteString(g[i])
		}
	}
	return rows[0].String() + "\n" + rows[1].String() + "\n" + rows[2].String()
}
