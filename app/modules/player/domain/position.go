package playerdomain

import "strings"

// Position is an NFL roster position code.
type Position string

// Positions lists every valid position code in display order.
var Positions = []Position{"QB", "RB", "WR", "TE", "K", "DEF", "OL", "DL", "LB", "DB", "FB", "P", "LS"}

// ParsePosition normalizes s and reports whether it is a known code.
// Matching ignores case and surrounding blanks.
func ParsePosition(s string) (Position, bool) {
	code := Position(strings.ToUpper(strings.TrimSpace(s)))
	for _, p := range Positions {
		if p == code {
			return p, true
		}
	}
	return "", false
}

// PositionList renders the valid codes as "QB, RB, ...".
func PositionList() string {
	codes := make([]string, len(Positions))
	for i, p := range Positions {
		codes[i] = string(p)
	}
	return strings.Join(codes, ", ")
}
