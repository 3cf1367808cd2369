package domain

// Palette is the ordered list of colors cycled across expressions.
var Palette = []string{
	"red",
	"green",
	"blue",
	"orange",
	"purple",
	"brown",
	"magenta",
	"teal",
	"black",
}

// ColorFor returns the color for the expression at index i, cycling through
// the palette. Negative indexes are treated as 0.
func ColorFor(i int) string {
	if i < 0 {
		i = 0
	}
	return Palette[i%len(Palette)]
}

// AssignColors maps every position in list to its color.
func AssignColors(list ExpressionList) []string {
	out := make([]string, len(list))
	for i := range list {
		out[i] = ColorFor(i)
	}
	return out
}
