package grounding

// Negation and contradiction markers scanned for in the window around a
// matched claim term.
var defaultNegationMarkers = []string{
	"not", "no", "never", "false", "incorrect", "wrong",
}
