package jsonvalue

import "strconv"

// formatFloat and formatInt give FromAny a canonical textual form for Go
// numeric types that did not already arrive as json.Number (e.g. literals
// built by hand rather than decoded).
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}
