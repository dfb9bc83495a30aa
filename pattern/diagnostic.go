package pattern

import "fmt"

// Diagnostic describes a parse or match failure together with the byte
// offset it refers to: an offset into the pattern text for parse errors,
// and the failing node's pattern offset for match errors. Diagnostics are
// surfaced through query methods rather than panics so callers can choose
// to log, retry with a relaxed pattern, or abort.
type Diagnostic struct {
	Message string
	Pos     int
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s at position %d", d.Message, d.Pos)
}
