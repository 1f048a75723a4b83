package term

import "io"

// Bell writes the terminal bell character (BEL) to w, used by the line
// editor when completion has no matches, or on the first Tab of an
// ambiguous completion that cannot be extended.
func Bell(w io.Writer) {
	io.WriteString(w, "\a")
}
