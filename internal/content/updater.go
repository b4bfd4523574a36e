// Package content implements marker-delimited text splicing for partial
// file rewrites. It is a pure text transformation: no filesystem access,
// no knowledge of the language being generated. Everything outside the
// marker pair is user-owned and preserved byte for byte.
package content

import (
	"strings"

	"github.com/layoutdev/layout/internal/errors"
)

// Splice replaces the generator-owned region of existing, delimited by
// startMarker and endMarker, with block.
//
//   - Both markers present with start before end: everything strictly
//     between them is replaced; bytes before the start marker and after
//     the end marker are untouched.
//   - Neither marker present: the marker pair wrapping block is appended
//     to the end of existing (which may be empty for a new file).
//   - Any other marker arrangement (start without a following end, end
//     without a start, markers out of order): structural corruption. No
//     repair is guessed; a marker error is returned.
//
// Splicing the same block into its own output is byte-idempotent.
func Splice(existing, block, startMarker, endMarker string) (string, error) {
	si := strings.Index(existing, startMarker)
	ei := strings.Index(existing, endMarker)

	switch {
	case si >= 0 && ei >= 0:
		if ei < si {
			return "", errors.NewMarkerError("marker_order", "markers out of order")
		}
		return existing[:si+len(startMarker)] + "\n" + block + "\n" + existing[ei:], nil

	case si >= 0:
		return "", errors.NewMarkerError("marker_corrupt", "start marker without end marker")

	case ei >= 0:
		return "", errors.NewMarkerError("marker_corrupt", "end marker without start marker")

	default:
		var b strings.Builder
		b.WriteString(existing)
		if existing != "" && !strings.HasSuffix(existing, "\n") {
			b.WriteString("\n")
		}
		b.WriteString(startMarker)
		b.WriteString("\n")
		b.WriteString(block)
		b.WriteString("\n")
		b.WriteString(endMarker)
		b.WriteString("\n")

		return b.String(), nil
	}
}
