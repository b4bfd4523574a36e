//go:build property
// +build property

package content

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSpliceProperties exercises the splice invariants over arbitrary
// user text and generated blocks.
func TestSpliceProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	const (
		startM = "// start auto managed by layout."
		endM   = "// end auto managed by layout."
	)

	clean := func(s string) bool {
		return !strings.Contains(s, startM) && !strings.Contains(s, endM)
	}

	// Property: splicing a block into its own output is byte-idempotent.
	properties.Property("splice idempotence", prop.ForAll(
		func(existing, block string) bool {
			if !clean(existing) || !clean(block) {
				return true
			}

			once, err := Splice(existing, block, startM, endM)
			if err != nil {
				return false
			}

			twice, err := Splice(once, block, startM, endM)
			if err != nil {
				return false
			}

			return once == twice
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	// Property: user bytes before the start marker and after the end
	// marker survive any splice.
	properties.Property("user regions preserved", prop.ForAll(
		func(prefix, suffix, oldBlock, newBlock string) bool {
			if !clean(prefix) || !clean(suffix) || !clean(oldBlock) || !clean(newBlock) {
				return true
			}

			existing := prefix + startM + "\n" + oldBlock + "\n" + endM + suffix

			out, err := Splice(existing, newBlock, startM, endM)
			if err != nil {
				return false
			}

			return strings.HasPrefix(out, prefix+startM) &&
				strings.HasSuffix(out, endM+suffix)
		},
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
	))

	// Property: a lone start marker is always rejected and never repaired.
	properties.Property("corruption detected", prop.ForAll(
		func(prefix string) bool {
			if !clean(prefix) {
				return true
			}

			_, err := Splice(prefix+startM+"\ntail", "block", startM, endM)

			return err != nil
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
