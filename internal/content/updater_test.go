package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layoutdev/layout/internal/errors"
)

const (
	start = "// start auto managed by layout."
	end   = "// end auto managed by layout."
)

func TestSpliceNewFile(t *testing.T) {
	out, err := Splice("", "pub mod model;", start, end)
	require.NoError(t, err)

	assert.Equal(t, start+"\npub mod model;\n"+end+"\n", out)
}

func TestSpliceAppendsToExistingContent(t *testing.T) {
	existing := "// hand written header\nuse std::fmt;\n"
	out, err := Splice(existing, "pub mod model;", start, end)
	require.NoError(t, err)

	assert.Equal(t, existing+start+"\npub mod model;\n"+end+"\n", out)
}

func TestSpliceAppendAddsNewlineSeparator(t *testing.T) {
	out, err := Splice("no trailing newline", "X", start, end)
	require.NoError(t, err)

	assert.Equal(t, "no trailing newline\n"+start+"\nX\n"+end+"\n", out)
}

func TestSpliceReplacesOnlyBetweenMarkers(t *testing.T) {
	existing := "user prefix\n" +
		start + "\nold generated\n" + end + "\n" +
		"user suffix\n"

	out, err := Splice(existing, "new generated", start, end)
	require.NoError(t, err)

	assert.Equal(t, "user prefix\n"+start+"\nnew generated\n"+end+"\n"+"user suffix\n", out)
}

func TestSpliceIdempotent(t *testing.T) {
	block := "pub mod model;\npub mod repo;"

	once, err := Splice("some user text\n", block, start, end)
	require.NoError(t, err)

	twice, err := Splice(once, block, start, end)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestSpliceStartWithoutEnd(t *testing.T) {
	existing := "prefix\n" + start + "\ndangling"

	_, err := Splice(existing, "X", start, end)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeMarker))
}

func TestSpliceEndWithoutStart(t *testing.T) {
	existing := "prefix\n" + end + "\n"

	_, err := Splice(existing, "X", start, end)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeMarker))
}

func TestSpliceMarkersOutOfOrder(t *testing.T) {
	existing := end + "\nmiddle\n" + start + "\n"

	_, err := Splice(existing, "X", start, end)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeMarker))
}

func TestSpliceEmptyBlock(t *testing.T) {
	out, err := Splice("", "", start, end)
	require.NoError(t, err)
	assert.Equal(t, start+"\n\n"+end+"\n", out)

	again, err := Splice(out, "", start, end)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}
