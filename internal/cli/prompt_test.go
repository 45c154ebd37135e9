package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter(t *testing.T) {
	var shown []string
	p := NewLinePrompter(strings.NewReader("3\r\nsecond\nlast"), func(s string) { shown = append(shown, s) })

	got, err := p.Prompt("count: ")
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	got, err = p.Prompt("again: ")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	// no trailing newline
	got, err = p.Prompt("last: ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = p.Prompt("eof: ")
	assert.ErrorIs(t, err, ErrAborted)

	assert.Equal(t, []string{"count: ", "again: ", "last: ", "eof: "}, shown)
}

func TestLinePrompterNilShow(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("5\n"), nil)
	got, err := p.Prompt("count: ")
	require.NoError(t, err)
	assert.Equal(t, "5", got)
}
