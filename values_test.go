package ezmenulib

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testValues builds a Values over an in-memory stream pair, returning the
// output buffer so tests can assert exact rendered bytes.
func testValues(input string) (*Values, *bytes.Buffer) {
	var out bytes.Buffer
	return NewValues(NewHandle(strings.NewReader(input), &out)), &out
}

func TestNewValues(t *testing.T) {
	t.Parallel()

	t.Run("nil handle falls back to the standard streams", func(t *testing.T) {
		t.Parallel()
		v := NewValues(nil)
		assert.NotNil(t, v.Handle())
	})

	t.Run("handle accessor returns the configured handle", func(t *testing.T) {
		t.Parallel()
		h := NewHandle(strings.NewReader(""), &bytes.Buffer{})
		v := NewValues(h)
		assert.Same(t, h, v.Handle())
	})
}

func TestValuesFormatInheritance(t *testing.T) {
	t.Parallel()

	t.Run("prompts inherit the container baseline", func(t *testing.T) {
		t.Parallel()
		v, out := testValues("Ahmad\n")
		v.Fmt(NewFormat(WithPrefix("* "), WithLineBreak(false)))

		got, err := Prompt[string](v, NewWritten("your name"))
		require.NoError(t, err)
		assert.Equal(t, "Ahmad", got)
		assert.Equal(t, "* your name>> ", out.String())
	})

	t.Run("a prompt format overrides only its set fields", func(t *testing.T) {
		t.Parallel()
		v, out := testValues("Ahmad\n")
		v.Fmt(NewFormat(WithPrefix("* "), WithLineBreak(false)))

		got, err := Prompt[string](v, NewWritten("your name").Fmt(NewFormat(WithSuffix(": "))))
		require.NoError(t, err)
		assert.Equal(t, "Ahmad", got)
		assert.Equal(t, "* your name: ", out.String())
	})
}
