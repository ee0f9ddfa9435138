package ezmenulib

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	t.Parallel()

	t.Run("string passes through", func(t *testing.T) {
		t.Parallel()
		got, err := parseValue[string]("hello world")
		require.NoError(t, err)
		assert.Equal(t, "hello world", got)
	})

	t.Run("integer types", func(t *testing.T) {
		t.Parallel()
		i, err := parseValue[int]("42")
		require.NoError(t, err)
		assert.Equal(t, 42, i)

		n, err := parseValue[int64]("-9000000000")
		require.NoError(t, err)
		assert.Equal(t, int64(-9000000000), n)

		u, err := parseValue[uint16]("2022")
		require.NoError(t, err)
		assert.Equal(t, uint16(2022), u)
	})

	t.Run("integer overflow is an error", func(t *testing.T) {
		t.Parallel()
		_, err := parseValue[uint8]("300")
		assert.Error(t, err)
	})

	t.Run("negative input for unsigned is an error", func(t *testing.T) {
		t.Parallel()
		_, err := parseValue[uint]("-1")
		assert.Error(t, err)
	})

	t.Run("float types", func(t *testing.T) {
		t.Parallel()
		f, err := parseValue[float64]("3.14")
		require.NoError(t, err)
		assert.InDelta(t, 3.14, f, 0.0001)
	})

	t.Run("duration", func(t *testing.T) {
		t.Parallel()
		d, err := parseValue[time.Duration]("1h30m")
		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, d)
	})

	t.Run("text unmarshaler", func(t *testing.T) {
		t.Parallel()
		got, err := parseValue[caseTag]("HELLO")
		require.NoError(t, err)
		assert.Equal(t, caseTag("hello"), got)
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()
		_, err := parseValue[struct{ X int }]("anything")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})
}

// caseTag lowercases its input, exercising the encoding.TextUnmarshaler
// fallback of the built-in parser.
type caseTag string

func (c *caseTag) UnmarshalText(text []byte) error {
	*c = caseTag(strings.ToLower(string(text)))
	return nil
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	yes := []string{"y", "ye", "yes", "yep", "yeah", "yup", "true", "1", "YES", "Yeah"}
	for _, s := range yes {
		got, err := parseBool(s)
		require.NoError(t, err, "input %q", s)
		assert.True(t, got, "input %q", s)
	}

	no := []string{"n", "no", "non", "nope", "nah", "false", "0", "NO", "Nope"}
	for _, s := range no {
		got, err := parseBool(s)
		require.NoError(t, err, "input %q", s)
		assert.False(t, got, "input %q", s)
	}

	_, err := parseBool("maybe")
	assert.Error(t, err)
}

func TestParseIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		n       int
		wantIdx int
		wantOK  bool
	}{
		{name: "first choice", line: "1", n: 3, wantIdx: 0, wantOK: true},
		{name: "last choice", line: "3", n: 3, wantIdx: 2, wantOK: true},
		{name: "zero is out of range", line: "0", n: 3, wantOK: false},
		{name: "past the end", line: "4", n: 3, wantOK: false},
		{name: "negative", line: "-1", n: 3, wantOK: false},
		{name: "not a number", line: "first", n: 3, wantOK: false},
		{name: "empty line", line: "", n: 3, wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			idx, ok := parseIndex(tt.line, tt.n)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantIdx, idx)
			}
		})
	}
}
