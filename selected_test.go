package ezmenulib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type license int

const (
	mit license = iota
	gpl
	bsd
)

func licenseChoices() []Choice[license] {
	return []Choice[license]{
		NewChoice("MIT", mit),
		NewChoice("GPL", gpl),
		NewChoice("BSD", bsd),
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	t.Run("renders the numbered list once", func(t *testing.T) {
		t.Parallel()
		v, out := testValues("2\n")
		got, err := Select(v, NewSelected("select a license", licenseChoices()...))
		require.NoError(t, err)
		assert.Equal(t, gpl, got)
		assert.Equal(t, "--> select a license\n1 - MIT\n2 - GPL\n3 - BSD\n>> ", out.String())
	})

	t.Run("invalid input retries with the suffix only", func(t *testing.T) {
		t.Parallel()
		v, out := testValues("9\n\nGPL\n2\n")
		got, err := Select(v, NewSelected("select a license", licenseChoices()...))
		require.NoError(t, err)
		assert.Equal(t, gpl, got)
		assert.Equal(t, "--> select a license\n1 - MIT\n2 - GPL\n3 - BSD\n>> >> >> >> ", out.String())
	})

	t.Run("the default choice is marked", func(t *testing.T) {
		t.Parallel()
		v, out := testValues("2\n")
		_, err := Select(v, NewSelected("select a license", licenseChoices()...).Default(0))
		require.NoError(t, err)
		assert.Equal(t, "--> select a license\n1 - MIT (default)\n2 - GPL\n3 - BSD\n>> ", out.String())
	})

	t.Run("invalid input returns the default choice", func(t *testing.T) {
		t.Parallel()
		v, _ := testValues("nope\n")
		got, err := Select(v, NewSelected("select a license", licenseChoices()...).Default(2))
		require.NoError(t, err)
		assert.Equal(t, bsd, got)
	})

	t.Run("no choices is fatal", func(t *testing.T) {
		t.Parallel()
		v, _ := testValues("1\n")
		_, err := Select(v, NewSelected[license]("select a license"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoChoices)
	})

	t.Run("default index out of range is fatal", func(t *testing.T) {
		t.Parallel()
		v, _ := testValues("1\n")
		_, err := Select(v, NewSelected("select a license", licenseChoices()...).Default(5))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDefaultOutOfRange)
	})

	t.Run("exhausted input is fatal", func(t *testing.T) {
		t.Parallel()
		v, _ := testValues("")
		_, err := Select(v, NewSelected("select a license", licenseChoices()...))
		assert.Error(t, err)
	})
}

func TestSelectOptional(t *testing.T) {
	t.Parallel()

	t.Run("empty input is absence", func(t *testing.T) {
		t.Parallel()
		v, out := testValues("\n")
		_, ok, err := SelectOptional(v, NewSelected("select a license", licenseChoices()...))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "--> select a license (optional)\n1 - MIT\n2 - GPL\n3 - BSD\n>> ", out.String())
	})

	t.Run("non-empty invalid input is retried", func(t *testing.T) {
		t.Parallel()
		v, _ := testValues("x\n3\n")
		got, ok, err := SelectOptional(v, NewSelected("select a license", licenseChoices()...))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, bsd, got)
	})

	t.Run("with a default the optional note is dropped", func(t *testing.T) {
		t.Parallel()
		v, out := testValues("\n")
		_, _, err := SelectOptional(v, NewSelected("select a license", licenseChoices()...).Default(1))
		require.NoError(t, err)
		assert.Equal(t, "--> select a license\n1 - MIT\n2 - GPL (default)\n3 - BSD\n>> ", out.String())
	})
}

func TestSelectOrDefault(t *testing.T) {
	t.Parallel()

	t.Run("valid input wins", func(t *testing.T) {
		t.Parallel()
		v, _ := testValues("1\n")
		got, err := SelectOrDefault(v, NewSelected("select a license", licenseChoices()...).Default(2))
		require.NoError(t, err)
		assert.Equal(t, mit, got)
	})

	t.Run("invalid input falls back to the default in one attempt", func(t *testing.T) {
		t.Parallel()
		v, _ := testValues("nope\n")
		got, err := SelectOrDefault(v, NewSelected("select a license", licenseChoices()...).Default(2))
		require.NoError(t, err)
		assert.Equal(t, bsd, got)
	})

	t.Run("no default yields the zero value", func(t *testing.T) {
		t.Parallel()
		v, _ := testValues("nope\n")
		got, err := SelectOrDefault(v, NewSelected("select a license", licenseChoices()...))
		require.NoError(t, err)
		assert.Equal(t, mit, got) // license zero value
	})
}
