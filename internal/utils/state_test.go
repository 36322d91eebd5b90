package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeUSState(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"OH", "OH"},
		{"oh", "OH"},
		{"Ohio", "OH"},
		{"new york", "NY"},
		{"District of Columbia", "DC"},
		{"puerto rico", "PR"},
		{" Tx ", "TX"},
	}
	for _, c := range cases {
		got, err := NormalizeUSState(c.in)
		require.NoError(t, err, "input %q", c.in)
		require.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestNormalizeUSStateRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "ZZ", "Narnia", "Ontario"} {
		_, err := NormalizeUSState(in)
		require.ErrorIs(t, err, ErrInvalidState, "input %q", in)
	}
}

func TestIsLikelyUSPhone(t *testing.T) {
	require.True(t, IsLikelyUSPhone("5551234567"))
	require.True(t, IsLikelyUSPhone("(555) 123-4567"))
	require.True(t, IsLikelyUSPhone("+1 555 123 4567"))
	require.True(t, IsLikelyUSPhone("1-555-123-4567"))

	require.False(t, IsLikelyUSPhone("12345"))
	require.False(t, IsLikelyUSPhone("555-123-456789"))
	require.False(t, IsLikelyUSPhone("call me maybe"))
}
