package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReferenceNumberFormat(t *testing.T) {
	ref := NewReferenceNumber("AMB")
	require.Regexp(t, regexp.MustCompile(`^AMB-[0-9A-Z]+$`), ref)
	require.True(t, strings.HasPrefix(ref, "AMB-"))
}

func TestNewReferenceNumberUniqueUnderBurst(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		ref := NewReferenceNumber("TAXI")
		require.False(t, seen[ref], "duplicate reference %s on iteration %d", ref, i)
		seen[ref] = true
	}
}
