package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey_MatchesKeyString(t *testing.T) {
	for _, s := range []string{"", "110", "Kuala Lumpur", "a,b,c"} {
		require.Equal(t, KeyString(s), Key([]byte(s)), "key %q", s)
	}
}

func TestKey_Distinct(t *testing.T) {
	require.NotEqual(t, Key([]byte("110")), Key([]byte("111")))
}
