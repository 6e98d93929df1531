package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTokens(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"duplicates kept", "Acme, Acme, Beta", []string{"Acme", "Acme", "Beta"}},
		{"all separators", "A\nB,C;D|E", []string{"A", "B", "C", "D", "E"}},
		{"carriage returns", "A\r\nB\rC", []string{"A", "B", "C"}},
		{"placeholder dropped", "A, ?, B", []string{"A", "B"}},
		{"empty tokens dropped", ",,A;;|B,", []string{"A", "B"}},
		{"inner spaces kept", " 40-112 hull ", []string{"40-112 hull"}},
		{"question inside id kept", "A?", []string{"A?"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitTokens(tc.raw))
		})
	}
}

func TestSplitTokens_NothingUsable(t *testing.T) {
	for _, raw := range []string{"?", "   ", "", " ? ", "\n\r\n", "?|?"} {
		assert.Empty(t, SplitTokens(raw), "raw=%q", raw)
	}
}
