package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name  string
		token string
		lang  string
		want  int
	}{
		{"identical", "spanish", "spanish", 0},
		{"one substitution", "spanich", "spanish", 1},
		{"one insertion", "spanis", "spanish", 20},
		{"one deletion", "spanishh", "spanish", 100},
		{"empty token", "", "ab", 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.token, tt.lang))
		})
	}
}

func TestClosest(t *testing.T) {
	got, ok := Closest("spanich")
	assert.True(t, ok)
	assert.Equal(t, "spanish", got)

	got, ok = Closest("swedush")
	assert.True(t, ok)
	assert.Equal(t, "swedish", got)
}

func TestClosest_NothingWithinThreshold(t *testing.T) {
	// A two-letter token needs insertions to reach any name, and a single
	// insertion already exceeds the acceptance threshold.
	_, ok := Closest("zz")
	assert.False(t, ok)
}
