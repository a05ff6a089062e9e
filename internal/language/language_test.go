package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCode(t *testing.T) {
	tests := []struct {
		code string
		want string
		ok   bool
	}{
		{"en", "english", true},
		{"eng", "english", true},
		{"sv", "swedish", true},
		{"swe", "swedish", true},
		{"spa", "spanish", true},
		{"xx", "", false},
		{"English", "", false}, // codes are lowercase only
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := FromCode(tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShortCode(t *testing.T) {
	// English gets the "default" sentinel so players pick it up without a
	// language suffix.
	assert.Equal(t, DefaultCode, ShortCode("english"))
	assert.Equal(t, "sv", ShortCode("swedish"))
	assert.Equal(t, "es", ShortCode("spanish"))
	assert.Equal(t, DefaultCode, ShortCode("klingon"))
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, len(Table))
	assert.Contains(t, names, "english")
	assert.Contains(t, names, "swedish")
}
