package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildIsPure(t *testing.T) {
	first := Build("Mia", "pop", "female")
	second := Build("Mia", "pop", "female")
	assert.Equal(t, first, second)
}

func TestBuildEmbedsInputs(t *testing.T) {
	out := Build("Mia", "pop", "female")

	assert.Contains(t, out, "Wish a happy birthday to Mia.")
	assert.Contains(t, out, "16 lines of pop lyrics")
	assert.Contains(t, out, `"Happy birthday" is mentioned at least twice`)
	assert.Contains(t, out, "maximum of 8 words or 40 characters")
	assert.False(t, strings.HasPrefix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestBuildPronouns(t *testing.T) {
	tests := []struct {
		gender string
		third  string
		poss   string
	}{
		{"male", "him", "his"},
		{"female", "her", "her"},
		{"other", "them", "their"},
	}

	for _, tt := range tests {
		t.Run(tt.gender, func(t *testing.T) {
			out := Build("Sam", "rock", tt.gender)
			assert.Contains(t, out, "dedicate to "+tt.third+"/"+tt.poss+" birthday")
		})
	}
}

func TestBuildGenderChangesOnlyPronouns(t *testing.T) {
	male := Build("Sam", "rock", "male")
	other := Build("Sam", "rock", "other")

	patched := strings.ReplaceAll(male, "him/his", "them/their")
	assert.Equal(t, other, patched)
}
