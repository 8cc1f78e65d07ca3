package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Alice", CleanString("  Alice \n"))
	assert.Equal(t, "alice", CleanString(" Alice", true))
	assert.Equal(t, "", CleanString("   "))
}

func TestClosestMatches(t *testing.T) {
	candidates := []string{"Alice", "Alicia", "Bob", "Alice", "", "Carol"}

	tests := []struct {
		name   string
		word   string
		n      int
		cutoff float64
		want   []string
	}{
		{name: "no word", word: "", n: 3, cutoff: 0.6, want: nil},
		{name: "no room", word: "Alice", n: 0, cutoff: 0.6, want: nil},
		{name: "no match", word: "Zed", n: 3, cutoff: 0.6, want: []string{}},
		{name: "case insensitive", word: "alice", n: 3, cutoff: 0.6, want: []string{"Alice", "Alicia"}},
		{name: "best first", word: "Alicia", n: 3, cutoff: 0.6, want: []string{"Alicia", "Alice"}},
		{name: "limited", word: "Alise", n: 1, cutoff: 0.6, want: []string{"Alice"}},
		{name: "strict cutoff", word: "Alise", n: 3, cutoff: 0.9, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClosestMatches(tt.word, candidates, tt.n, tt.cutoff))
		})
	}
}
