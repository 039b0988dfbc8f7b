package monthutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		index int
		ok    bool
	}{
		{"numeric january", "1", 0, true},
		{"numeric december", "12", 11, true},
		{"numeric mid-year", "3", 2, true},
		{"numeric with spaces", " 5 ", 4, true},
		{"out of range high clamps to december", "13", 11, true},
		{"zero clamps to january", "0", 0, true},
		{"negative clamps to january", "-2", 0, true},
		{"italian name", "Marzo", 2, true},
		{"italian name lowercase", "dicembre", 11, true},
		{"italian name uppercase", "GENNAIO", 0, true},
		{"empty defaults to january", "", 0, false},
		{"unknown text defaults to january", "March", 0, false},
		{"garbage defaults to january", "xyz", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, ok := Resolve(tt.raw)
			assert.Equal(t, tt.index, index)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestResolve_AllNames(t *testing.T) {
	for i, name := range Names {
		index, ok := Resolve(name)
		assert.True(t, ok, "name %s should resolve", name)
		assert.Equal(t, i, index)
	}
}

func TestLabels(t *testing.T) {
	labels := Labels()
	assert.Len(t, labels, 12)
	assert.Equal(t, "Gennaio", labels[0])
	assert.Equal(t, "Dicembre", labels[11])

	// Mutating the returned slice must not affect the canonical names.
	labels[0] = "changed"
	assert.Equal(t, "Gennaio", Names[0])
}
