package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		exp  string
	}{
		{
			name: "strips common leading whitespace",
			in:   "\n    SELECT a\n    FROM b\n",
			exp:  "\nSELECT a\nFROM b\n",
		},
		{
			name: "ignores blank lines when computing the minimum",
			in:   "\n    SELECT a\n\n    FROM b\n",
			exp:  "\nSELECT a\n\nFROM b\n",
		},
		{
			name: "leaves already-flush text untouched",
			in:   "SELECT a\nFROM b",
			exp:  "SELECT a\nFROM b",
		},
		{
			name: "preserves relative indentation past the common prefix",
			in:   "\n    SELECT a\n      FROM b\n",
			exp:  "\nSELECT a\n  FROM b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exp, Dedent(tt.in))
		})
	}
}
