package http

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"42", 42, true},
		{"  7", 7, true},
		{"12abc", 12, true},
		{"+5", 5, true},
		{"-3", -3, true},
		{"007", 7, true},
		{"3.9", 3, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"x12", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseID(tt.in)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
