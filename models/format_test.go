package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	tests := map[float64]string{
		0:     "0.0",
		2:     "2.0",
		1.5:   "1.5",
		1.25:  "1.25",
		13:    "13.0",
		0.333: "0.33",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatHours(in), "%v", in)
	}
}
