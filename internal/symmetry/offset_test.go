package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffset_EncodeDecode(t *testing.T) {
	tests := []struct {
		off  Offset
		enc  int
		text string
	}{
		{Zero, 0, "0"},
		{Slot(0, Positive), 1, "+0"},
		{Slot(0, Negative), -1, "-0"},
		{Slot(41, Positive), 42, "+41"},
		{Slot(41, Negative), -42, "-41"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.enc, tt.off.Encode())
		assert.Equal(t, tt.off, DecodeOffset(tt.enc))
		assert.Equal(t, tt.text, tt.off.String())
	}
}

func TestOffset_Variants(t *testing.T) {
	assert.True(t, Zero.IsZero())
	assert.False(t, Slot(0, Positive).IsZero(), "slot 0 is distinct from zero")

	off := Slot(3, Sign(0))
	assert.Equal(t, Positive, off.Sign(), "unset sign defaults to positive")
	assert.Equal(t, 3, off.Index())
	assert.Equal(t, "-", Negative.String())
}
