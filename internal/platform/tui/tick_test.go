package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{8, 125 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{1, time.Second},
		{0, time.Second},
		{-5, time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tickInterval(tt.rate), "rate %d", tt.rate)
	}
	assert.NotNil(t, tickCmd(12))
}
