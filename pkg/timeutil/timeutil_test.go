//go:build !integration

package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "nanoseconds", d: 500 * time.Nanosecond, want: "500ns"},
		{name: "microseconds", d: 42 * time.Microsecond, want: "42µs"},
		{name: "milliseconds", d: 3 * time.Millisecond, want: "3ms"},
		{name: "seconds", d: 1500 * time.Millisecond, want: "1.5s"},
		{name: "minutes", d: 2*time.Minute + 5*time.Second, want: "2m5s"},
		{name: "zero", d: 0, want: "0ns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}
