// Package timeutil provides small time formatting helpers shared by the
// logger and console output.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration as a short human-readable suffix
// (e.g. "3ms", "1.2s", "2m5s"), matching the style of the npm debug package.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		m := int(d.Minutes())
		s := int(d.Seconds()) - m*60
		return fmt.Sprintf("%dm%ds", m, s)
	}
}
