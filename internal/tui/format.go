package tui

import (
	"fmt"
	"time"
)

// FormatTimeRemaining renders a countdown as MM:SS. Hours spill into
// the minutes column since no phase exceeds an hour.
func FormatTimeRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatFocused renders an accumulated focus total, e.g. "1h 15m" or "45m".
func FormatFocused(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
