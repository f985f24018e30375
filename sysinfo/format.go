// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
)

// FormatUptime renders an uptime given in whole seconds as
// "D days, H hours, M minutes". The day component is omitted entirely when
// zero (never "0 days"), seconds are truncated, and the unit labels are
// always the plural forms.
//
// Example: FormatUptime(3725) returns "1 hours, 2 minutes".
func FormatUptime(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	if days == 0 {
		return fmt.Sprintf("%d hours, %d minutes", hours, minutes)
	}
	return fmt.Sprintf("%d days, %d hours, %d minutes", days, hours, minutes)
}

// TruncateString truncates a string to a maximum length and adds ellipsis if needed.
//
// Example: TruncateString("Hello World", 8) returns "Hello...".
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// FirstLine returns text up to (not including) the first newline, with any
// trailing carriage return stripped.
func FirstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSuffix(text, "\r")
}
