package chart

import (
	"fmt"
	"strconv"
)

// FormatAxisLabel formats a Y-axis label: one decimal below 1 so that small
// throughput values stay readable, integers otherwise.
func FormatAxisLabel(v float64) string {
	if v < 1 {
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%.0f", v)
}

// FormatAge describes a sample age in seconds at one sample per second.
func FormatAge(age int) string {
	if age <= 0 {
		return "now"
	}
	return strconv.Itoa(age) + "s ago"
}
