package models

import (
	"strconv"
	"strings"
)

// FormatHours prints at most two decimals and keeps one, so 2 reads
// "2.0" and 1.25 reads "1.25".
func FormatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
