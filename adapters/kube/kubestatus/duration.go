package kubestatus

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders d in words at second precision, largest unit first:
// "12 seconds", "1 minute, 5 seconds", "2 hours, 1 second".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	secs := int64(d.Round(time.Second) / time.Second)
	if secs == 0 {
		return "0 seconds"
	}
	units := []struct {
		name string
		size int64
	}{
		{"day", 86400},
		{"hour", 3600},
		{"minute", 60},
		{"second", 1},
	}
	var parts []string
	for _, u := range units {
		n := secs / u.size
		secs %= u.size
		if n == 0 {
			continue
		}
		if n == 1 {
			parts = append(parts, "1 "+u.name)
		} else {
			parts = append(parts, fmt.Sprintf("%d %ss", n, u.name))
		}
	}
	return strings.Join(parts, ", ")
}
