package balance

import (
	"strconv"
	"strings"
)

// Intensity holds independent left/right channel levels in the 0-100 percent
// range. Values outside that range are clamped at construction.
type Intensity struct {
	Left  int
	Right int
}

// NewIntensity clamps each channel independently into [0, 100]. It never fails.
func NewIntensity(left, right int) Intensity {
	return Intensity{Left: clampPercent(left), Right: clampPercent(right)}
}

// ParseIntensity parses a string of form "L/R" (e.g. "40/8") into an
// Intensity. Both halves must be decimal integers; surrounding whitespace is
// ignored. The second return value is false when the input does not match.
func ParseIntensity(s string) (Intensity, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Intensity{}, false
	}

	left, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Intensity{}, false
	}
	right, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Intensity{}, false
	}

	return NewIntensity(left, right), true
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
