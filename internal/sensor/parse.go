package sensor

import (
	"math"
	"strconv"
	"strings"
)

// ParseReading parses one line of sensor output: a decimal number in
// [0, max]. Values outside the range are rejected, not clamped.
func ParseReading(line string, max float64) (float64, bool) {
	s := strings.TrimSpace(line)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < 0 || v > max {
		return 0, false
	}
	return v, true
}
