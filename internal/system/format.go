package system

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EB is the last unit a uint64 can reach: MaxUint64 is 16 EB
var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// HumanBytes converts bytes to human readable format, 1024-based with two
// decimals at most
func HumanBytes(n uint64) string {
	if n == 0 {
		return "0 B"
	}

	i := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}
	// Log can be off by one around exact powers of 1024
	for i > 0 && float64(n) < math.Pow(1024, float64(i)) {
		i--
	}

	value := round2(float64(n) / math.Pow(1024, float64(i)))
	if value >= 1024 && i < len(byteUnits)-1 {
		i++
		value = round2(float64(n) / math.Pow(1024, float64(i)))
	}
	return Float2string(value) + " " + byteUnits[i]
}

// ParseHumanBytes is the inverse of HumanBytes, within rounding
func ParseHumanBytes(s string) (float64, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	for i, unit := range byteUnits {
		if strings.EqualFold(unit, fields[1]) {
			return value * math.Pow(1024, float64(i)), nil
		}
	}
	return 0, fmt.Errorf("unknown unit %q", fields[1])
}

// Float2string formats f with up to two decimals, keeping at least one
func Float2string(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
