// Package formatting provides small parsing helpers for human-readable
// configuration values.
package formatting

import (
	"fmt"
	"strconv"
	"strings"
)

var byteUnits = map[string]int64{
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
}

// ParseBytes converts a human-readable size such as "512KB" or "1MB" to a
// byte count. A bare number is interpreted as bytes.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	unit := "B"
	number := s
	for suffix := range byteUnits {
		if suffix != "B" && strings.HasSuffix(s, suffix) {
			unit = suffix
			number = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}
	if unit == "B" {
		number = strings.TrimSpace(strings.TrimSuffix(number, "B"))
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("negative size %q", s)
	}

	return int64(value * float64(byteUnits[unit])), nil
}
