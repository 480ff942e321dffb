package numberutils

import (
	"strconv"
)

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultVal
}

// ClampInt bounds num to [lo, hi]. When lo > hi, hi wins.
func ClampInt(num, lo, hi int) int {
	return min(max(num, lo), hi)
}
