package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts JSON-decoded numbers and numeric strings to int.
// The second result is false when val holds no integral value.
func ToInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case string:
		i, err := strconv.Atoi(v)
		return i, err == nil
	case []byte:
		i, err := strconv.Atoi(string(v))
		return i, err == nil
	default:
		return 0, false
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// SplitInts parses a comma separated list of integers. An empty string yields an empty list.
func SplitInts(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("element %d of %q: %w", i, s, err)
		}
		out[i] = n
	}
	return out, nil
}

// SplitFloats parses a comma separated list of decimal numbers.
func SplitFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return []float64{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("element %d of %q: %w", i, s, err)
		}
		out[i] = f
	}
	return out, nil
}

// SplitDigitPairs cuts a string of concatenated two-digit codes ("1213") into integers.
func SplitDigitPairs(s string) ([]int, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd length code group %q", s)
	}
	out := make([]int, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		n, err := strconv.Atoi(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("code group %q: %w", s, err)
		}
		out = append(out, n)
	}
	return out, nil
}
