package grid

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unknown is the sort key of missing values and placeholders. It is the same
// in both directions, so unknowns sort first ascending and last descending.
var Unknown = math.Inf(-1)

var (
	// Characters carried by percent and multiple-of-sales display strings.
	markerStripper = strings.NewReplacer("+", "", "%", "", "x", "", "*", "")
	// Currency symbol and digit grouping.
	currencyStripper = strings.NewReplacer("$", "", ",", "")
	// Leading decimal number; trailing text after it is ignored.
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
)

// magnitude scales currency strings into millions. Only upper-case letters
// count; any other suffix is left to parseLeading.
var magnitude = map[byte]float64{
	'T': 1e6,
	'B': 1e3,
	'M': 1,
}

// IsPlaceholder reports whether s is one of the "no value" display strings.
func IsPlaceholder(s string) bool {
	switch strings.TrimSpace(s) {
	case "-", "—", "N/A":
		return true
	}
	return false
}

// Normalize converts a raw cell value into a totally ordered sort key:
//
//   - nil and the placeholders "-", "—", "N/A" map to Unknown
//   - numbers are returned unchanged (NaN maps to Unknown)
//   - currency strings ("$1.2B") are expressed in millions
//   - other strings lose "+", "%", "x", "*" and are parsed; unparseable text is 0
//
// Normalize only ever sees raw values, never formatter output.
func Normalize(v any) float64 {
	switch x := v.(type) {
	case nil:
		return Unknown
	case float64:
		return number(x)
	case float32:
		return number(float64(x))
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return number(f)
		}
		return normalizeText(x.String())
	case string:
		return normalizeText(x)
	default:
		return normalizeText(fmt.Sprint(x))
	}
}

func number(f float64) float64 {
	if math.IsNaN(f) {
		return Unknown
	}
	return f
}

func normalizeText(s string) float64 {
	s = strings.TrimSpace(s)
	if IsPlaceholder(s) {
		return Unknown
	}
	if strings.Contains(s, "$") {
		return normalizeCurrency(s)
	}
	return parseLeading(strings.TrimSpace(markerStripper.Replace(s)))
}

func normalizeCurrency(s string) float64 {
	s = strings.TrimSpace(currencyStripper.Replace(s))
	scale := 1.0
	if n := len(s); n > 0 {
		if m, ok := magnitude[s[n-1]]; ok {
			scale = m
			s = strings.TrimSpace(s[:n-1])
		}
	}
	return parseLeading(s) * scale
}

// parseLeading parses the number at the start of s; text without one is 0.
func parseLeading(s string) float64 {
	m := leadingFloat.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}
