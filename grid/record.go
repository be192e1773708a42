// Package grid is the table engine shared by every table in the report: it
// normalizes pre-formatted cell values into sort keys, keeps per-table sort
// and hover state, and renders sorted, banded rows with optional description
// sub-rows.
package grid

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DescriptionKey is the record field shown in description sub-rows.
const DescriptionKey = "description"

// Record maps a field name to a cell value. A cell value is a number, nil, or
// a display string that already carries formatting ("+19%", "$12B", "12.7x").
// The engine only reads records.
type Record map[string]any

// Value returns the raw cell value for key, nil when the field is absent.
func (r Record) Value(key string) any {
	return r[key]
}

// Description returns the trimmed description text, or "" when the record has
// none or the field is not a string.
func (r Record) Description() string {
	s, ok := r[DescriptionKey].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// DisplayText renders a raw cell value as-is: nil becomes an empty cell,
// numbers use their shortest decimal form and strings are returned verbatim.
func DisplayText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
