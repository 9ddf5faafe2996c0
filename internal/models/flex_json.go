package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an int that also accepts a string-encoded JSON value. Form-driven
// clients may serialize every field as a quoted string ("max_goals": "6").
type FlexInt int

// UnmarshalJSON accepts 6 and "6". Fractional values are rejected.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	// Fast path: native JSON number
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}

	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("flex int: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("flex int: %q is not an integer", s)
		}
		*f = FlexInt(n)
		return nil
	}

	return fmt.Errorf("flex int: cannot decode %s", data)
}

// Int returns the plain int value
func (f FlexInt) Int() int { return int(f) }
