package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNotANumber is returned when a [FlexNumber] is given a value that does
// not parse as a finite number. NaN and infinities are rejected.
var ErrNotANumber = errors.New("value is not a number")

// FlexNumber is a JSON number that also accepts numeric strings.
// Set reports whether the field was present and non-null in the payload.
type FlexNumber struct {
	Value float64
	Set   bool
}

// NewFlexNumber returns a FlexNumber that is set to v.
func NewFlexNumber(v float64) FlexNumber {
	return FlexNumber{Value: v, Set: true}
}

// Int returns the value truncated to an int. Callers check IsInt32 first.
func (n FlexNumber) Int() int {
	return int(n.Value)
}

// IsInt32 reports whether the value is a whole number that fits a postgres
// INTEGER column.
func (n FlexNumber) IsInt32() bool {
	return n.Value == math.Trunc(n.Value) &&
		n.Value >= math.MinInt32 && n.Value <= math.MaxInt32
}

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*n = FlexNumber{}
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = FlexNumber{}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotANumber
		}
		*n = FlexNumber{Value: v, Set: true}
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return ErrNotANumber
	}
	*n = FlexNumber{Value: v, Set: true}
	return nil
}

func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
