package domain

import (
	"encoding/json"
	"strconv"
)

// NotAvailable is displayed in place of an unknown value.
const NotAvailable = "N/A"

// Count is an integer that may be unknown.
// The zero value is unknown.
type Count struct {
	Value int
	Known bool
}

// KnownCount returns a known Count holding v.
func KnownCount(v int) Count {
	return Count{Value: v, Known: true}
}

// CountFrom converts an optional JSON number into a Count.
func CountFrom(v *int) Count {
	if v == nil {
		return Count{}
	}
	return KnownCount(*v)
}

// String returns the decimal value, or NotAvailable when unknown.
func (c Count) String() string {
	if !c.Known {
		return NotAvailable
	}
	return strconv.Itoa(c.Value)
}

// MarshalJSON encodes a known count as a number and an unknown one as "N/A".
func (c Count) MarshalJSON() ([]byte, error) {
	if !c.Known {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(c.Value)
}
