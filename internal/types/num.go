package types

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// Num is a nullable metric value. Raw rows come from exports and manual
// input, so anything that is not a finite JSON number decodes to null
// instead of failing the whole row.
type Num struct {
	Value float64
	Valid bool
}

// NumOf returns a valid Num, or null when v is NaN or infinite.
func NumOf(v float64) Num {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Num{}
	}
	return Num{Value: v, Valid: true}
}

// Float returns the value and whether it is usable.
func (n Num) Float() (float64, bool) {
	if !n.Valid || math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return 0, false
	}
	return n.Value, true
}

// Ptr returns nil for null, otherwise a pointer to a copy of the value.
func (n Num) Ptr() *float64 {
	v, ok := n.Float()
	if !ok {
		return nil
	}
	return &v
}

func (n Num) MarshalJSON() ([]byte, error) {
	v, ok := n.Float()
	if !ok {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
}

func (n *Num) UnmarshalJSON(data []byte) error {
	*n = Num{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	// strings, booleans, objects and arrays are treated as missing
	if c := data[0]; c != '-' && (c < '0' || c > '9') {
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return nil
	}
	*n = NumOf(v)
	return nil
}

// ParseNum parses a spreadsheet cell. Thousands separators are accepted;
// empty and non-numeric cells are null.
func ParseNum(s string) Num {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return Num{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Num{}
	}
	return NumOf(v)
}
