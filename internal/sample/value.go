// AngelaMos | 2026
// value.go

package sample

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var ErrNonScalarValue = errors.New("property value must be a string, number or boolean")

// Value is an opaque scalar reading. JSON strings, numbers and booleans are
// accepted and kept in their textual form; null leaves it unset.
type Value struct {
	Text  string
	Valid bool
}

func TextValue(s string) Value {
	return Value{Text: s, Valid: true}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*v = Value{}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode property value: %w", err)
		}
		*v = TextValue(s)
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*v = TextValue(string(data))
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		if _, err := strconv.ParseFloat(string(data), 64); err != nil {
			return fmt.Errorf("decode property value: %w", err)
		}
		*v = TextValue(string(data))
	default:
		return ErrNonScalarValue
	}

	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Text)
}

func (v *Value) Scan(src any) error {
	switch s := src.(type) {
	case nil:
		*v = Value{}
	case string:
		*v = TextValue(s)
	case []byte:
		*v = TextValue(string(s))
	default:
		return fmt.Errorf("scan property value: unsupported type %T", src)
	}
	return nil
}

func (v Value) Value() (driver.Value, error) {
	if !v.Valid {
		return nil, nil
	}
	return v.Text, nil
}
