// Package optional holds lenient JSON field types for third-party payloads.
// A field that is absent, null or of an unexpected JSON type decodes to an
// invalid value instead of failing the surrounding document.
package optional

import (
	"bytes"
	"encoding/json"
	"strconv"
)

var null = []byte("null")

// String is a JSON string that may be missing.
type String struct {
	Value string
	Valid bool
}

// NewString returns a valid String.
func NewString(v string) String {
	return String{Value: v, Valid: true}
}

func (s *String) UnmarshalJSON(data []byte) error {
	*s = String{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		return nil
	}

	var v string
	if err := json.Unmarshal(data, &v); err == nil {
		*s = NewString(v)
		return nil
	}

	// numbers are kept as their literal text, e.g. a numeric flight number
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*s = NewString(n.String())
	}

	return nil
}

func (s String) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return null, nil
	}

	return json.Marshal(s.Value)
}

// Or returns the value, or fallback when the value is missing.
func (s String) Or(fallback string) string {
	if !s.Valid {
		return fallback
	}

	return s.Value
}

// Int is a JSON integer that may be missing. Numeric strings and whole
// floats are accepted.
type Int struct {
	Value int64
	Valid bool
}

// NewInt returns a valid Int.
func NewInt(v int64) Int {
	return Int{Value: v, Valid: true}
}

func (i *Int) UnmarshalJSON(data []byte) error {
	*i = Int{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		return nil
	}

	var text string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return nil
		}
	} else {
		text = string(data)
	}

	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		*i = NewInt(v)
		return nil
	}

	if f, err := strconv.ParseFloat(text, 64); err == nil && f == float64(int64(f)) {
		*i = NewInt(int64(f))
	}

	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return null, nil
	}

	return []byte(strconv.FormatInt(i.Value, 10)), nil
}

// Or returns the decimal text of the value, or fallback when missing.
func (i Int) Or(fallback string) string {
	if !i.Valid {
		return fallback
	}

	return strconv.FormatInt(i.Value, 10)
}

// Scalar keeps a JSON number or string verbatim, for fields such as price
// that providers send in either shape.
type Scalar struct {
	raw json.RawMessage
}

// NumberScalar returns a Scalar holding a JSON number literal.
func NumberScalar(literal string) Scalar {
	return Scalar{raw: json.RawMessage(literal)}
}

// TextScalar returns a Scalar holding a JSON string.
func TextScalar(v string) Scalar {
	raw, _ := json.Marshal(v)
	return Scalar{raw: raw}
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	*s = Scalar{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}

	switch v.(type) {
	case float64, string:
		s.raw = append(json.RawMessage(nil), data...)
	}

	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return null, nil
	}

	return s.raw, nil
}

// Valid reports whether a number or string was present.
func (s Scalar) Valid() bool {
	return len(s.raw) > 0
}

// IsNumber reports whether the scalar is a JSON number.
func (s Scalar) IsNumber() bool {
	return s.Valid() && s.raw[0] != '"'
}

// Text returns the number literal or the unquoted string.
func (s Scalar) Text() string {
	if !s.Valid() {
		return ""
	}

	if !s.IsNumber() {
		var v string
		_ = json.Unmarshal(s.raw, &v)
		return v
	}

	return string(s.raw)
}

// Or returns Text, or fallback when missing.
func (s Scalar) Or(fallback string) string {
	if !s.Valid() {
		return fallback
	}

	return s.Text()
}
