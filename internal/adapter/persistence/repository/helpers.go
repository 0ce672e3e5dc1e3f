package repository

import (
	"bytes"
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// flexFloat decodes numbers that older clients stored either as JSON numbers or strings.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// optionalRating decodes a rating that may be absent, null, zero, a number or a string.
// Anything outside 1..5 is treated as "not rated".
type optionalRating struct {
	value *int
}

func (r *optionalRating) UnmarshalJSON(b []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(b); err != nil {
		r.value = nil
		return nil
	}
	v := int(f)
	if v < 1 || v > 5 {
		r.value = nil
		return nil
	}
	r.value = &v
	return nil
}

func newOptionalRating(v *int) *optionalRating {
	if v == nil {
		return nil
	}
	return &optionalRating{value: v}
}

func (r *optionalRating) Value() *int {
	if r == nil {
		return nil
	}
	return r.value
}

func (r optionalRating) MarshalJSON() ([]byte, error) {
	if r.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*r.value)
}

func optionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
