package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	msgRequired       = "Required"
	msgExpectedNumber = "Expected number"
	msgExpectedInt    = "Expected integer"
	msgExpectedString = "Expected string"
)

// fieldReader pulls typed values out of an Input, recording a message per field
// for anything missing or of the wrong type.
type fieldReader struct {
	in   Input
	errs FieldErrors
}

func newFieldReader(in Input) *fieldReader {
	return &fieldReader{in: in, errs: FieldErrors{}}
}

// lookup treats a missing key, a JSON null and a blank form value as absent.
func (r *fieldReader) lookup(key string) (any, bool) {
	v, ok := r.in[key]
	if !ok || v == nil {
		return nil, false
	}

	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return nil, false
	}

	return v, true
}

func (r *fieldReader) string(key string) string {
	v, ok := r.in[key]
	if !ok || v == nil {
		r.errs.Add(key, msgRequired)
		return ""
	}

	s, ok := v.(string)
	if !ok {
		r.errs.Add(key, msgExpectedString)
	}

	return s
}

func (r *fieldReader) stringDefault(key, defaultValue string) string {
	if _, ok := r.lookup(key); !ok {
		return defaultValue
	}

	return r.string(key)
}

func (r *fieldReader) nullableString(key string) *string {
	if _, ok := r.lookup(key); !ok {
		return nil
	}

	s := r.string(key)
	return &s
}

func (r *fieldReader) float(key string) float64 {
	v, ok := r.lookup(key)
	if !ok {
		r.errs.Add(key, msgRequired)
		return 0
	}

	f, err := toFloat(v)
	if err != nil {
		r.errs.Add(key, msgExpectedNumber)
		return 0
	}

	return f
}

func (r *fieldReader) int(key string) int {
	v, ok := r.lookup(key)
	if !ok {
		r.errs.Add(key, msgRequired)
		return 0
	}

	i, err := toInt(v)
	if err != nil {
		r.errs.Add(key, err.Error())
		return 0
	}

	return i
}

func (r *fieldReader) nullableInt(key string) *int {
	if _, ok := r.lookup(key); !ok {
		return nil
	}

	i := r.int(key)
	if r.errs.Has(key) {
		return nil
	}

	return &i
}

func toFloat(v any) (float64, error) {
	var f float64

	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, err
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, err
		}
		f = parsed
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("not a finite number")
	}

	return f, nil
}

func toInt(v any) (int, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, errors.New(msgExpectedNumber)
	}

	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, errors.New(msgExpectedInt)
	}

	return int(f), nil
}
