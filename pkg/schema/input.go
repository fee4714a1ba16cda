// Package schema declares the fields, types and rules of the entities that are
// submitted through forms and validates untrusted input against them.
package schema

import (
	"net/url"
	"sort"
)

// Input is arbitrary structured input such as decoded JSON or parsed form data.
type Input map[string]any

// FromValues builds an Input from parsed form data, taking the first value of each key.
func FromValues(values url.Values) Input {
	in := make(Input, len(values))
	for key, vals := range values {
		if len(vals) != 0 {
			in[key] = vals[0]
		}
	}

	return in
}

// FieldErrors maps a field name to its error messages.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) != 0
}

func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return fields
}
