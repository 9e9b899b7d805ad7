// Package schemas validates inbound payloads and shapes outbound ones.
//
// A Schema is an ordered list of fields, each with an ordered list of
// rules. A rule may coerce the value it receives, and the next rule sees
// the coerced value. Rules for a field stop at the first failure, so every
// failing field reports exactly one message.
package schemas

import (
	"sort"
	"strings"
	"time"
)

const msgRequired = "Missing data for required field."

// Rule checks a value and returns it, possibly converted.
type Rule func(value interface{}) (interface{}, error)

type Field struct {
	Name     string
	Required bool
	Rules    []Rule
}

type Schema struct {
	Name   string
	Fields []Field
}

// Errors maps a field name to a human readable reason.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// Record is a validated payload. Values have the types their rules
// produced: string, float64, int64 or time.Time.
type Record map[string]interface{}

func (r Record) String(name string) string {
	v, _ := r[name].(string)
	return v
}

func (r Record) Float(name string) float64 {
	v, _ := r[name].(float64)
	return v
}

func (r Record) Int(name string) int64 {
	v, _ := r[name].(int64)
	return v
}

func (r Record) Date(name string) time.Time {
	v, _ := r[name].(time.Time)
	return v
}

// Load validates payload against the schema. Keys the schema does not
// declare are ignored. On failure the returned error is an Errors value
// holding every failing field.
func (s Schema) Load(payload map[string]interface{}) (Record, error) {
	record := Record{}
	errs := Errors{}

	for _, f := range s.Fields {
		value, ok := payload[f.Name]
		if !ok || value == nil {
			if f.Required {
				errs[f.Name] = msgRequired
			}
			continue
		}

		failed := false
		for _, rule := range f.Rules {
			var err error
			if value, err = rule(value); err != nil {
				errs[f.Name] = err.Error()
				failed = true
				break
			}
		}
		if !failed {
			record[f.Name] = value
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return record, nil
}
