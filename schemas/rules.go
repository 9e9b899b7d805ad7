package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

var validate = validator.New()

func String() Rule {
	return func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("Not a valid string.")
		}
		return s, nil
	}
}

// Length bounds the rune count of a string. max <= 0 means no upper bound.
func Length(min, max int) Rule {
	return func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("Not a valid string.")
		}
		n := utf8.RuneCountInString(s)
		if n < min {
			return nil, fmt.Errorf("Shorter than minimum length %d.", min)
		}
		if max > 0 && n > max {
			return nil, fmt.Errorf("Longer than maximum length %d.", max)
		}
		return s, nil
	}
}

func Email() Rule {
	return func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("Not a valid email address.")
		}
		if err := validate.Var(s, "required,email"); err != nil {
			return nil, errors.New("Not a valid email address.")
		}
		return s, nil
	}
}

// Float accepts JSON numbers and numeric strings and yields float64.
func Float() Rule {
	return func(value interface{}) (interface{}, error) {
		f, ok := toFloat(value)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.New("Not a valid number.")
		}
		return f, nil
	}
}

// Integer accepts integral JSON numbers and integer strings and yields int64.
func Integer() Rule {
	return func(value interface{}) (interface{}, error) {
		switch v := value.(type) {
		case int:
			return int64(v), nil
		case int32:
			return int64(v), nil
		case int64:
			return v, nil
		case uint:
			return int64(v), nil
		case json.Number:
			if i, err := v.Int64(); err == nil {
				return i, nil
			}
		case string:
			if i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
				return i, nil
			}
		case float64:
			if v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1<<53 {
				return int64(v), nil
			}
		}
		return nil, errors.New("Not a valid integer.")
	}
}

// Min rejects numbers below min. It runs after Float or Integer.
func Min(min float64) Rule {
	return func(value interface{}) (interface{}, error) {
		f, ok := toFloat(value)
		if !ok {
			return nil, errors.New("Not a valid number.")
		}
		if f < min {
			return nil, fmt.Errorf("Must be greater than or equal to %s.", strconv.FormatFloat(min, 'f', -1, 64))
		}
		return value, nil
	}
}

// Date parses a YYYY-MM-DD string into a UTC midnight time.
func Date() Rule {
	return func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("Not a valid date.")
		}
		d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
		if err != nil {
			return nil, errors.New("Not a valid date.")
		}
		return d, nil
	}
}

// Match requires the string to match every pattern.
func Match(message string, patterns ...*regexp.Regexp) Rule {
	return func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("Not a valid string.")
		}
		for _, p := range patterns {
			if !p.MatchString(s) {
				return nil, errors.New(message)
			}
		}
		return s, nil
	}
}

var passwordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^.{8,}$`),
	regexp.MustCompile(`[A-Z]`),
	regexp.MustCompile(`[a-z]`),
	regexp.MustCompile(`[0-9]`),
	regexp.MustCompile(`[#?!@$%^&*\-]`),
}

const msgPassword = "Password must be at least 8 characters and contain an uppercase letter, a lowercase letter, a digit and one of #?!@$%^&*-."

func Password() Rule {
	return Match(msgPassword, passwordPatterns...)
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}
