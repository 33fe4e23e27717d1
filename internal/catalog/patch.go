package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/bookcatalog/internal/entities"
)

var (
	// ErrEmptyPatch is returned when a patch body has no whitelisted field.
	ErrEmptyPatch = errors.New("request body contains no updatable fields")

	// ErrInvalidField is returned when a whitelisted field has a bad value.
	ErrInvalidField = errors.New("invalid field value")
)

var validate = validator.New()

// FilterPatch keeps the keys of raw that name a mutable book column and
// checks their values. Unknown keys are dropped without error. The result
// maps column names to values ready to be bound into an UPDATE.
func FilterPatch(raw map[string]any) (map[string]any, error) {
	fields := make(map[string]any, len(raw))
	for key, value := range raw {
		if !entities.IsMutableBookColumn(key) {
			continue
		}
		checked, err := checkValue(key, value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %v", ErrInvalidField, key, err)
		}
		fields[key] = checked
	}
	if len(fields) == 0 {
		return nil, ErrEmptyPatch
	}
	return fields, nil
}

func checkValue(column string, value any) (any, error) {
	switch column {
	case entities.BookColumnTitle, entities.BookColumnAuthor:
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("must be a string")
		}
		if err := validate.Var(s, "required"); err != nil {
			return nil, errors.New("must not be empty")
		}
		return s, nil

	case entities.BookColumnCodeID:
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("must be a string")
		}
		if err := validate.Var(s, "max=64"); err != nil {
			return nil, errors.New("must be at most 64 characters")
		}
		return s, nil

	case entities.BookColumnCoverImageURL:
		if value == nil {
			return nil, nil
		}
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("must be a string or null")
		}
		if s == "" {
			return nil, nil
		}
		if err := validate.Var(s, "url"); err != nil {
			return nil, errors.New("must be an absolute URL")
		}
		return s, nil

	case entities.BookColumnAmount:
		n, ok := toFloat(value)
		if !ok || n != math.Trunc(n) {
			return nil, errors.New("must be a whole number")
		}
		if err := validate.Var(n, "gte=0"); err != nil {
			return nil, errors.New("must not be negative")
		}
		if err := validate.Var(n, "lte=2147483647"); err != nil {
			return nil, errors.New("is out of range (at most 2147483647)")
		}
		return int(n), nil

	case entities.BookColumnPrice:
		n, ok := toFloat(value)
		if !ok {
			return nil, errors.New("must be a number")
		}
		if err := validate.Var(n, "gte=0"); err != nil {
			return nil, errors.New("must not be negative")
		}
		return n, nil
	}
	return nil, errors.New("is not updatable")
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
