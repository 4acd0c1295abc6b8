// Package selector picks available drives whose model description contains
// at least one manufacturer fragment.
//
// Matching is plain, case-sensitive substring containment with no
// normalization, so an empty fragment matches every model and a fragment
// such as "WD" also matches "AWD". Catalog and availability are paired by
// position and truncated to the shorter of the two without error.
package selector

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/HerbHall/drivepick/pkg/models"
)

// ErrTypeMismatch is returned by SelectValues when a catalog element or a
// manufacturer fragment is not a string at the point it is compared.
var ErrTypeMismatch = errors.New("type mismatch: value is not text")

// Select returns the catalog entries, in catalog order, whose availability
// flag is models.Available and whose model contains at least one of the
// manufacturer fragments.
func Select(catalog []string, availability []models.Availability, manufacturers []string) models.Selection {
	n := min(len(catalog), len(availability))
	result := models.EmptySelection()
	for i := 0; i < n; i++ {
		if !availability[i].IsAvailable() {
			continue
		}
		if containsAny(catalog[i], manufacturers) {
			result.Matches = append(result.Matches, catalog[i])
			result.Count++
		}
	}
	return result
}

// SelectValues is Select over loosely typed input, as produced by decoding
// JSON or YAML into []any. Availability flags go through IsAvailable.
//
// A non-string catalog element or fragment fails the whole call with an
// error wrapping ErrTypeMismatch, but only once it is actually compared:
// unavailable entries are never inspected and fragment checks stop at the
// first match.
func SelectValues(catalog, availability, manufacturers []any) (models.Selection, error) {
	n := min(len(catalog), len(availability))
	result := models.EmptySelection()
	for i := 0; i < n; i++ {
		if !IsAvailable(availability[i]) {
			continue
		}
		ok, err := containsAnyValue(i, catalog[i], manufacturers)
		if err != nil {
			return models.Selection{}, err
		}
		if ok {
			// containsAnyValue only reports a match for string models.
			result.Matches = append(result.Matches, catalog[i].(string))
			result.Count++
		}
	}
	return result, nil
}

// IsAvailable reports whether v equals the availability marker 1.
// Integers, floats, json.Number, models.Availability and bool true compare
// equal to 1; anything else, including "1", 1.5 and nil, does not.
func IsAvailable(v any) bool {
	switch x := v.(type) {
	case models.Availability:
		return x.IsAvailable()
	case bool:
		return x
	case int:
		return x == 1
	case int8:
		return x == 1
	case int16:
		return x == 1
	case int32:
		return x == 1
	case int64:
		return x == 1
	case uint:
		return x == 1
	case uint8:
		return x == 1
	case uint16:
		return x == 1
	case uint32:
		return x == 1
	case uint64:
		return x == 1
	case float32:
		return x == 1
	case float64:
		return x == 1
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 1
	}
	return false
}

func containsAny(model string, manufacturers []string) bool {
	for _, m := range manufacturers {
		if strings.Contains(model, m) {
			return true
		}
	}
	return false
}

func containsAnyValue(index int, model any, manufacturers []any) (bool, error) {
	for j, m := range manufacturers {
		fragment, ok := m.(string)
		if !ok {
			return false, fmt.Errorf("manufacturers[%d]: %w (got %T)", j, ErrTypeMismatch, m)
		}
		text, ok := model.(string)
		if !ok {
			return false, fmt.Errorf("catalog[%d]: %w (got %T)", index, ErrTypeMismatch, model)
		}
		if strings.Contains(text, fragment) {
			return true, nil
		}
	}
	return false, nil
}
