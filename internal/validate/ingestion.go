package validate

import (
	"errors"
	"math"
)

// MaxIdentifier is the largest accepted identifier (10^9 + 7).
const MaxIdentifier = 1000000007

// Request validation errors. The messages are returned verbatim to API
// clients, so they keep their sentence punctuation.
var (
	ErrInvalidIDs      = errors.New("'ids' must be a non-empty array of integers.")
	ErrIDOutOfRange    = errors.New("Each ID must be an integer between 1 and 10^9 + 7.")
	ErrInvalidPriority = errors.New("'priority' must be one of HIGH, MEDIUM, or LOW.")
)

const (
	idsTag      = "required,min=1"
	idRangeTag  = "dive,min=1,max=1000000007"
	priorityTag = "required,oneof=HIGH MEDIUM LOW"
)

// IngestRequest validates a decoded JSON ingestion request. ids and priority
// are the raw decoded values (encoding/json produces []any and float64 for
// arrays and numbers). Checks run in order: ids shape, each id, priority; the
// first failure is returned.
//
// On success the identifiers are returned as ints along with the priority name.
func IngestRequest(ids any, priority any) ([]int, string, error) {
	list, ok := ids.([]any)
	if !ok || ValidateField(list, idsTag) != nil {
		return nil, "", ErrInvalidIDs
	}

	numbers := make([]float64, len(list))
	for i, v := range list {
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) {
			return nil, "", ErrIDOutOfRange
		}
		numbers[i] = f
	}
	if err := ValidateField(numbers, idRangeTag); err != nil {
		return nil, "", ErrIDOutOfRange
	}

	tier, ok := priority.(string)
	if !ok || ValidateField(tier, priorityTag) != nil {
		return nil, "", ErrInvalidPriority
	}

	out := make([]int, len(numbers))
	for i, f := range numbers {
		out[i] = int(f)
	}
	return out, tier, nil
}

// IdentifierList validates an already typed identifier list, as parsed by the
// CLI from --ids.
func IdentifierList(ids []int) error {
	if ValidateField(ids, idsTag) != nil {
		return ErrInvalidIDs
	}
	if ValidateField(ids, idRangeTag) != nil {
		return ErrIDOutOfRange
	}
	return nil
}

// PriorityName validates a priority tier name.
func PriorityName(priority string) error {
	if ValidateField(priority, priorityTag) != nil {
		return ErrInvalidPriority
	}
	return nil
}
