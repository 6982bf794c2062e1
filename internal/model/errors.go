package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyInput is returned when a class summary is requested over zero
// profiles. A mean over zero elements is undefined; callers get this error
// instead of a NaN-laden summary.
var ErrEmptyInput = errors.New("no profiles to aggregate")

// ValidationError reports a malformed or incomplete answer set. It collects
// every offender in one pass so the caller can surface them all at once.
type ValidationError struct {
	MissingIDs []int
	OutOfRange map[int]int // question id -> rejected raw value
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.MissingIDs) > 0 {
		ids := make([]string, len(e.MissingIDs))
		for i, id := range e.MissingIDs {
			ids[i] = fmt.Sprintf("%d", id)
		}
		parts = append(parts, "missing answers for question(s) "+strings.Join(ids, ", "))
	}
	if len(e.OutOfRange) > 0 {
		ids := make([]int, 0, len(e.OutOfRange))
		for id := range e.OutOfRange {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			parts = append(parts, fmt.Sprintf("question %d: raw score %d outside [%d,%d]",
				id, e.OutOfRange[id], RawScoreMin, RawScoreMax))
		}
	}
	if len(parts) == 0 {
		return "invalid answer set"
	}
	return "invalid answer set: " + strings.Join(parts, "; ")
}

// HasIssues reports whether any validation problem was recorded.
func (e *ValidationError) HasIssues() bool {
	return len(e.MissingIDs) > 0 || len(e.OutOfRange) > 0
}
