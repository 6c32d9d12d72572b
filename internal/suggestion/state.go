package suggestion

import (
	"strings"

	"talent-bank/internal/apperr"
	"talent-bank/internal/storage"
)

// stage orders states along the lifecycle; applied and discarded share the
// terminal stage.
var stage = map[storage.SuggestionState]int{
	storage.StatePending:   0,
	storage.StateViewed:    1,
	storage.StateApplied:   2,
	storage.StateDiscarded: 2,
}

// ParseState validates an externally reported state name.
func ParseState(s string) (storage.SuggestionState, error) {
	st := storage.SuggestionState(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := stage[st]; !ok {
		return "", &apperr.ValidationError{Field: "state", Reason: "must be one of pending, viewed, applied, discarded"}
	}
	return st, nil
}

func IsTerminal(s storage.SuggestionState) bool {
	return s == storage.StateApplied || s == storage.StateDiscarded
}

// Next decides the outcome of reporting state to on a suggestion currently in
// from. changed is false for repeats and for stale events that would move the
// suggestion backwards. Moving to pending, or between the two terminal
// states, is an InvalidTransitionError.
func Next(from, to storage.SuggestionState) (next storage.SuggestionState, changed bool, err error) {
	if from == to {
		return from, false, nil
	}
	if to == storage.StatePending {
		return from, false, &apperr.InvalidTransitionError{From: string(from), To: string(to)}
	}

	fs, ts := stage[from], stage[to]
	switch {
	case ts > fs:
		return to, true, nil
	case ts < fs:
		return from, false, nil
	default:
		return from, false, &apperr.InvalidTransitionError{From: string(from), To: string(to)}
	}
}
