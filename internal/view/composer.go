package view

import (
	"strings"

	apperrors "nelo-tasks.com/nelo-tasks/internal/errors"
	model "nelo-tasks.com/nelo-tasks/internal/models"
)

// Filter is the closed set of list-narrowing categories. Status values and
// priority values share one namespace; "all" clears filtering.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
	FilterHigh      Filter = "high"
	FilterMedium    Filter = "medium"
	FilterLow       Filter = "low"
)

// ParseFilter rejects anything outside the closed set. The literals are
// case-sensitive with no aliases; an empty string means "all".
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	switch f := Filter(s); f {
	case FilterAll, FilterPending, FilterCompleted, FilterHigh, FilterMedium, FilterLow:
		return f, nil
	}
	return "", apperrors.ErrInvalidFilter
}

// Compose derives the displayed sequence from the full collection: the filter
// stage narrows by status or priority, then the search stage narrows by a
// case-insensitive substring match over title or description. Stored order is
// preserved and the input slice is never mutated.
func Compose(tasks []model.Task, filter Filter, search string) []model.Task {
	result := make([]model.Task, 0, len(tasks))
	result = append(result, tasks...)

	if filter != FilterAll {
		switch filter {
		case FilterPending, FilterCompleted:
			result = keep(result, func(t model.Task) bool {
				return t.Status == model.TaskStatus(filter)
			})
		case FilterHigh, FilterMedium, FilterLow:
			result = keep(result, func(t model.Task) bool {
				return t.Priority == model.TaskPriority(filter)
			})
		}
	}

	if query := strings.TrimSpace(search); query != "" {
		query = strings.ToLower(query)
		result = keep(result, func(t model.Task) bool {
			return strings.Contains(strings.ToLower(t.Title), query) ||
				strings.Contains(strings.ToLower(t.Description), query)
		})
	}

	return result
}

func keep(tasks []model.Task, match func(model.Task) bool) []model.Task {
	out := tasks[:0]
	for _, t := range tasks {
		if match(t) {
			out = append(out, t)
		}
	}
	return out
}
