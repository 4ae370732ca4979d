package validators

import (
	"time"

	apperrors "nelo-tasks.com/nelo-tasks/internal/errors"
	model "nelo-tasks.com/nelo-tasks/internal/models"
)

// TaskPayload is the wire shape for create and update requests. Due dates
// arrive as calendar dates ("2026-09-01"); RFC3339 timestamps are accepted
// and truncated to their date.
type TaskPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

// CreateInput converts a payload into create input. Field presence is
// enforced downstream by the lifecycle engine; only shape errors (an
// unparseable date) are rejected here.
func CreateInput(p TaskPayload) (model.CreateTaskInput, error) {
	input := model.CreateTaskInput{}
	if p.Title != nil {
		input.Title = *p.Title
	}
	if p.Description != nil {
		input.Description = *p.Description
	}
	if p.Priority != nil {
		input.Priority = model.TaskPriority(*p.Priority)
	}
	if p.DueDate != nil && *p.DueDate != "" {
		due, err := parseDueDate(*p.DueDate)
		if err != nil {
			return model.CreateTaskInput{}, err
		}
		input.DueDate = due
	}
	return input, nil
}

// UpdateInput converts a payload into a partial patch: absent JSON fields
// stay nil and are preserved unchanged by the engine.
func UpdateInput(p TaskPayload) (model.UpdateTaskInput, error) {
	patch := model.UpdateTaskInput{
		Title:       p.Title,
		Description: p.Description,
	}
	if p.Priority != nil {
		priority := model.TaskPriority(*p.Priority)
		patch.Priority = &priority
	}
	if p.Status != nil {
		status := model.TaskStatus(*p.Status)
		patch.Status = &status
	}
	if p.DueDate != nil {
		due, err := parseDueDate(*p.DueDate)
		if err != nil {
			return model.UpdateTaskInput{}, err
		}
		patch.DueDate = &due
	}
	return patch, nil
}

func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		// Keep the calendar date as written in the sender's zone; truncating
		// on the absolute timeline would shift it across midnight.
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, apperrors.NewValidation("due date must be a calendar date (YYYY-MM-DD)")
}
