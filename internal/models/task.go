package models

import (
	"time"
)

type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// Task is the sole persisted entity. ID and CreatedAt are stamped once at
// creation and never mutated afterwards.
type Task struct {
	ID          string       `gorm:"primaryKey;size:36" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `gorm:"not null" json:"description"`
	Priority    TaskPriority `gorm:"type:varchar(10);not null" json:"priority"`
	DueDate     time.Time    `gorm:"not null" json:"due_date"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Position    int          `gorm:"not null" json:"-"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Toggled returns the opposite status, the only transition tasks support.
func (s TaskStatus) Toggled() TaskStatus {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// CreateTaskInput carries the fields required to create a task. All four
// fields are mandatory; validation happens before anything is persisted.
type CreateTaskInput struct {
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Priority    TaskPriority `json:"priority" validate:"required,oneof=high medium low"`
	DueDate     time.Time    `json:"due_date" validate:"required"`
}

// UpdateTaskInput is a partial patch: nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string       `json:"title" validate:"omitempty,min=1"`
	Description *string       `json:"description" validate:"omitempty,min=1"`
	Priority    *TaskPriority `json:"priority" validate:"omitempty,oneof=high medium low"`
	DueDate     *time.Time    `json:"due_date"`
	Status      *TaskStatus   `json:"status" validate:"omitempty,oneof=pending completed"`
}
