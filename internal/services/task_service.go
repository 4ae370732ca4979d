package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apperrors "nelo-tasks.com/nelo-tasks/internal/errors"
	model "nelo-tasks.com/nelo-tasks/internal/models"
	repository "nelo-tasks.com/nelo-tasks/internal/repositories"
)

// TaskService owns the task lifecycle: create, partial update, delete and
// status toggle. Every mutation is a load-modify-save round trip over the
// whole collection, serialized by a single mutex so concurrent writers cannot
// overwrite each other at whole-collection granularity.
type TaskService struct {
	mu       sync.Mutex
	repo     *repository.TaskRepository
	logger   zerolog.Logger
	validate *validator.Validate
}

func NewTaskService(repo *repository.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{
		repo:     repo,
		logger:   logger,
		validate: validator.New(),
	}
}

// Create validates the input, stamps id, creation time and pending status,
// and appends the task to the collection. Nothing is persisted on a
// validation failure.
func (s *TaskService) Create(ctx context.Context, input model.CreateTaskInput) (*model.Task, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	task := model.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Status:      model.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.repo.Load(ctx)
	tasks = append(tasks, task)
	s.repo.Save(ctx, tasks)

	s.logger.Info().Str("task_id", task.ID).Str("priority", string(task.Priority)).Msg("task created")
	return &task, nil
}

// Update merges the patch into the task identified by id. Nil patch fields
// are preserved unchanged; an absent id yields ErrTaskNotFound and never
// creates a task.
func (s *TaskService) Update(ctx context.Context, id string, patch model.UpdateTaskInput) (*model.Task, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyPatch(ctx, id, patch)
}

// Delete removes the task with the given id. A missing id is an idempotent
// no-op reported as false, not an error.
func (s *TaskService) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.repo.Load(ctx)
	remaining := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}

	if len(remaining) == len(tasks) {
		return false
	}

	s.repo.Save(ctx, remaining)
	s.logger.Info().Str("task_id", id).Msg("task deleted")
	return true
}

// ToggleStatus flips the task between pending and completed, expressed as an
// update carrying the single derived field.
func (s *TaskService) ToggleStatus(ctx context.Context, id string) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.repo.Load(ctx)
	current, err := findTask(tasks, id)
	if err != nil {
		return nil, err
	}

	next := current.Status.Toggled()
	return s.applyPatch(ctx, id, model.UpdateTaskInput{Status: &next})
}

// List returns the current collection in stored order.
func (s *TaskService) List(ctx context.Context) []model.Task {
	return s.repo.Load(ctx)
}

// Get returns the task with the given id or ErrTaskNotFound.
func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	task, err := findTask(s.repo.Load(ctx), id)
	if err != nil {
		return nil, err
	}
	out := *task
	return &out, nil
}

// PendingTasks returns the live pending subset at the moment of the call.
// The scheduler depends on this being a fresh read, not a cached snapshot.
func (s *TaskService) PendingTasks(ctx context.Context) []model.Task {
	tasks := s.repo.Load(ctx)
	pending := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == model.StatusPending {
			pending = append(pending, t)
		}
	}
	return pending
}

// applyPatch performs the load-merge-save cycle. Callers must hold s.mu.
func (s *TaskService) applyPatch(ctx context.Context, id string, patch model.UpdateTaskInput) (*model.Task, error) {
	tasks := s.repo.Load(ctx)

	idx := -1
	for i := range tasks {
		if tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperrors.ErrTaskNotFound
	}

	t := &tasks[idx]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}

	s.repo.Save(ctx, tasks)

	updated := *t
	s.logger.Info().Str("task_id", id).Msg("task updated")
	return &updated, nil
}

func findTask(tasks []model.Task, id string) (*model.Task, error) {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, apperrors.ErrTaskNotFound
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidation(err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", fieldName(fe)))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of: %s", fieldName(fe), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", fieldName(fe)))
		}
	}
	return apperrors.NewValidation(messages...)
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Title":
		return "title"
	case "Description":
		return "description"
	case "Priority":
		return "priority"
	case "DueDate":
		return "due date"
	case "Status":
		return "status"
	}
	return fe.Field()
}
