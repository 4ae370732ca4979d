package repository

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	model "nelo-tasks.com/nelo-tasks/internal/models"
)

// TaskRepository persists the task collection as one blob: every save
// replaces the whole collection, mirroring the load-modify-save contract of
// the surrounding services. Storage failures never propagate as fatal; reads
// degrade to an empty collection and writes degrade to a logged no-op.
type TaskRepository struct {
	db       *gorm.DB
	logger   zerolog.Logger
	snapshot *SnapshotWriter
}

func NewTaskRepository(db *gorm.DB, logger zerolog.Logger, snapshot *SnapshotWriter) *TaskRepository {
	return &TaskRepository{
		db:       db,
		logger:   logger,
		snapshot: snapshot,
	}
}

// Load returns the full collection in stored order. A read failure is logged
// and degraded to an empty collection, never surfaced to the caller.
func (r *TaskRepository) Load(ctx context.Context) []model.Task {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("position asc").Find(&tasks).Error
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to load task collection, degrading to empty")
		return []model.Task{}
	}
	return tasks
}

// Save replaces the entire stored collection with the given one. Positions
// are restamped from slice order so Load preserves it. Write failures are
// logged and swallowed; the durable copy keeps its previous state.
func (r *TaskRepository) Save(ctx context.Context, tasks []model.Task) {
	for i := range tasks {
		tasks[i].Position = i
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Task{}).Error; err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}
		return tx.Create(&tasks).Error
	})
	if err != nil {
		r.logger.Error().Err(err).Int("tasks", len(tasks)).Msg("failed to save task collection")
		return
	}

	if r.snapshot != nil {
		r.snapshot.Write(tasks)
	}
}
