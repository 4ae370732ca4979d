package repository

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rs/zerolog"

	model "nelo-tasks.com/nelo-tasks/internal/models"
	"nelo-tasks.com/nelo-tasks/pkg/debounce"
)

// SnapshotWriter mirrors the task collection into a JSON file. Writes are
// debounced so a burst of mutations produces a single file write once the
// collection has been quiet for the configured delay.
type SnapshotWriter struct {
	path     string
	logger   zerolog.Logger
	debounce *debounce.Debouncer[[]model.Task]
}

func NewSnapshotWriter(path string, delay time.Duration, logger zerolog.Logger) *SnapshotWriter {
	w := &SnapshotWriter{
		path:   path,
		logger: logger,
	}
	w.debounce = debounce.New(delay, w.writeFile)
	return w
}

// Write schedules a snapshot of the given collection.
func (w *SnapshotWriter) Write(tasks []model.Task) {
	w.debounce.Set(tasks)
}

// Close cancels any pending write.
func (w *SnapshotWriter) Close() {
	w.debounce.Stop()
}

func (w *SnapshotWriter) writeFile(tasks []model.Task) {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		w.logger.Error().Err(err).Msg("failed to marshal task snapshot")
		return
	}

	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		w.logger.Error().Err(err).Str("path", w.path).Msg("failed to write task snapshot")
		return
	}

	w.logger.Debug().Int("tasks", len(tasks)).Str("path", w.path).Msg("task snapshot written")
}
