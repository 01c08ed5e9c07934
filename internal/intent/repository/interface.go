package repository

import (
	"context"

	"github.com/pKa1/loveSonia/internal/model"
)

// Repository persists confirmed intents.
type Repository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
}
