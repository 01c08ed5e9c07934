package google

import (
	"context"

	"github.com/pKa1/loveSonia/internal/intent/repository"
	"github.com/pKa1/loveSonia/pkg/gcalendar"
	pkgLog "github.com/pKa1/loveSonia/pkg/log"
)

// Client is the subset of *gcalendar.Client the repository needs.
type Client interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	CreateTask(ctx context.Context, req gcalendar.CreateTaskRequest) (*gcalendar.Task, error)
}

type implRepository struct {
	client     Client
	calendarID string
	taskListID string
	l          pkgLog.Logger
}

// New creates a repository backed by Google Calendar (events) and Google Tasks (tasks).
func New(client Client, calendarID, taskListID string, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client:     client,
		calendarID: calendarID,
		taskListID: taskListID,
		l:          l,
	}
}
