package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/pKa1/loveSonia/internal/intent/repository"
	"github.com/pKa1/loveSonia/internal/model"
)

func (r *Repository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	if strings.TrimSpace(opt.Title) == "" {
		return model.Event{}, repository.ErrEmptyTitle
	}
	if opt.End.Before(opt.Start) {
		return model.Event{}, repository.ErrInvalidTimeRange
	}

	ev := model.Event{
		ID:       uuid.NewString(),
		Title:    opt.Title,
		Start:    opt.Start.UTC(),
		End:      opt.End.UTC(),
		Location: opt.Location,
		TimeZone: opt.TimeZone,
		OwnerID:  opt.Scope.UserID,
		Created:  r.now().UTC(),
	}

	r.mu.Lock()
	r.events[ev.ID] = ev
	r.mu.Unlock()
	return ev, nil
}

func (r *Repository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if strings.TrimSpace(opt.Title) == "" {
		return model.Task{}, repository.ErrEmptyTitle
	}

	task := model.Task{
		ID:       uuid.NewString(),
		Title:    opt.Title,
		Assignee: opt.Assignee,
		OwnerID:  opt.Scope.UserID,
		Created:  r.now().UTC(),
	}
	if opt.Due != nil {
		due := opt.Due.UTC()
		task.Due = &due
	}

	r.mu.Lock()
	r.tasks[task.ID] = task
	r.mu.Unlock()
	return task, nil
}

// Events returns the stored events of a user ordered by start.
func (r *Repository) Events(userID string) []model.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Event, 0, len(r.events))
	for _, ev := range r.events {
		if ev.OwnerID == userID {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// Tasks returns the stored tasks of a user in creation order.
func (r *Repository) Tasks(userID string) []model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if t.OwnerID == userID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })
	return out
}
