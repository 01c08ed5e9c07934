package google

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pKa1/loveSonia/internal/intent/repository"
	"github.com/pKa1/loveSonia/internal/model"
	"github.com/pKa1/loveSonia/pkg/gcalendar"
)

const createdBy = "Создано в LoveSonia"

var assigneeLabels = map[string]string{
	"SELF":    "я",
	"PARTNER": "партнёр",
	"WE":      "мы вместе",
}

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	if strings.TrimSpace(opt.Title) == "" {
		return model.Event{}, repository.ErrEmptyTitle
	}
	if opt.End.Before(opt.Start) {
		return model.Event{}, repository.ErrInvalidTimeRange
	}

	created, err := r.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  r.calendarID,
		Summary:     opt.Title,
		Description: describe(opt.Scope),
		Location:    opt.Location,
		StartTime:   opt.Start,
		EndTime:     opt.End,
		Timezone:    opt.TimeZone,
	})
	if err != nil {
		r.l.Errorf(ctx, "google repository: failed to create event %q: %v", opt.Title, err)
		return model.Event{}, err
	}

	return model.Event{
		ID:       created.ID,
		Title:    opt.Title,
		Start:    opt.Start.UTC(),
		End:      opt.End.UTC(),
		Location: opt.Location,
		TimeZone: opt.TimeZone,
		Link:     created.HtmlLink,
		OwnerID:  opt.Scope.UserID,
		Created:  time.Now().UTC(),
	}, nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if strings.TrimSpace(opt.Title) == "" {
		return model.Task{}, repository.ErrEmptyTitle
	}

	notes := describe(opt.Scope)
	if label, ok := assigneeLabels[opt.Assignee]; ok {
		notes = fmt.Sprintf("Ответственный: %s\n%s", label, notes)
	}

	created, err := r.client.CreateTask(ctx, gcalendar.CreateTaskRequest{
		TaskListID: r.taskListID,
		Title:      opt.Title,
		Notes:      notes,
		Due:        opt.Due,
	})
	if err != nil {
		r.l.Errorf(ctx, "google repository: failed to create task %q: %v", opt.Title, err)
		return model.Task{}, err
	}

	task := model.Task{
		ID:       created.ID,
		Title:    opt.Title,
		Assignee: opt.Assignee,
		Link:     created.WebLink,
		OwnerID:  opt.Scope.UserID,
		Created:  time.Now().UTC(),
	}
	if opt.Due != nil {
		due := opt.Due.UTC()
		task.Due = &due
	}
	return task, nil
}

func describe(sc model.Scope) string {
	if sc.Username != "" {
		return fmt.Sprintf("%s (@%s)", createdBy, sc.Username)
	}
	return createdBy
}
