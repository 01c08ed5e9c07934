package google

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pKa1/loveSonia/internal/intent/repository"
	"github.com/pKa1/loveSonia/internal/model"
	"github.com/pKa1/loveSonia/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockClient struct {
	eventReq gcalendar.CreateEventRequest
	taskReq  gcalendar.CreateTaskRequest
	fail     bool
}

func (m *mockClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.eventReq = req
	if m.fail {
		return nil, errors.New("calendar down")
	}
	return &gcalendar.Event{ID: "ev-1", HtmlLink: "https://calendar.google.com/ev-1"}, nil
}

func (m *mockClient) CreateTask(ctx context.Context, req gcalendar.CreateTaskRequest) (*gcalendar.Task, error) {
	m.taskReq = req
	if m.fail {
		return nil, errors.New("tasks down")
	}
	return &gcalendar.Task{ID: "task-1", WebLink: "https://tasks.google.com/task-1"}, nil
}

func TestCreateEvent(t *testing.T) {
	client := &mockClient{}
	repo := New(client, "family@group.calendar.google.com", "@default", &mockLogger{})
	start := time.Date(2025, 10, 14, 7, 0, 0, 0, time.UTC)

	ev, err := repo.CreateEvent(context.Background(), repository.CreateEventOptions{
		Scope:    model.Scope{UserID: "u1", Username: "sonia"},
		Title:    "Ужин",
		Start:    start,
		End:      start.Add(time.Hour),
		Location: "кафе Пушкин",
		TimeZone: "Europe/Moscow",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.ID != "ev-1" || ev.Link == "" || ev.OwnerID != "u1" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if client.eventReq.CalendarID != "family@group.calendar.google.com" {
		t.Errorf("calendar id not passed: %q", client.eventReq.CalendarID)
	}
	if client.eventReq.Location != "кафе Пушкин" || client.eventReq.Timezone != "Europe/Moscow" {
		t.Errorf("unexpected request: %+v", client.eventReq)
	}
	if !strings.Contains(client.eventReq.Description, "@sonia") {
		t.Errorf("expected username in description, got %q", client.eventReq.Description)
	}
}

func TestCreateEvent_Validation(t *testing.T) {
	repo := New(&mockClient{}, "primary", "@default", &mockLogger{})
	start := time.Date(2025, 10, 14, 7, 0, 0, 0, time.UTC)

	_, err := repo.CreateEvent(context.Background(), repository.CreateEventOptions{Title: " ", Start: start, End: start})
	if !errors.Is(err, repository.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}

	_, err = repo.CreateEvent(context.Background(), repository.CreateEventOptions{Title: "x", Start: start, End: start.Add(-time.Minute)})
	if !errors.Is(err, repository.ErrInvalidTimeRange) {
		t.Errorf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func TestCreateTask(t *testing.T) {
	client := &mockClient{}
	repo := New(client, "primary", "list-1", &mockLogger{})
	due := time.Date(2025, 10, 13, 16, 0, 0, 0, time.UTC)

	task, err := repo.CreateTask(context.Background(), repository.CreateTaskOptions{
		Scope:    model.Scope{UserID: "u1"},
		Title:    "купить торт",
		Assignee: "PARTNER",
		Due:      &due,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "task-1" || task.Assignee != "PARTNER" || task.Due == nil || !task.Due.Equal(due) {
		t.Errorf("unexpected task: %+v", task)
	}
	if client.taskReq.TaskListID != "list-1" {
		t.Errorf("task list not passed: %q", client.taskReq.TaskListID)
	}
	if !strings.HasPrefix(client.taskReq.Notes, "Ответственный: партнёр") {
		t.Errorf("unexpected notes %q", client.taskReq.Notes)
	}
}

func TestCreateTask_ClientError(t *testing.T) {
	repo := New(&mockClient{fail: true}, "primary", "@default", &mockLogger{})

	if _, err := repo.CreateTask(context.Background(), repository.CreateTaskOptions{Title: "x"}); err == nil {
		t.Fatal("expected error")
	}
}
