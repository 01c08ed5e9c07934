package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pKa1/loveSonia/internal/intent"
	"github.com/pKa1/loveSonia/internal/intent/repository"
	"github.com/pKa1/loveSonia/internal/model"
	"github.com/pKa1/loveSonia/pkg/datemath"
	"github.com/pKa1/loveSonia/pkg/nlp"
)

// Date-only intents start at noon.
const dateOnlyHour = 12

// Confirm persists a stored preview and notifies realtime subscribers.
func (uc *implUseCase) Confirm(ctx context.Context, sc model.Scope, input intent.ConfirmInput) (intent.ConfirmOutput, error) {
	p, ok := uc.previews.get(input.PreviewID, sc.UserID)
	if !ok {
		return intent.ConfirmOutput{}, intent.ErrPreviewNotFound
	}

	in := p.intent.Clone()
	if title := strings.TrimSpace(input.Title); title != "" {
		in.Title = title
	}
	if input.Assignee != "" {
		a := nlp.Assignee(strings.ToUpper(strings.TrimSpace(input.Assignee)))
		if !a.Valid() {
			return intent.ConfirmOutput{}, intent.ErrInvalidAssignee
		}
		in.Assignee = a
	}

	if !uc.previews.take(input.PreviewID) {
		return intent.ConfirmOutput{}, intent.ErrPreviewNotFound
	}

	loc, _ := datemath.LoadLocation(p.timeZone)
	var (
		out   intent.ConfirmOutput
		topic string
		err   error
	)
	if in.Kind == nlp.KindEvent {
		out, err = uc.createEvent(ctx, sc, in, loc)
		topic = intent.TopicEvents
	} else {
		out, err = uc.createTask(ctx, sc, in, loc)
		topic = intent.TopicTasks
	}
	if err != nil {
		uc.previews.restore(input.PreviewID, p)
		uc.metrics.confirms.WithLabelValues(string(in.Kind), "error").Inc()
		uc.l.Errorf(ctx, "intent.usecase.Confirm: user=%s id=%s: %v", sc.UserID, input.PreviewID, err)
		return intent.ConfirmOutput{}, fmt.Errorf("%w: %v", intent.ErrPersistFailed, err)
	}

	uc.metrics.confirms.WithLabelValues(out.Type, "ok").Inc()
	if uc.publisher != nil {
		uc.publisher.Publish(topic, intent.ChangeNotice{
			Action: "create",
			ID:     out.ID,
			Title:  out.Title,
			UserID: sc.UserID,
		})
	}
	uc.l.Infof(ctx, "intent.usecase.Confirm: user=%s type=%s id=%s", sc.UserID, out.Type, out.ID)
	return out, nil
}

func (uc *implUseCase) createEvent(ctx context.Context, sc model.Scope, in *nlp.Intent, loc *time.Location) (intent.ConfirmOutput, error) {
	var start time.Time
	switch {
	case in.Start != nil:
		start = *in.Start
	case in.Date != nil:
		start = datemath.At(in.Date.In(loc), dateOnlyHour, 0, loc)
	default:
		now := uc.now().In(loc)
		start = datemath.At(now, now.Hour(), 0, loc).Add(time.Hour)
	}
	end := start.Add(defaultEventSpan)
	if in.End != nil {
		end = *in.End
	}

	ev, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{
		Scope:    sc,
		Title:    in.Title,
		Start:    start.UTC(),
		End:      end.UTC(),
		Location: in.Location,
		TimeZone: loc.String(),
	})
	if err != nil {
		return intent.ConfirmOutput{}, err
	}
	return intent.ConfirmOutput{
		Type:  intent.TypeEvent,
		ID:    ev.ID,
		Title: ev.Title,
		Link:  ev.Link,
		Start: &ev.Start,
		End:   &ev.End,
	}, nil
}

func (uc *implUseCase) createTask(ctx context.Context, sc model.Scope, in *nlp.Intent, loc *time.Location) (intent.ConfirmOutput, error) {
	due := in.Due
	if due == nil && in.Date != nil {
		d := datemath.At(in.Date.In(loc), dateOnlyHour, 0, loc).UTC()
		due = &d
	}

	task, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Scope:    sc,
		Title:    in.Title,
		Assignee: string(in.Assignee),
		Due:      due,
	})
	if err != nil {
		return intent.ConfirmOutput{}, err
	}
	return intent.ConfirmOutput{
		Type:  intent.TypeTask,
		ID:    task.ID,
		Title: task.Title,
		Link:  task.Link,
		Due:   task.Due,
	}, nil
}
