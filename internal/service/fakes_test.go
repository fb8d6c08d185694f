package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"gifttax/internal/model"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []model.AuditLog
	failLog bool
}

func (f *fakeAuditRepo) Log(_ context.Context, entry *model.AuditLog) error {
	if f.failLog {
		return errors.New("db down")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditRepo) List(_ context.Context, action string, page, limit int) ([]model.AuditLog, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.AuditLog
	for _, e := range f.entries {
		if action == "" || e.Action == action {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

type publishedEvent struct {
	eventType string
	payload   any
}

type fakePublisher struct {
	events []publishedEvent
}

func (f *fakePublisher) Publish(eventType string, payload any) {
	f.events = append(f.events, publishedEvent{eventType: eventType, payload: payload})
}

type staticLaws struct {
	current model.LawContext
	next    model.LawContext
}

func (s *staticLaws) Current() model.LawContext { return s.current }

func (s *staticLaws) Reload() model.LawContext {
	s.current = s.next
	return s.current
}
