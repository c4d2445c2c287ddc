package repository

import (
	"sync"

	"github.com/l27labs/dca-engine/internal/model"
	"github.com/l27labs/dca-engine/internal/store"
)

type EventRepositoryInterface interface {
	Append(e model.CalendarEvent)
	List() []model.CalendarEvent
}

// EventRepository holds the scheduled calendar events, same lifecycle as the
// drafts collection.
type EventRepository struct {
	Store *store.FileStore

	mu     sync.Mutex
	events []model.CalendarEvent
}

func NewEventRepository(s *store.FileStore) *EventRepository {
	r := &EventRepository{Store: s}
	r.Store.Load(store.EventsKey, &r.events)
	return r
}

func (r *EventRepository) Append(e model.CalendarEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append([]model.CalendarEvent{e}, r.events...)
	r.Store.Save(store.EventsKey, r.events)
}

func (r *EventRepository) List() []model.CalendarEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.CalendarEvent, len(r.events))
	copy(out, r.events)
	return out
}
