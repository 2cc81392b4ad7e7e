package service

import (
	"context"

	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/store"
)

// EventService manages event records.  The seller recorded on each event is
// the caller principal resolved by the entry surface, stored verbatim.
type EventService struct {
	events store.Store[model.Event]
	newID  IDFunc
}

func NewEventService(events store.Store[model.Event]) *EventService {
	return &EventService{events: events, newID: defaultID}
}

// Create validates the payload, assigns a fresh id and zeroes the
// reservation counter.  An entirely empty payload is rejected; individual
// fields are otherwise up to the seller.
func (s *EventService) Create(ctx context.Context, p model.EventPayload, seller string) (*model.Event, error) {
	if p == (model.EventPayload{}) {
		return nil, model.InvalidPayloadf("empty event payload")
	}
	ev := model.Event{
		ID:             s.newID(),
		Title:          p.Title,
		Description:    p.Description,
		Date:           p.Date,
		StartTime:      p.StartTime,
		AttachmentURL:  p.AttachmentURL,
		Location:       p.Location,
		Seller:         seller,
		MaxSlots:       p.MaxSlots,
		ReservedAmount: 0,
	}
	if err := s.events.Insert(ctx, ev.ID, ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*model.Event, error) {
	ev, ok, err := s.events.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFoundf("event with id=%s not found", id)
	}
	return &ev, nil
}

func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.events.Values(ctx)
}

// Update merge-overwrites the fields present in the payload onto the stored
// event.  The id, title, seller and reservation counter are preserved.
func (s *EventService) Update(ctx context.Context, id string, p model.EventUpdate) (*model.Event, error) {
	ev, ok, err := s.events.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFoundf("event with id=%s not found", id)
	}
	if p.Description != nil {
		ev.Description = *p.Description
	}
	if p.Location != nil {
		ev.Location = *p.Location
	}
	if p.StartTime != nil {
		ev.StartTime = *p.StartTime
	}
	if p.AttachmentURL != nil {
		ev.AttachmentURL = *p.AttachmentURL
	}
	if p.MaxSlots != nil {
		ev.MaxSlots = *p.MaxSlots
	}
	if p.Date != nil {
		ev.Date = *p.Date
	}
	if err := s.events.Insert(ctx, ev.ID, ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
