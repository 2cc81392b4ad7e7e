package service

import (
	"context"

	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/store"
)

// TicketService issues tickets and answers the cross-store queries that join
// tickets with their events and holders.  Ticket creation is the only
// operation in the registry that writes to more than one store; the three
// writes run inside one TxRunner boundary so a mid-sequence failure cannot
// leave the event counter, the ticket record and the user's ticket list
// disagreeing.
type TicketService struct {
	tickets store.Store[model.Ticket]
	events  store.Store[model.Event]
	users   store.Store[model.User]
	runner  store.TxRunner
	newID   IDFunc
}

func NewTicketService(
	tickets store.Store[model.Ticket],
	events store.Store[model.Event],
	users store.Store[model.User],
	runner store.TxRunner,
) *TicketService {
	return &TicketService{
		tickets: tickets,
		events:  events,
		users:   users,
		runner:  runner,
		newID:   defaultID,
	}
}

// CreateTicket reserves a slot on an event for a user.  Both references are
// checked up front; a rejected reference leaves every store untouched.  The
// event's ReservedAmount is incremented without an upper-bound check against
// MaxSlots: oversell is recorded, not prevented.
func (s *TicketService) CreateTicket(ctx context.Context, eventID, userID string) (*model.TicketDetail, error) {
	user, ok, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFoundf("user=%s not found", userID)
	}
	event, ok, err := s.events.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFoundf("event=%s not found", eventID)
	}

	t := model.Ticket{ID: s.newID(), EventID: event.ID, UserID: user.ID}
	detail := model.TicketDetail{
		ID:        t.ID,
		EventID:   event.ID,
		EventName: event.Title,
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		UserPhone: user.Phone,
	}

	event.ReservedAmount++
	user.Tickets = append(user.Tickets, t.ID)

	err = s.runner.InTx(ctx, func(ctx context.Context) error {
		if err := s.events.Insert(ctx, event.ID, event); err != nil {
			return err
		}
		if err := s.tickets.Insert(ctx, t.ID, t); err != nil {
			return err
		}
		return s.users.Insert(ctx, user.ID, user)
	})
	if err != nil {
		return nil, model.NotFoundf("cannot create ticket, err=%v", err)
	}
	return &detail, nil
}

func (s *TicketService) Get(ctx context.Context, id string) (*model.Ticket, error) {
	t, ok, err := s.tickets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFoundf("ticket with id=%s not found", id)
	}
	return &t, nil
}

func (s *TicketService) List(ctx context.Context) ([]model.Ticket, error) {
	return s.tickets.Values(ctx)
}

// EventsForUser returns the events a user holds tickets for.  An unknown
// user yields an empty slice, not an error.  The scan is linear in the total
// number of tickets; there is no index and no pagination.
func (s *TicketService) EventsForUser(ctx context.Context, userID string) ([]model.Event, error) {
	_, ok, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Event{}, nil
	}
	tickets, err := s.tickets.Values(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Event, 0)
	for _, t := range tickets {
		if t.UserID != userID {
			continue
		}
		ev, ok, err := s.events.Get(ctx, t.EventID)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Ticket outlived its event; nothing to show for it.
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

// TicketsForEvent returns enriched projections for every ticket issued on an
// event.  An unknown event yields an empty slice.
func (s *TicketService) TicketsForEvent(ctx context.Context, eventID string) ([]model.TicketDetail, error) {
	event, ok, err := s.events.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.TicketDetail{}, nil
	}
	tickets, err := s.tickets.Values(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.TicketDetail, 0)
	for _, t := range tickets {
		if t.EventID != event.ID {
			continue
		}
		user, ok, err := s.users.Get(ctx, t.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, model.TicketDetail{
			ID:        t.ID,
			EventID:   event.ID,
			EventName: event.Title,
			UserID:    t.UserID,
			UserName:  user.Name,
			UserEmail: user.Email,
			UserPhone: user.Phone,
		})
	}
	return out, nil
}

// TicketsForUser is the symmetric query: every ticket a user holds, joined
// with its event.  An unknown user yields an empty slice.
func (s *TicketService) TicketsForUser(ctx context.Context, userID string) ([]model.TicketDetail, error) {
	user, ok, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.TicketDetail{}, nil
	}
	tickets, err := s.tickets.Values(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.TicketDetail, 0)
	for _, t := range tickets {
		if t.UserID != user.ID {
			continue
		}
		event, ok, err := s.events.Get(ctx, t.EventID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, model.TicketDetail{
			ID:        t.ID,
			EventID:   event.ID,
			EventName: event.Title,
			UserID:    user.ID,
			UserName:  user.Name,
			UserEmail: user.Email,
			UserPhone: user.Phone,
		})
	}
	return out, nil
}
