package service

import (
	"context"

	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/store"
)

// UserService manages attendee records.
type UserService struct {
	users store.Store[model.User]
	newID IDFunc
}

func NewUserService(users store.Store[model.User]) *UserService {
	return &UserService{users: users, newID: defaultID}
}

func (s *UserService) Create(ctx context.Context, p model.UserPayload) (*model.User, error) {
	if p == (model.UserPayload{}) {
		return nil, model.InvalidPayloadf("empty user payload")
	}
	u := model.User{
		ID:      s.newID(),
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
		Tickets: []string{},
	}
	if err := s.users.Insert(ctx, u.ID, u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	u, ok, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFoundf("user with id=%s not found", id)
	}
	return &u, nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.Values(ctx)
}

// Update merge-overwrites contact fields; the id, name and ticket list are
// preserved.
func (s *UserService) Update(ctx context.Context, id string, p model.UserUpdate) (*model.User, error) {
	u, ok, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFoundf("user with id=%s not found", id)
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if err := s.users.Insert(ctx, u.ID, u); err != nil {
		return nil, err
	}
	return &u, nil
}
