package service

import (
	"context"

	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/store"
)

// GroupService manages chama groups.  Member and discussion id lists are
// initialized empty and not yet maintained by any operation.
type GroupService struct {
	groups store.Store[model.Group]
	newID  IDFunc
}

func NewGroupService(groups store.Store[model.Group]) *GroupService {
	return &GroupService{groups: groups, newID: defaultID}
}

func (s *GroupService) Create(ctx context.Context, p model.GroupPayload) (*model.Group, error) {
	if p == (model.GroupPayload{}) {
		return nil, model.InvalidPayloadf("empty group payload")
	}
	g := model.Group{
		ID:          s.newID(),
		Name:        p.Name,
		Description: p.Description,
		Members:     []string{},
		Discussions: []string{},
	}
	if err := s.groups.Insert(ctx, g.ID, g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *GroupService) Get(ctx context.Context, id string) (*model.Group, error) {
	g, ok, err := s.groups.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFoundf("group with id=%s not found", id)
	}
	return &g, nil
}

func (s *GroupService) List(ctx context.Context) ([]model.Group, error) {
	return s.groups.Values(ctx)
}
