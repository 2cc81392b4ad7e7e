package service

import (
	"context"
	"strings"

	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/store"
)

// MemberService manages chama member records.  The contribution and
// investment id lists on a member are initialized empty and currently stay
// empty; see the model package note.
type MemberService struct {
	members store.Store[model.Member]
	newID   IDFunc
}

func NewMemberService(members store.Store[model.Member]) *MemberService {
	return &MemberService{members: members, newID: defaultID}
}

func (s *MemberService) Create(ctx context.Context, p model.MemberPayload) (*model.Member, error) {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return nil, model.InvalidPayloadf("missing required fields: %s", strings.Join(missing, ", "))
	}
	m := model.Member{
		ID:            s.newID(),
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		Contributions: []string{},
		Investments:   []string{},
	}
	if err := s.members.Insert(ctx, m.ID, m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MemberService) Get(ctx context.Context, id string) (*model.Member, error) {
	m, ok, err := s.members.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFoundf("member with id=%s not found", id)
	}
	return &m, nil
}

func (s *MemberService) List(ctx context.Context) ([]model.Member, error) {
	return s.members.Values(ctx)
}

func (s *MemberService) Update(ctx context.Context, id string, p model.MemberUpdate) (*model.Member, error) {
	m, ok, err := s.members.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFoundf("member with id=%s not found", id)
	}
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Phone != nil {
		m.Phone = *p.Phone
	}
	if err := s.members.Insert(ctx, m.ID, m); err != nil {
		return nil, err
	}
	return &m, nil
}
