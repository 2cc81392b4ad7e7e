package service

import (
	"context"

	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/store"
)

// ContributionService records member payments into the chama.  The member
// reference is validated at creation; the reverse link on the member record
// is not maintained (see the model package note).
type ContributionService struct {
	contributions store.Store[model.Contribution]
	members       store.Store[model.Member]
	newID         IDFunc
}

func NewContributionService(
	contributions store.Store[model.Contribution],
	members store.Store[model.Member],
) *ContributionService {
	return &ContributionService{contributions: contributions, members: members, newID: defaultID}
}

func (s *ContributionService) Create(ctx context.Context, p model.ContributionPayload) (*model.Contribution, error) {
	_, ok, err := s.members.Get(ctx, p.MemberID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFoundf("member with id=%s not found", p.MemberID)
	}
	c := model.Contribution{
		ID:       s.newID(),
		MemberID: p.MemberID,
		Amount:   p.Amount,
		Date:     p.Date,
	}
	if err := s.contributions.Insert(ctx, c.ID, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ContributionService) Get(ctx context.Context, id string) (*model.Contribution, error) {
	c, ok, err := s.contributions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFoundf("contribution with id=%s not found", id)
	}
	return &c, nil
}

func (s *ContributionService) List(ctx context.Context) ([]model.Contribution, error) {
	return s.contributions.Values(ctx)
}

// ListForMember filters all contributions by the paying member.  An unknown
// member yields an empty slice.
func (s *ContributionService) ListForMember(ctx context.Context, memberID string) ([]model.Contribution, error) {
	_, ok, err := s.members.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Contribution{}, nil
	}
	all, err := s.contributions.Values(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Contribution, 0)
	for _, c := range all {
		if c.MemberID == memberID {
			out = append(out, c)
		}
	}
	return out, nil
}
