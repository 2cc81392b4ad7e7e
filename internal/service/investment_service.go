package service

import (
	"context"
	"strings"

	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/store"
)

// InvestmentService records pooled investments.  Returns starts at zero.
type InvestmentService struct {
	investments store.Store[model.Investment]
	newID       IDFunc
}

func NewInvestmentService(investments store.Store[model.Investment]) *InvestmentService {
	return &InvestmentService{investments: investments, newID: defaultID}
}

func (s *InvestmentService) Create(ctx context.Context, p model.InvestmentPayload) (*model.Investment, error) {
	var missing []string
	if p.RecordType == "" {
		missing = append(missing, "record_type")
	}
	if p.Amount == 0 {
		missing = append(missing, "amount")
	}
	if p.Date == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return nil, model.InvalidPayloadf("missing required fields: %s", strings.Join(missing, ", "))
	}
	inv := model.Investment{
		ID:         s.newID(),
		RecordType: p.RecordType,
		Amount:     p.Amount,
		Date:       p.Date,
		Returns:    0,
	}
	if err := s.investments.Insert(ctx, inv.ID, inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *InvestmentService) Get(ctx context.Context, id string) (*model.Investment, error) {
	inv, ok, err := s.investments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFoundf("investment with id=%s not found", id)
	}
	return &inv, nil
}

func (s *InvestmentService) List(ctx context.Context) ([]model.Investment, error) {
	return s.investments.Values(ctx)
}
