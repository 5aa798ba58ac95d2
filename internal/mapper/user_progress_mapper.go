package mapper

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ingunnnaevdal/masterevaluering/internal/entity"
	"github.com/ingunnnaevdal/masterevaluering/internal/model"
)

type UserProgressMapper struct{}

func NewUserProgressMapper() *UserProgressMapper {
	return &UserProgressMapper{}
}

func (m *UserProgressMapper) ToEntity(p *model.UserProgress) (*entity.UserProgress, error) {
	if p == nil {
		return nil, nil
	}
	var order []int
	if err := json.Unmarshal(p.RandomOrder, &order); err != nil {
		return nil, fmt.Errorf("decode random_order for %s: %w", p.BrukerID, err)
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.UserProgress{
		Id:           p.Id,
		BrukerID:     p.BrukerID,
		RandomOrder:  order,
		CurrentIndex: p.CurrentIndex,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func (m *UserProgressMapper) ToModel(p *entity.UserProgress) (*model.UserProgress, error) {
	if p == nil {
		return nil, nil
	}
	order, err := json.Marshal(p.RandomOrder)
	if err != nil {
		return nil, fmt.Errorf("encode random_order for %s: %w", p.BrukerID, err)
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.UserProgress{
		Id:           p.Id,
		Type:         model.DocTypeUserConfig,
		BrukerID:     p.BrukerID,
		RandomOrder:  order,
		CurrentIndex: p.CurrentIndex,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    updatedAt,
	}, nil
}
