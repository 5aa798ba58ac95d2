package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/ingunnnaevdal/masterevaluering/internal/entity"
	"github.com/ingunnnaevdal/masterevaluering/internal/model"
)

type ArticleEvaluationMapper struct{}

func NewArticleEvaluationMapper() *ArticleEvaluationMapper {
	return &ArticleEvaluationMapper{}
}

func (m *ArticleEvaluationMapper) ToEntity(e *model.ArticleEvaluation) (*entity.ArticleEvaluation, error) {
	if e == nil {
		return nil, nil
	}
	var rangeringer map[string]string
	if err := json.Unmarshal(e.Rangeringer, &rangeringer); err != nil {
		return nil, fmt.Errorf("decode rangeringer for %s: %w", e.BrukerID, err)
	}
	var kilder []string
	if err := json.Unmarshal(e.Kilder, &kilder); err != nil {
		return nil, fmt.Errorf("decode sammendrag_kilder for %s: %w", e.BrukerID, err)
	}

	return &entity.ArticleEvaluation{
		Id:            e.Id,
		BrukerID:      e.BrukerID,
		RandomListPos: e.RandomListPos,
		DataIdx:       e.DataIdx,
		ArticleUUID:   e.ArticleUUID,
		Rangeringer:   rangeringer,
		Kilder:        kilder,
		Kommentar:     e.Kommentar,
		CreatedAt:     e.CreatedAt,
	}, nil
}

func (m *ArticleEvaluationMapper) ToModel(e *entity.ArticleEvaluation) (*model.ArticleEvaluation, error) {
	if e == nil {
		return nil, nil
	}
	rangeringer, err := json.Marshal(e.Rangeringer)
	if err != nil {
		return nil, fmt.Errorf("encode rangeringer for %s: %w", e.BrukerID, err)
	}
	kilder, err := json.Marshal(e.Kilder)
	if err != nil {
		return nil, fmt.Errorf("encode sammendrag_kilder for %s: %w", e.BrukerID, err)
	}

	return &model.ArticleEvaluation{
		Id:            e.Id,
		Type:          model.DocTypeArtikkelEvaluering,
		BrukerID:      e.BrukerID,
		RandomListPos: e.RandomListPos,
		DataIdx:       e.DataIdx,
		ArticleUUID:   e.ArticleUUID,
		Rangeringer:   rangeringer,
		Kilder:        kilder,
		Kommentar:     e.Kommentar,
		CreatedAt:     e.CreatedAt,
	}, nil
}

func (m *ArticleEvaluationMapper) ToEntities(models []*model.ArticleEvaluation) ([]*entity.ArticleEvaluation, error) {
	entities := make([]*entity.ArticleEvaluation, len(models))
	for i, e := range models {
		ent, err := m.ToEntity(e)
		if err != nil {
			return nil, err
		}
		entities[i] = ent
	}
	return entities, nil
}
