package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ingunnnaevdal/masterevaluering/internal/entity"
	"github.com/ingunnnaevdal/masterevaluering/internal/mapper"
	"github.com/ingunnnaevdal/masterevaluering/internal/model"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/contract"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/specification"
)

type SurveyResponseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SurveyResponseMapper
}

func NewSurveyResponseRepository(db *gorm.DB) contract.SurveyResponseRepository {
	return &SurveyResponseRepositoryImpl{
		db:     db,
		mapper: mapper.NewSurveyResponseMapper(),
	}
}

func (r *SurveyResponseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SurveyResponseRepositoryImpl) Create(ctx context.Context, response *entity.SurveyResponse) error {
	m := r.mapper.ToModel(response)
	if err := validateDocType(m.Type, model.DocTypeUndersokelse); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*response = *r.mapper.ToEntity(m)
	return nil
}

func (r *SurveyResponseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SurveyResponse, error) {
	var m model.SurveyResponse
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := validateDocType(m.Type, model.DocTypeUndersokelse); err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SurveyResponseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SurveyResponse{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
