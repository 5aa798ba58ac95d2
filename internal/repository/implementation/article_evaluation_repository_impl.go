package implementation

import (
	"context"

	"gorm.io/gorm"

	"github.com/ingunnnaevdal/masterevaluering/internal/entity"
	"github.com/ingunnnaevdal/masterevaluering/internal/mapper"
	"github.com/ingunnnaevdal/masterevaluering/internal/model"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/contract"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/specification"
)

type ArticleEvaluationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ArticleEvaluationMapper
}

func NewArticleEvaluationRepository(db *gorm.DB) contract.ArticleEvaluationRepository {
	return &ArticleEvaluationRepositoryImpl{
		db:     db,
		mapper: mapper.NewArticleEvaluationMapper(),
	}
}

func (r *ArticleEvaluationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ArticleEvaluationRepositoryImpl) Create(ctx context.Context, evaluation *entity.ArticleEvaluation) error {
	m, err := r.mapper.ToModel(evaluation)
	if err != nil {
		return err
	}
	if err := validateDocType(m.Type, model.DocTypeArtikkelEvaluering); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	ent, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*evaluation = *ent
	return nil
}

func (r *ArticleEvaluationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ArticleEvaluation, error) {
	var models []*model.ArticleEvaluation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}

func (r *ArticleEvaluationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ArticleEvaluation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
