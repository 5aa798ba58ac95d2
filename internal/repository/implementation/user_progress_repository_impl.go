package implementation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ingunnnaevdal/masterevaluering/internal/entity"
	"github.com/ingunnnaevdal/masterevaluering/internal/mapper"
	"github.com/ingunnnaevdal/masterevaluering/internal/model"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/contract"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/specification"
)

type UserProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserProgressMapper
}

func NewUserProgressRepository(db *gorm.DB) contract.UserProgressRepository {
	return &UserProgressRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserProgressMapper(),
	}
}

func (r *UserProgressRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserProgressRepositoryImpl) Create(ctx context.Context, progress *entity.UserProgress) error {
	m, err := r.mapper.ToModel(progress)
	if err != nil {
		return err
	}
	if err := validateDocType(m.Type, model.DocTypeUserConfig); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	ent, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*progress = *ent
	return nil
}

func (r *UserProgressRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProgress, error) {
	var m model.UserProgress
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := validateDocType(m.Type, model.DocTypeUserConfig); err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *UserProgressRepositoryImpl) AdvanceCursor(ctx context.Context, id uuid.UUID, from int) error {
	res := r.db.WithContext(ctx).
		Model(&model.UserProgress{}).
		Where("id = ? AND current_index = ?", id, from).
		Update("current_index", from+1)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cursor for progress %s is no longer at %d", id, from)
	}
	return nil
}

func (r *UserProgressRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UserProgress{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
