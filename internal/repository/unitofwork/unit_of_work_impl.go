package unitofwork

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ingunnnaevdal/masterevaluering/internal/repository/contract"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/implementation"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) SurveyResponseRepository() contract.SurveyResponseRepository {
	return implementation.NewSurveyResponseRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UserProgressRepository() contract.UserProgressRepository {
	return implementation.NewUserProgressRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ArticleEvaluationRepository() contract.ArticleEvaluationRepository {
	return implementation.NewArticleEvaluationRepository(u.getDB())
}
