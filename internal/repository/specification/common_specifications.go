package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by primary key
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByBrukerID filters documents belonging to one survey participant
type ByBrukerID struct {
	BrukerID string
}

func (s ByBrukerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("bruker_id = ?", s.BrukerID)
}

// ByDocType filters by the shared `type` discriminant column
type ByDocType struct {
	DocType string
}

func (s ByDocType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.DocType)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}
