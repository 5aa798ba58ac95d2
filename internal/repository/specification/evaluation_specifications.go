package specification

import "gorm.io/gorm"

// ByCursorPos filters article evaluations submitted at one cursor position
type ByCursorPos struct {
	Pos int
}

func (s ByCursorPos) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("random_list_pos = ?", s.Pos)
}

// ByArticleUUID filters article evaluations for one dataset article
type ByArticleUUID struct {
	UUID string
}

func (s ByArticleUUID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("uuid = ?", s.UUID)
}
