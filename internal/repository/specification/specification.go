package specification

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Specification narrows or orders a product query.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

// OrderBy sorts by a single column. The column name is quoted by gorm.
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: s.Field}, Desc: s.Desc})
}
