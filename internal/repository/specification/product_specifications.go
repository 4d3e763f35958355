package specification

import (
	"strings"

	"gorm.io/gorm"
)

// Condition is a WHERE fragment that can also be composed with AllOf / AnyOf.
// An empty clause means the condition does not restrict anything.
type Condition interface {
	Specification
	Clause() (string, []interface{})
}

func applyCondition(db *gorm.DB, c Condition) *gorm.DB {
	sql, args := c.Clause()
	if sql == "" {
		return db
	}
	return db.Where(sql, args...)
}

// PriceAtLeast keeps products with precio >= Min
type PriceAtLeast struct {
	Min float64
}

func (s PriceAtLeast) Clause() (string, []interface{}) {
	return "precio >= ?", []interface{}{s.Min}
}

func (s PriceAtLeast) Apply(db *gorm.DB) *gorm.DB { return applyCondition(db, s) }

// PriceAtMost keeps products with precio <= Max
type PriceAtMost struct {
	Max float64
}

func (s PriceAtMost) Clause() (string, []interface{}) {
	return "precio <= ?", []interface{}{s.Max}
}

func (s PriceAtMost) Apply(db *gorm.DB) *gorm.DB { return applyCondition(db, s) }

// KeywordMatch matches any keyword against code, name, description or category.
type KeywordMatch struct {
	Keywords []string
}

func (s KeywordMatch) Clause() (string, []interface{}) {
	var parts []string
	var args []interface{}
	for _, kw := range s.Keywords {
		pattern := "%" + strings.ToLower(kw) + "%"
		parts = append(parts, "(LOWER(codigo) LIKE ? OR LOWER(nombre) LIKE ? OR LOWER(descripcion) LIKE ? OR LOWER(categoria) LIKE ?)")
		args = append(args, pattern, pattern, pattern, pattern)
	}
	if len(parts) == 0 {
		return "", nil
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

func (s KeywordMatch) Apply(db *gorm.DB) *gorm.DB { return applyCondition(db, s) }

// CategoryMatch matches any of the categories against the category column.
type CategoryMatch struct {
	Categories []string
}

func (s CategoryMatch) Clause() (string, []interface{}) {
	var parts []string
	var args []interface{}
	for _, cat := range s.Categories {
		parts = append(parts, "LOWER(categoria) LIKE ?")
		args = append(args, "%"+strings.ToLower(cat)+"%")
	}
	if len(parts) == 0 {
		return "", nil
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

func (s CategoryMatch) Apply(db *gorm.DB) *gorm.DB { return applyCondition(db, s) }

// AllOf joins its conditions with AND
type AllOf struct {
	Conditions []Condition
}

func (s AllOf) Clause() (string, []interface{}) {
	return join(s.Conditions, " AND ")
}

func (s AllOf) Apply(db *gorm.DB) *gorm.DB { return applyCondition(db, s) }

// AnyOf joins its conditions with OR
type AnyOf struct {
	Conditions []Condition
}

func (s AnyOf) Clause() (string, []interface{}) {
	return join(s.Conditions, " OR ")
}

func (s AnyOf) Apply(db *gorm.DB) *gorm.DB { return applyCondition(db, s) }

func join(conditions []Condition, sep string) (string, []interface{}) {
	var parts []string
	var args []interface{}
	for _, c := range conditions {
		sql, cArgs := c.Clause()
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		args = append(args, cArgs...)
	}
	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return parts[0], args
	}
	return "(" + strings.Join(parts, sep) + ")", args
}

// ByCode filters by the unique product code
type ByCode struct {
	Code string
}

func (s ByCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("codigo = ?", s.Code)
}

// CheapestFirst orders results by price ascending
var CheapestFirst = OrderBy{Field: "precio"}
