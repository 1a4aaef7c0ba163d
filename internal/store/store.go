// Package store is a thin scoped-CRUD gateway over gorm. Every filter is an
// AND-conjunction of column equality predicates; there are no joins, so
// cross-table composition is done by callers issuing multiple lookups.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a filter matches no row. Callers translate it
// into the uniform not-found-or-not-owned response.
var ErrNotFound = errors.New("record not found")

type Filter map[string]interface{}

func apply(db *gorm.DB, filter Filter) *gorm.DB {
	for col, val := range filter {
		db = db.Where(col+" = ?", val)
	}
	return db
}

// List returns all rows matching the filter, optionally ordered.
func List[T any](db *gorm.DB, filter Filter, order ...string) ([]T, error) {
	var rows []T
	q := apply(db.Model(new(T)), filter)
	for _, o := range order {
		q = q.Order(o)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetOne returns the single row matching the filter or ErrNotFound.
func GetOne[T any](db *gorm.DB, filter Filter) (*T, error) {
	var row T
	err := apply(db.Model(new(T)), filter).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Exists reports whether any row matches the filter.
func Exists[T any](db *gorm.DB, filter Filter) (bool, error) {
	var count int64
	if err := apply(db.Model(new(T)), filter).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert creates the row. Server-stamped fields (id, owner, parent linkage)
// must be set by the caller before insert.
func Insert[T any](db *gorm.DB, row *T) error {
	return db.Create(row).Error
}

// Update applies the partial field map to the row matching the filter and
// returns the resulting row. An empty field map is a no-op that returns the
// current row rather than erroring.
func Update[T any](db *gorm.DB, filter Filter, fields map[string]interface{}) (*T, error) {
	current, err := GetOne[T](db, filter)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return current, nil
	}
	if err := apply(db.Model(new(T)), filter).Updates(fields).Error; err != nil {
		return nil, err
	}
	return GetOne[T](db, filter)
}

// Delete removes all rows matching the filter.
func Delete[T any](db *gorm.DB, filter Filter) error {
	return apply(db, filter).Delete(new(T)).Error
}
