package store

import (
	"database/sql"

	"gorm.io/gorm"
)

// NextPosition returns the position a newly created item takes within its
// ordering scope: max(column)+1, or 0 for an empty scope.
func NextPosition[T any](db *gorm.DB, scope Filter, column string) (int, error) {
	var max sql.NullInt64
	q := apply(db.Model(new(T)), scope)
	if err := q.Select("MAX(" + column + ")").Scan(&max).Error; err != nil {
		return 0, err
	}
	if !max.Valid {
		return 0, nil
	}
	return int(max.Int64) + 1, nil
}

// Renumber sets column = index for each id in the caller-supplied order, all
// inside one transaction. Every id must already be validated against the
// owner scope; extraFields (e.g. a category move) are applied to every row.
// Positions are dense and zero-based by construction.
func Renumber[T any](db *gorm.DB, scope Filter, column string, ids []string, extraFields map[string]interface{}) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for index, id := range ids {
			fields := map[string]interface{}{column: index}
			for k, v := range extraFields {
				fields[k] = v
			}
			q := apply(tx.Model(new(T)), scope)
			if err := q.Where("id = ?", id).Updates(fields).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
