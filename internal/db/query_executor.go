package db

import (
	"gorm.io/gorm"
)

// QueryExecutor handles ad-hoc database queries outside the repositories.
type QueryExecutor struct {
	DB *gorm.DB
}

// NewQueryExecutor creates a new instance of QueryExecutor.
func NewQueryExecutor(db *gorm.DB) *QueryExecutor {
	return &QueryExecutor{DB: db}
}

// Count returns the number of rows that match the given conditions.
func (qe *QueryExecutor) Count(table string, conditions map[string]interface{}) (int64, error) {
	var count int64
	result := qe.DB.Table(table).Where(conditions).Count(&count)
	return count, result.Error
}

// Exists checks if a record matching the conditions exists.
func (qe *QueryExecutor) Exists(table string, conditions map[string]interface{}) (bool, error) {
	count, err := qe.Count(table, conditions)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Transaction executes a set of operations within a database transaction.
func (qe *QueryExecutor) Transaction(txFunc func(tx *gorm.DB) error) error {
	return qe.DB.Transaction(txFunc)
}
