// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExpenseRecord is the predicate function for expenserecord builders.
type ExpenseRecord func(*sql.Selector)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// MaintenanceRecord is the predicate function for maintenancerecord builders.
type MaintenanceRecord func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)
