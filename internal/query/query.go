package query

import (
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"
)

// Descriptor describes a queryable entity collection: the model the query
// runs against and its filterable fields, keyed by external name and mapped
// to database columns. Descriptors are built per entity at compile time, so
// no field is ever resolved by reflection at request time.
type Descriptor struct {
	Model   any
	Columns map[string]string
}

var (
	// ErrNotQueryable is returned when the descriptor has no model or no fields.
	ErrNotQueryable = errors.New("query: descriptor is not queryable")

	// ErrFilterNotMap is returned when the filter is not an object of field conditions.
	ErrFilterNotMap = errors.New("query: filter must be an object of field conditions")

	// ErrBadCondition is returned when a condition is not an object containing "value".
	ErrBadCondition = errors.New(`query: each condition must be an object containing "value"`)
)

// UnknownFieldError reports a filter key that is not a filterable field of the entity.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("query: unknown field %q", e.Field)
}

// FromMap builds and runs a conjunction of comparison predicates described by
// filter, scanning all matching rows into dest (a pointer to a slice of the
// descriptor's model).
//
// filter must be a decoded JSON object mapping field names to
// {value, operator} objects. The operator key is optional and defaults to
// "="; an unrecognized operator string is treated as "=" as well, not as an
// error. A nil filter or an empty object matches every row. No ordering is
// applied, so rows come back in the store's natural order.
func FromMap(db *gorm.DB, desc Descriptor, filter any, dest any) error {
	if desc.Model == nil || len(desc.Columns) == 0 {
		return ErrNotQueryable
	}

	conditions := map[string]any{}
	if filter != nil {
		m, ok := filter.(map[string]any)
		if !ok {
			return ErrFilterNotMap
		}
		conditions = m
	}

	tx := db.Model(desc.Model)

	// Fields apply in sorted order, so the first error reported for a bad
	// filter is stable across runs.
	for _, field := range sortedKeys(conditions) {
		item, ok := conditions[field].(map[string]any)
		if !ok {
			return ErrBadCondition
		}

		value, ok := item["value"]
		if !ok {
			return ErrBadCondition
		}

		operator := "="
		if op, ok := item["operator"].(string); ok {
			operator = op
		}

		column, ok := desc.Columns[field]
		if !ok {
			return &UnknownFieldError{Field: field}
		}

		switch operator {
		case "!=":
			tx = tx.Where(column+" <> ?", value)
		case ">":
			tx = tx.Where(column+" > ?", value)
		case "<":
			tx = tx.Where(column+" < ?", value)
		case ">=":
			tx = tx.Where(column+" >= ?", value)
		case "<=":
			tx = tx.Where(column+" <= ?", value)
		default:
			tx = tx.Where(column+" = ?", value)
		}
	}

	return tx.Find(dest).Error
}

// ByFields runs an equality-only filter, the flat query-string counterpart of
// FromMap. Every field must exist in the descriptor.
func ByFields(db *gorm.DB, desc Descriptor, fields map[string]any, dest any) error {
	if desc.Model == nil || len(desc.Columns) == 0 {
		return ErrNotQueryable
	}

	tx := db.Model(desc.Model)

	for _, field := range sortedKeys(fields) {
		column, ok := desc.Columns[field]
		if !ok {
			return &UnknownFieldError{Field: field}
		}
		tx = tx.Where(column+" = ?", fields[field])
	}

	return tx.Find(dest).Error
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsClientError reports whether err is a filter-contract violation the caller
// should surface as a bad request rather than an internal error.
func IsClientError(err error) bool {
	var unknown *UnknownFieldError
	return errors.Is(err, ErrNotQueryable) ||
		errors.Is(err, ErrFilterNotMap) ||
		errors.Is(err, ErrBadCondition) ||
		errors.As(err, &unknown)
}
