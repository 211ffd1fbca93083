package repository

import (
	"fmt"
	"reflect"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Fillable declares an explicit allow-list of writable columns. When a model
// implements it with a non-empty list, that list is used verbatim.
type Fillable interface {
	FillableFields() []string
}

// Guarded declares columns that must never be writable. Only consulted when
// the model has no explicit allow-list.
type Guarded interface {
	GuardedFields() []string
}

// Hidden declares columns excluded from the writable set alongside guarded
// ones. Only consulted when the model has no explicit allow-list.
type Hidden interface {
	HiddenFields() []string
}

var schemaCache = &sync.Map{}

// writableColumns resolves the writable-field set for a model: the explicit
// allow-list if one is declared, otherwise all persisted columns minus
// guarded minus hidden. A model without resolvable columns is a
// configuration error.
func writableColumns(model any, sch *schema.Schema) (map[string]struct{}, error) {
	if f, ok := model.(Fillable); ok {
		if cols := f.FillableFields(); len(cols) > 0 {
			return toSet(cols), nil
		}
	}

	if len(sch.DBNames) == 0 {
		return nil, fmt.Errorf("model %s has no resolvable columns", sch.Name)
	}

	set := toSet(sch.DBNames)
	if g, ok := model.(Guarded); ok {
		for _, col := range g.GuardedFields() {
			delete(set, col)
		}
	}
	if h, ok := model.(Hidden); ok {
		for _, col := range h.HiddenFields() {
			delete(set, col)
		}
	}
	return set, nil
}

// deletedAtColumn reports the soft-delete marker column, if the model has one.
func deletedAtColumn(sch *schema.Schema) (string, bool) {
	deletedAtType := reflect.TypeOf(gorm.DeletedAt{})
	for _, field := range sch.Fields {
		if field.FieldType == deletedAtType {
			return field.DBName, true
		}
	}
	return "", false
}

func toSet(cols []string) map[string]struct{} {
	set := make(map[string]struct{}, len(cols))
	for _, col := range cols {
		set[col] = struct{}{}
	}
	return set
}
