package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

const defaultPerPage = 15

var (
	// ErrNotFound is returned when a strict lookup or a mutation target does
	// not resolve to a row.
	ErrNotFound = errors.New("record not found")

	// ErrRestoreUnsupported is returned when restore is called on a model
	// without a soft-delete column.
	ErrRestoreUnsupported = errors.New("model does not support soft deletes")
)

// Order is a single ordering clause.
type Order struct {
	Column    string
	Direction string
}

// Repository is a model-agnostic data-access engine bound to one gorm model
// type. Chainable calls (Where, OrderBy) return a derived repository carrying
// the pending query state; the database is only touched by terminal calls.
// Storage errors propagate unwrapped.
type Repository[T any] struct {
	db        *gorm.DB
	sch       *schema.Schema
	writable  map[string]struct{}
	deletedAt string
	soft      bool
	filters   []map[string]any
	orders    []Order
}

// New binds the engine to the model type T. Schema resolution failures are
// configuration errors and should be treated as fatal at wiring time.
func New[T any](db *gorm.DB) (*Repository[T], error) {
	var model T
	sch, err := schema.Parse(&model, schemaCache, db.NamingStrategy)
	if err != nil {
		return nil, fmt.Errorf("parse schema for %T: %w", model, err)
	}
	if sch.PrioritizedPrimaryField == nil {
		return nil, fmt.Errorf("model %s has no primary key", sch.Name)
	}

	writable, err := writableColumns(model, sch)
	if err != nil {
		return nil, err
	}

	r := &Repository[T]{db: db, sch: sch, writable: writable}
	r.deletedAt, r.soft = deletedAtColumn(sch)
	return r, nil
}

// HasSoftDelete reports whether the bound model carries a soft-delete column.
func (r *Repository[T]) HasSoftDelete() bool {
	return r.soft
}

func (r *Repository[T]) clone() *Repository[T] {
	c := *r
	c.filters = append([]map[string]any(nil), r.filters...)
	c.orders = append([]Order(nil), r.orders...)
	return &c
}

// Where returns a derived repository with an equality filter, AND-combined
// with any filters already pending.
func (r *Repository[T]) Where(filter map[string]any) *Repository[T] {
	c := r.clone()
	if len(filter) > 0 {
		c.filters = append(c.filters, filter)
	}
	return c
}

// OrderBy returns a derived repository with the given ordering clauses
// appended. An exact (column, direction) duplicate is skipped.
func (r *Repository[T]) OrderBy(orders ...Order) *Repository[T] {
	c := r.clone()
	for _, o := range orders {
		if !hasOrder(c.orders, o) {
			c.orders = append(c.orders, o)
		}
	}
	return c
}

func (r *Repository[T]) query(withs []string) *gorm.DB {
	tx := r.db.Model(new(T))
	for _, f := range r.filters {
		tx = tx.Where(f)
	}
	for _, w := range withs {
		tx = tx.Preload(w)
	}
	return tx
}

// applyOrders attaches pending ordering clauses. withDefault appends the
// primary-key-ascending default unless it is already present.
func (r *Repository[T]) applyOrders(tx *gorm.DB, withDefault bool) *gorm.DB {
	orders := r.orders
	if withDefault {
		def := Order{Column: r.pkColumn(), Direction: "asc"}
		if !hasOrder(orders, def) {
			orders = append(append([]Order(nil), orders...), def)
		}
	}
	for _, o := range orders {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: o.Column},
			Desc:   o.Direction == "desc",
		})
	}
	return tx
}

// Find fetches by primary key, eagerly loading the named relations. A missing
// row yields (nil, nil).
func (r *Repository[T]) Find(id uint, withs ...string) (*T, error) {
	var ent T
	err := r.query(withs).First(&ent, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ent, nil
}

// FindOrFail is Find with a missing row converted into ErrNotFound.
func (r *Repository[T]) FindOrFail(id uint, withs ...string) (*T, error) {
	ent, err := r.Find(id, withs...)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, ErrNotFound
	}
	return ent, nil
}

// FindBy fetches the first row matching the AND-combined equality filter,
// under the pending ordering. A missing row yields (nil, nil).
func (r *Repository[T]) FindBy(filter map[string]any, withs ...string) (*T, error) {
	scoped := r.Where(filter)
	var ent T
	err := scoped.applyOrders(scoped.query(withs), false).First(&ent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ent, nil
}

// FindByOrFail is FindBy with a missing row converted into ErrNotFound.
func (r *Repository[T]) FindByOrFail(filter map[string]any, withs ...string) (*T, error) {
	ent, err := r.FindBy(filter, withs...)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, ErrNotFound
	}
	return ent, nil
}

// All returns the full listing under the pending ordering plus the
// primary-key default.
func (r *Repository[T]) All(withs ...string) ([]T, error) {
	var ents []T
	if err := r.applyOrders(r.query(withs), true).Find(&ents).Error; err != nil {
		return nil, err
	}
	return ents, nil
}

// Paginate returns one page of the ordered listing plus pagination metadata.
// Out-of-range page and perPage values fall back to their defaults.
func (r *Repository[T]) Paginate(perPage, page int, columns ...string) (*Page[T], error) {
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.query(nil).Count(&total).Error; err != nil {
		return nil, err
	}

	tx := r.applyOrders(r.query(nil), true)
	if len(columns) > 0 {
		tx = tx.Select(columns)
	}

	var rows []T
	if err := tx.Offset((page - 1) * perPage).Limit(perPage).Find(&rows).Error; err != nil {
		return nil, err
	}
	return NewPage(rows, total, page, perPage), nil
}

// Sanitize drops every key not present in the model's writable-field set.
func (r *Repository[T]) Sanitize(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for col, val := range data {
		if _, ok := r.writable[col]; ok {
			out[col] = val
		}
	}
	return out
}

func (r *Repository[T]) assign(ent *T, data map[string]any) error {
	ctx := context.Background()
	rv := reflect.ValueOf(ent)
	for col, val := range data {
		field := r.sch.LookUpField(col)
		if field == nil {
			continue
		}
		if err := field.Set(ctx, rv, val); err != nil {
			return fmt.Errorf("assign %s.%s: %w", r.sch.Name, col, err)
		}
	}
	return nil
}

// Create sanitizes data to the writable-field set, persists a new row and
// returns it with the generated identifier and timestamps populated.
func (r *Repository[T]) Create(data map[string]any) (*T, error) {
	ent := new(T)
	if err := r.assign(ent, r.Sanitize(data)); err != nil {
		return nil, err
	}
	if err := r.db.Create(ent).Error; err != nil {
		return nil, err
	}
	return ent, nil
}

// BulkCreate sanitizes each record independently and persists the batch in a
// single insert. Generated identifiers are not reported back.
func (r *Repository[T]) BulkCreate(dataset []map[string]any) error {
	if len(dataset) == 0 {
		return nil
	}
	rows := make([]map[string]any, 0, len(dataset))
	for _, data := range dataset {
		rows = append(rows, r.Sanitize(data))
	}
	return r.db.Model(new(T)).Create(rows).Error
}

// Update resolves the target by primary key, applies the sanitized data and
// returns the refreshed row.
func (r *Repository[T]) Update(data map[string]any, id uint) (*T, error) {
	ent, err := r.FindOrFail(id)
	if err != nil {
		return nil, err
	}
	return r.UpdateModel(data, ent)
}

// UpdateModel is Update for an already-resolved entity.
func (r *Repository[T]) UpdateModel(data map[string]any, ent *T) (*T, error) {
	sanitized := r.Sanitize(data)
	if len(sanitized) > 0 {
		if err := r.db.Model(ent).Updates(sanitized).Error; err != nil {
			return nil, err
		}
	}
	return r.fresh(ent)
}

func (r *Repository[T]) fresh(ent *T) (*T, error) {
	pk, zero := r.primaryKey(ent)
	if zero {
		return nil, ErrNotFound
	}
	out := new(T)
	err := r.db.First(out, pk).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository[T]) primaryKey(ent *T) (any, bool) {
	return r.sch.PrioritizedPrimaryField.ValueOf(context.Background(), reflect.ValueOf(ent))
}

func (r *Repository[T]) pkColumn() string {
	return r.sch.PrioritizedPrimaryField.DBName
}

// Delete resolves the target and deletes it, softly when the model supports
// soft deletes, otherwise physically.
func (r *Repository[T]) Delete(id uint) error {
	ent, err := r.FindOrFail(id)
	if err != nil {
		return err
	}
	return r.DeleteModel(ent)
}

// DeleteModel is Delete for an already-resolved entity.
func (r *Repository[T]) DeleteModel(ent *T) error {
	return r.db.Delete(ent).Error
}

// DeleteMany deletes the given rows in a single batched statement, softly
// when the model supports soft deletes.
func (r *Repository[T]) DeleteMany(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(new(T), ids).Error
}

// ForceDelete physically removes the row regardless of soft-delete support.
func (r *Repository[T]) ForceDelete(id uint) error {
	res := r.db.Unscoped().Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ForceDeleteMany physically removes the given rows in one statement.
func (r *Repository[T]) ForceDeleteMany(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Unscoped().Delete(new(T), ids).Error
}

// Restore clears the soft-delete marker of a trashed row. A model without
// soft deletes yields ErrRestoreUnsupported; a row that is missing or not
// trashed yields ErrNotFound.
func (r *Repository[T]) Restore(id uint) error {
	if !r.soft {
		return ErrRestoreUnsupported
	}
	res := r.trashed().Where(r.pkColumn()+" = ?", id).Update(r.deletedAt, nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RestoreMany clears the soft-delete marker of the given trashed rows in one
// batched statement.
func (r *Repository[T]) RestoreMany(ids []uint) error {
	if !r.soft {
		return ErrRestoreUnsupported
	}
	if len(ids) == 0 {
		return nil
	}
	return r.trashed().Where(r.pkColumn()+" IN ?", ids).Update(r.deletedAt, nil).Error
}

func (r *Repository[T]) trashed() *gorm.DB {
	return r.db.Unscoped().Model(new(T)).Where(r.deletedAt + " IS NOT NULL")
}

func hasOrder(orders []Order, o Order) bool {
	for _, existing := range orders {
		if existing == o {
			return true
		}
	}
	return false
}
