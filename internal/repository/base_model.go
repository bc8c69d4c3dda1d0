// Package repository is the data-access layer: one generic CRUD base and one
// repository per table with finders that follow its foreign keys.
//
// Every method issues its queries through the shared *gorm.DB handle with the
// caller's context and returns backend errors unchanged. Nothing here caches,
// retries, logs or opens transactions.
package repository

import (
	"context"
	"errors"

	"venue-backoffice/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotUnique is returned by name lookups that match more than one row.
var ErrNotUnique = errors.New("repository: more than one row matched")

// Repository is the CRUD contract every entity repository satisfies.
type Repository[R models.Record, I models.Insertable[R], U models.Patch] interface {
	FindByID(ctx context.Context, id string) (*R, error)
	FindAll(ctx context.Context) ([]R, error)
	Create(ctx context.Context, values I) (*R, error)
	Update(ctx context.Context, id string, patch U) (*R, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// BaseModel implements CRUD for the table of R.
type BaseModel[R models.Record, I models.Insertable[R], U models.Patch] struct {
	db *gorm.DB
}

func newBaseModel[R models.Record, I models.Insertable[R], U models.Patch](db *gorm.DB) *BaseModel[R, I, U] {
	return &BaseModel[R, I, U]{db: db}
}

// Table returns the table R is bound to.
func (m *BaseModel[R, I, U]) Table() string {
	var r R
	return r.TableName()
}

func (m *BaseModel[R, I, U]) conn(ctx context.Context) *gorm.DB {
	return m.db.WithContext(ctx)
}

// FindByID returns nil and no error when the row does not exist.
func (m *BaseModel[R, I, U]) FindByID(ctx context.Context, id string) (*R, error) {
	return findOne[R](m.conn(ctx).Where(byID(id)))
}

func (m *BaseModel[R, I, U]) FindAll(ctx context.Context) ([]R, error) {
	rows := []R{}
	if err := m.conn(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (m *BaseModel[R, I, U]) Create(ctx context.Context, values I) (*R, error) {
	row := values.ToRow()
	if err := m.conn(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update writes only the columns present in patch and refreshes updated_at.
// It returns gorm.ErrRecordNotFound when no row has the id.
func (m *BaseModel[R, I, U]) Update(ctx context.Context, id string, patch U) (*R, error) {
	res := m.conn(ctx).Model(new(R)).Where(byID(id)).Updates(patch.Changes())
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return m.mustFind(ctx, id)
}

// Delete does not report whether a row was removed.
func (m *BaseModel[R, I, U]) Delete(ctx context.Context, id string) error {
	return m.conn(ctx).Where(byID(id)).Delete(new(R)).Error
}

func (m *BaseModel[R, I, U]) Exists(ctx context.Context, id string) (bool, error) {
	var n int64
	if err := m.conn(ctx).Model(new(R)).Where(byID(id)).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (m *BaseModel[R, I, U]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := m.conn(ctx).Model(new(R)).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// mustFind re-reads a row that has to exist.
func (m *BaseModel[R, I, U]) mustFind(ctx context.Context, id string) (*R, error) {
	row, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

// findUnique fetches the single row whose column equals value. Zero matches
// is gorm.ErrRecordNotFound, more than one is ErrNotUnique.
func (m *BaseModel[R, I, U]) findUnique(ctx context.Context, column string, value any) (*R, error) {
	var rows []R
	err := m.conn(ctx).
		Where(byColumn(column, value)).
		Limit(2).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	switch len(rows) {
	case 0:
		return nil, gorm.ErrRecordNotFound
	case 1:
		return &rows[0], nil
	default:
		return nil, ErrNotUnique
	}
}

// findOne runs tx for at most one row of T; no row is nil, nil.
func findOne[T any](tx *gorm.DB) (*T, error) {
	var rows []T
	if err := tx.Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// findMany runs tx and never returns a nil slice on success.
func findMany[T any](tx *gorm.DB) ([]T, error) {
	rows := []T{}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func byID(id string) clause.Expression {
	return clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Value: id}
}

func byColumn(column string, value any) clause.Expression {
	return clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: column}, Value: value}
}
