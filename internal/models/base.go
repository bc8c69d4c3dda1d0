package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record is a persisted row bound to exactly one table.
type Record interface {
	TableName() string
	GetID() string
}

// Insertable is the create shape of a table. ToRow fills the row that gets
// inserted; generated fields (id, timestamps) stay zero.
type Insertable[R Record] interface {
	ToRow() R
}

// Patch is the update shape of a table. Changes returns only the columns the
// caller supplied, keyed by column name.
type Patch interface {
	Changes() map[string]any
}

// Base carries the columns every table has.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (b Base) GetID() string { return b.ID }

// BeforeCreate assigns a UUID when the caller did not bring one.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// setIf copies *v into changes under column. A nil v leaves the column
// out, so the update does not touch it.
func setIf[T any](changes map[string]any, column string, v *T) {
	if v != nil {
		changes[column] = *v
	}
}
