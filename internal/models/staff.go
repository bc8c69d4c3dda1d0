package models

import "time"

// Staff belongs to one location. Bank fields are optional and only filled for payroll.
type Staff struct {
	Base
	Name       string     `gorm:"size:100;not null" json:"name"`
	LocationID string     `gorm:"type:uuid;index;not null" json:"location_id"`
	Role       *string    `gorm:"size:50" json:"role"`
	DOB        *time.Time `gorm:"column:dob;type:date" json:"dob"`
	IBAN       *string    `gorm:"column:iban;size:34" json:"iban"`
	BIC        *string    `gorm:"column:bic;size:11" json:"bic"`
}

func (Staff) TableName() string { return "staff" }

type StaffInsert struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name"`
	LocationID string     `json:"location_id"`
	Role       *string    `json:"role"`
	DOB        *time.Time `json:"dob"`
	IBAN       *string    `json:"iban"`
	BIC        *string    `json:"bic"`
}

func (in StaffInsert) ToRow() Staff {
	return Staff{
		Base:       Base{ID: in.ID},
		Name:       in.Name,
		LocationID: in.LocationID,
		Role:       in.Role,
		DOB:        in.DOB,
		IBAN:       in.IBAN,
		BIC:        in.BIC,
	}
}

type StaffUpdate struct {
	Name       *string    `json:"name"`
	LocationID *string    `json:"location_id"`
	Role       *string    `json:"role"`
	DOB        *time.Time `json:"dob"`
	IBAN       *string    `json:"iban"`
	BIC        *string    `json:"bic"`
}

func (u StaffUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setIf(changes, "name", u.Name)
	setIf(changes, "location_id", u.LocationID)
	setIf(changes, "role", u.Role)
	setIf(changes, "dob", u.DOB)
	setIf(changes, "iban", u.IBAN)
	setIf(changes, "bic", u.BIC)
	return changes
}
