package models

// Modifier groups options a guest can pick for a menu item (size, milk, extras).
type Modifier struct {
	Base
	Name string `gorm:"size:100;not null;index" json:"name"`
}

func (Modifier) TableName() string { return "modifiers" }

type ModifierInsert struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

func (in ModifierInsert) ToRow() Modifier {
	return Modifier{Base: Base{ID: in.ID}, Name: in.Name}
}

type ModifierUpdate struct {
	Name *string `json:"name"`
}

func (u ModifierUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setIf(changes, "name", u.Name)
	return changes
}

type ModifierOption struct {
	Base
	ModifierID string  `gorm:"type:uuid;index;not null" json:"modifier_id"`
	Name       string  `gorm:"size:100;not null" json:"name"`
	Price      float64 `gorm:"not null" json:"price"`
}

func (ModifierOption) TableName() string { return "modifier_options" }

type ModifierOptionInsert struct {
	ID         string  `json:"id,omitempty"`
	ModifierID string  `json:"modifier_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
}

func (in ModifierOptionInsert) ToRow() ModifierOption {
	return ModifierOption{Base: Base{ID: in.ID}, ModifierID: in.ModifierID, Name: in.Name, Price: in.Price}
}

type ModifierOptionUpdate struct {
	ModifierID *string  `json:"modifier_id"`
	Name       *string  `json:"name"`
	Price      *float64 `json:"price"`
}

func (u ModifierOptionUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setIf(changes, "modifier_id", u.ModifierID)
	setIf(changes, "name", u.Name)
	setIf(changes, "price", u.Price)
	return changes
}
