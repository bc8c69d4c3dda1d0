package models

// Ingredient is a raw material measured in Unit (kg, l, pcs).
type Ingredient struct {
	Base
	Name string   `gorm:"size:100;not null;index" json:"name"`
	Unit string   `gorm:"size:20;not null" json:"unit"`
	Cost *float64 `json:"cost"` // global cost per unit, locations may override
}

func (Ingredient) TableName() string { return "ingredients" }

type IngredientInsert struct {
	ID   string   `json:"id,omitempty"`
	Name string   `json:"name"`
	Unit string   `json:"unit"`
	Cost *float64 `json:"cost"`
}

func (in IngredientInsert) ToRow() Ingredient {
	return Ingredient{Base: Base{ID: in.ID}, Name: in.Name, Unit: in.Unit, Cost: in.Cost}
}

type IngredientUpdate struct {
	Name *string  `json:"name"`
	Unit *string  `json:"unit"`
	Cost *float64 `json:"cost"`
}

func (u IngredientUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setIf(changes, "name", u.Name)
	setIf(changes, "unit", u.Unit)
	setIf(changes, "cost", u.Cost)
	return changes
}
