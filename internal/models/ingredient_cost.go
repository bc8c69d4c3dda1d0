package models

// LocationIngredientCost overrides an ingredient's cost per unit at one location.
type LocationIngredientCost struct {
	Base
	LocationID   string  `gorm:"type:uuid;not null;uniqueIndex:idx_cost_location_ingredient" json:"location_id"`
	IngredientID string  `gorm:"type:uuid;not null;index;uniqueIndex:idx_cost_location_ingredient" json:"ingredient_id"`
	CostPerUnit  float64 `gorm:"not null" json:"cost_per_unit"`
}

func (LocationIngredientCost) TableName() string { return "location_ingredient_costs" }

type LocationIngredientCostInsert struct {
	ID           string  `json:"id,omitempty"`
	LocationID   string  `json:"location_id"`
	IngredientID string  `json:"ingredient_id"`
	CostPerUnit  float64 `json:"cost_per_unit"`
}

func (in LocationIngredientCostInsert) ToRow() LocationIngredientCost {
	return LocationIngredientCost{
		Base:         Base{ID: in.ID},
		LocationID:   in.LocationID,
		IngredientID: in.IngredientID,
		CostPerUnit:  in.CostPerUnit,
	}
}

type LocationIngredientCostUpdate struct {
	LocationID   *string  `json:"location_id"`
	IngredientID *string  `json:"ingredient_id"`
	CostPerUnit  *float64 `json:"cost_per_unit"`
}

func (u LocationIngredientCostUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setIf(changes, "location_id", u.LocationID)
	setIf(changes, "ingredient_id", u.IngredientID)
	setIf(changes, "cost_per_unit", u.CostPerUnit)
	return changes
}
