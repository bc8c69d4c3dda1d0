package models

// InventoryStock is the on-hand quantity of one ingredient at one location.
type InventoryStock struct {
	Base
	LocationID   string  `gorm:"type:uuid;not null;uniqueIndex:idx_stock_location_ingredient" json:"location_id"`
	IngredientID string  `gorm:"type:uuid;not null;index;uniqueIndex:idx_stock_location_ingredient" json:"ingredient_id"`
	Quantity     float64 `gorm:"not null" json:"quantity"`
}

func (InventoryStock) TableName() string { return "inventory_stock" }

type InventoryStockInsert struct {
	ID           string  `json:"id,omitempty"`
	LocationID   string  `json:"location_id"`
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

func (in InventoryStockInsert) ToRow() InventoryStock {
	return InventoryStock{
		Base:         Base{ID: in.ID},
		LocationID:   in.LocationID,
		IngredientID: in.IngredientID,
		Quantity:     in.Quantity,
	}
}

type InventoryStockUpdate struct {
	LocationID   *string  `json:"location_id"`
	IngredientID *string  `json:"ingredient_id"`
	Quantity     *float64 `json:"quantity"`
}

func (u InventoryStockUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setIf(changes, "location_id", u.LocationID)
	setIf(changes, "ingredient_id", u.IngredientID)
	setIf(changes, "quantity", u.Quantity)
	return changes
}
