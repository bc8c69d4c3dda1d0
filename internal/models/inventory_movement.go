package models

type MovementType string

const (
	MovementWaste       MovementType = "waste"
	MovementRestock     MovementType = "restock"
	MovementSale        MovementType = "sale"
	MovementAdjustment  MovementType = "adjustment"
	MovementTransferIn  MovementType = "transfer_in"
	MovementTransferOut MovementType = "transfer_out"
)

var movementTypes = []MovementType{
	MovementWaste,
	MovementRestock,
	MovementSale,
	MovementAdjustment,
	MovementTransferIn,
	MovementTransferOut,
}

// MovementTypes returns every known movement type.
func MovementTypes() []MovementType {
	out := make([]MovementType, len(movementTypes))
	copy(out, movementTypes)
	return out
}

func (t MovementType) Valid() bool {
	for _, k := range movementTypes {
		if k == t {
			return true
		}
	}
	return false
}

// InventoryMovement records one change to a location's ingredient stock.
// QuantityChange is signed: negative for waste, sales and outgoing transfers.
type InventoryMovement struct {
	Base
	LocationID     string       `gorm:"type:uuid;index;not null" json:"location_id"`
	IngredientID   string       `gorm:"type:uuid;index;not null" json:"ingredient_id"`
	QuantityChange float64      `gorm:"not null" json:"quantity_change"`
	Type           MovementType `gorm:"size:20;index;not null" json:"type"`
	CostAtTime     *float64     `json:"cost_at_time"`
	StaffID        *string      `gorm:"type:uuid;index" json:"staff_id"` // who recorded it
	Notes          *string      `gorm:"size:500" json:"notes"`
}

func (InventoryMovement) TableName() string { return "inventory_movements" }

type InventoryMovementInsert struct {
	ID             string       `json:"id,omitempty"`
	LocationID     string       `json:"location_id"`
	IngredientID   string       `json:"ingredient_id"`
	QuantityChange float64      `json:"quantity_change"`
	Type           MovementType `json:"type"`
	CostAtTime     *float64     `json:"cost_at_time"`
	StaffID        *string      `json:"staff_id"`
	Notes          *string      `json:"notes"`
}

func (in InventoryMovementInsert) ToRow() InventoryMovement {
	return InventoryMovement{
		Base:           Base{ID: in.ID},
		LocationID:     in.LocationID,
		IngredientID:   in.IngredientID,
		QuantityChange: in.QuantityChange,
		Type:           in.Type,
		CostAtTime:     in.CostAtTime,
		StaffID:        in.StaffID,
		Notes:          in.Notes,
	}
}

type InventoryMovementUpdate struct {
	LocationID     *string       `json:"location_id"`
	IngredientID   *string       `json:"ingredient_id"`
	QuantityChange *float64      `json:"quantity_change"`
	Type           *MovementType `json:"type"`
	CostAtTime     *float64      `json:"cost_at_time"`
	StaffID        *string       `json:"staff_id"`
	Notes          *string       `json:"notes"`
}

func (u InventoryMovementUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setIf(changes, "location_id", u.LocationID)
	setIf(changes, "ingredient_id", u.IngredientID)
	setIf(changes, "quantity_change", u.QuantityChange)
	setIf(changes, "type", u.Type)
	setIf(changes, "cost_at_time", u.CostAtTime)
	setIf(changes, "staff_id", u.StaffID)
	setIf(changes, "notes", u.Notes)
	return changes
}
