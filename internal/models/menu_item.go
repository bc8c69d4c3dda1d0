package models

// LocationMenuItem puts a recipe on a location's menu at a location-specific price.
type LocationMenuItem struct {
	Base
	LocationID string  `gorm:"type:uuid;index;not null" json:"location_id"`
	RecipeID   string  `gorm:"type:uuid;index;not null" json:"recipe_id"`
	Price      float64 `gorm:"not null" json:"price"`
	Modifiers  IDList  `json:"modifiers"` // enabled modifier ids
}

func (LocationMenuItem) TableName() string { return "location_menu_items" }

type LocationMenuItemInsert struct {
	ID         string  `json:"id,omitempty"`
	LocationID string  `json:"location_id"`
	RecipeID   string  `json:"recipe_id"`
	Price      float64 `json:"price"`
	Modifiers  IDList  `json:"modifiers"`
}

func (in LocationMenuItemInsert) ToRow() LocationMenuItem {
	return LocationMenuItem{
		Base:       Base{ID: in.ID},
		LocationID: in.LocationID,
		RecipeID:   in.RecipeID,
		Price:      in.Price,
		Modifiers:  in.Modifiers,
	}
}

type LocationMenuItemUpdate struct {
	LocationID *string  `json:"location_id"`
	RecipeID   *string  `json:"recipe_id"`
	Price      *float64 `json:"price"`
	Modifiers  *IDList  `json:"modifiers"`
}

func (u LocationMenuItemUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setIf(changes, "location_id", u.LocationID)
	setIf(changes, "recipe_id", u.RecipeID)
	setIf(changes, "price", u.Price)
	setIf(changes, "modifiers", u.Modifiers)
	return changes
}
