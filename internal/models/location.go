package models

// Location is a venue (restaurant, bar, kitchen) with its own staff, stock and menu.
type Location struct {
	Base
	Name    string `gorm:"size:100;not null;index" json:"name"`
	Address string `gorm:"size:255;not null" json:"address"`
}

func (Location) TableName() string { return "locations" }

type LocationInsert struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (in LocationInsert) ToRow() Location {
	return Location{Base: Base{ID: in.ID}, Name: in.Name, Address: in.Address}
}

type LocationUpdate struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func (u LocationUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setIf(changes, "name", u.Name)
	setIf(changes, "address", u.Address)
	return changes
}
