package models

// Composed result types returned by relationship-aware finders. Each embeds
// its row and names the related rows it carries; a relation with no rows is
// an empty slice, an optional belongs-to with no target is nil.

type LocationDetails struct {
	Location
	Staff              []Staff                  `gorm:"foreignKey:LocationID" json:"staff"`
	MenuItems          []LocationMenuItem       `gorm:"foreignKey:LocationID" json:"menu_items"`
	Stock              []InventoryStock         `gorm:"foreignKey:LocationID" json:"inventory_stock"`
	IngredientCosts    []LocationIngredientCost `gorm:"foreignKey:LocationID" json:"ingredient_costs"`
	InventoryMovements []InventoryMovement      `gorm:"foreignKey:LocationID" json:"inventory_movements"`
}

type LocationWithInventory struct {
	Location
	Inventory       []StockWithIngredient `gorm:"foreignKey:LocationID" json:"inventory"`
	IngredientCosts []CostWithIngredient  `gorm:"foreignKey:LocationID" json:"ingredient_costs"`
}

type LocationWithLowStock struct {
	Location
	LowStock []StockWithIngredient `gorm:"foreignKey:LocationID" json:"low_stock"`
}

type LocationWithStaff struct {
	Location
	Staff []Staff `gorm:"foreignKey:LocationID" json:"staff"`
}

type LocationWithMenuItems struct {
	Location
	MenuItems []MenuItemWithRecipe `gorm:"foreignKey:LocationID" json:"menu_items"`
}

type IngredientWithRecipes struct {
	Ingredient
	Recipes []Recipe `gorm:"-" json:"recipes"`
}

type IngredientWithStock struct {
	Ingredient
	Stock []StockWithLocation `gorm:"foreignKey:IngredientID" json:"inventory_stock"`
}

type IngredientDetails struct {
	Ingredient
	RecipeLinks   []RecipeIngredientWithRecipe `gorm:"foreignKey:IngredientID" json:"recipe_ingredients"`
	Stock         []StockWithLocation          `gorm:"foreignKey:IngredientID" json:"inventory_stock"`
	LocationCosts []CostWithLocation           `gorm:"foreignKey:IngredientID" json:"location_costs"`
}

type RecipeIngredientWithIngredient struct {
	RecipeIngredient
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
}

type RecipeIngredientWithRecipe struct {
	RecipeIngredient
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe"`
}

type RecipeWithIngredients struct {
	Recipe
	Ingredients []RecipeIngredientWithIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
}

type RecipeDetails struct {
	Recipe
	Ingredients []RecipeIngredientWithIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
	MenuItems   []MenuItemWithLocation           `gorm:"foreignKey:RecipeID" json:"menu_items"`
}

type StaffWithLocation struct {
	Staff
	Location *Location `gorm:"foreignKey:LocationID" json:"location"`
}

type StaffDetails struct {
	Staff
	Location          *Location           `gorm:"foreignKey:LocationID" json:"location"`
	RecordedMovements []InventoryMovement `gorm:"foreignKey:StaffID" json:"recorded_movements"`
}

type ModifierWithOptions struct {
	Modifier
	Options []ModifierOption `gorm:"foreignKey:ModifierID" json:"options"`
}

type ModifierOptionWithModifier struct {
	ModifierOption
	Modifier *Modifier `gorm:"foreignKey:ModifierID" json:"modifier"`
}

type MenuItemWithRecipe struct {
	LocationMenuItem
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe"`
}

type MenuItemWithLocation struct {
	LocationMenuItem
	Location *Location `gorm:"foreignKey:LocationID" json:"location"`
}

type MenuItemDetails struct {
	LocationMenuItem
	Location         *Location             `gorm:"foreignKey:LocationID" json:"location"`
	Recipe           *Recipe               `gorm:"foreignKey:RecipeID" json:"recipe"`
	EnabledModifiers []ModifierWithOptions `gorm:"-" json:"enabled_modifiers"`
}

type StockWithIngredient struct {
	InventoryStock
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
}

type StockWithLocation struct {
	InventoryStock
	Location *Location `gorm:"foreignKey:LocationID" json:"location"`
}

type StockDetails struct {
	InventoryStock
	Location   *Location   `gorm:"foreignKey:LocationID" json:"location"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
}

// StockWithMovements carries the movements of the same location and
// ingredient that fall inside the queried window, newest first.
type StockWithMovements struct {
	InventoryStock
	Ingredient *Ingredient         `gorm:"foreignKey:IngredientID" json:"ingredient"`
	Movements  []InventoryMovement `gorm:"-" json:"movements"`
}

// StockWithCost carries the location-specific cost joined onto the stock row.
type StockWithCost struct {
	InventoryStock
	CostPerUnit float64     `gorm:"->;column:cost_per_unit" json:"cost_per_unit"`
	Ingredient  *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
}

type MovementWithIngredient struct {
	InventoryMovement
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
	RecordedBy *Staff      `gorm:"foreignKey:StaffID" json:"recorded_by"`
}

type MovementWithLocation struct {
	InventoryMovement
	Location   *Location `gorm:"foreignKey:LocationID" json:"location"`
	RecordedBy *Staff    `gorm:"foreignKey:StaffID" json:"recorded_by"`
}

type MovementDetails struct {
	InventoryMovement
	Location   *Location   `gorm:"foreignKey:LocationID" json:"location"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
	RecordedBy *Staff      `gorm:"foreignKey:StaffID" json:"recorded_by"`
}

type CostWithIngredient struct {
	LocationIngredientCost
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
}

type CostWithLocation struct {
	LocationIngredientCost
	Location *Location `gorm:"foreignKey:LocationID" json:"location"`
}

type CostDetails struct {
	LocationIngredientCost
	Location   *Location   `gorm:"foreignKey:LocationID" json:"location"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
}
