package models

type Recipe struct {
	Base
	Name        string  `gorm:"size:100;not null;index" json:"name"`
	Description *string `gorm:"size:1000" json:"description"`
}

func (Recipe) TableName() string { return "recipes" }

type RecipeInsert struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (in RecipeInsert) ToRow() Recipe {
	return Recipe{Base: Base{ID: in.ID}, Name: in.Name, Description: in.Description}
}

type RecipeUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (u RecipeUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setIf(changes, "name", u.Name)
	setIf(changes, "description", u.Description)
	return changes
}

// RecipeIngredient links a recipe to one ingredient and the quantity it uses.
type RecipeIngredient struct {
	Base
	RecipeID     string  `gorm:"type:uuid;index;not null" json:"recipe_id"`
	IngredientID string  `gorm:"type:uuid;index;not null" json:"ingredient_id"`
	Quantity     float64 `gorm:"not null" json:"quantity"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

type RecipeIngredientInsert struct {
	ID           string  `json:"id,omitempty"`
	RecipeID     string  `json:"recipe_id"`
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

func (in RecipeIngredientInsert) ToRow() RecipeIngredient {
	return RecipeIngredient{
		Base:         Base{ID: in.ID},
		RecipeID:     in.RecipeID,
		IngredientID: in.IngredientID,
		Quantity:     in.Quantity,
	}
}

type RecipeIngredientUpdate struct {
	RecipeID     *string  `json:"recipe_id"`
	IngredientID *string  `json:"ingredient_id"`
	Quantity     *float64 `json:"quantity"`
}

func (u RecipeIngredientUpdate) Changes() map[string]any {
	changes := map[string]any{}
	setIf(changes, "recipe_id", u.RecipeID)
	setIf(changes, "ingredient_id", u.IngredientID)
	setIf(changes, "quantity", u.Quantity)
	return changes
}
