package database

import (
	"fmt"
	"log"

	"venue-backoffice/internal/models"

	"gorm.io/gorm"
)

// Migration schemas. Each wraps a row type with belongs-to fields so that
// CREATE TABLE carries the foreign key clauses on every backend; SQLite
// cannot add them afterwards.

type staffTable struct {
	models.Staff
	Location *models.Location `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}

type recipeIngredientTable struct {
	models.RecipeIngredient
	Recipe     *models.Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Ingredient *models.Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
}

type modifierOptionTable struct {
	models.ModifierOption
	Modifier *models.Modifier `gorm:"foreignKey:ModifierID;constraint:OnDelete:CASCADE"`
}

type menuItemTable struct {
	models.LocationMenuItem
	Location *models.Location `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
	Recipe   *models.Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

type stockTable struct {
	models.InventoryStock
	Location   *models.Location   `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
	Ingredient *models.Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
}

type movementTable struct {
	models.InventoryMovement
	Location   *models.Location   `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
	Ingredient *models.Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
	RecordedBy *models.Staff      `gorm:"foreignKey:StaffID;constraint:OnDelete:SET NULL"`
}

type ingredientCostTable struct {
	models.LocationIngredientCost
	Location   *models.Location   `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
	Ingredient *models.Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
}

// tables lists every table in dependency order.
func tables() []any {
	return []any{
		&models.Location{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.Modifier{},
		&staffTable{},
		&recipeIngredientTable{},
		&modifierOptionTable{},
		&menuItemTable{},
		&stockTable{},
		&movementTable{},
		&ingredientCostTable{},
	}
}

// Migrate creates or updates every table the repositories use. On an
// existing table GORM adds any foreign key that is missing.
func Migrate(db *gorm.DB, lg *log.Logger) error {
	if err := db.AutoMigrate(tables()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	lg.Println("Migration completed.")
	return nil
}
