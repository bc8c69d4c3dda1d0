package repository

import (
	"context"

	"venue-backoffice/internal/models"

	"gorm.io/gorm"
)

var _ Repository[models.Location, models.LocationInsert, models.LocationUpdate] = (*LocationRepo)(nil)

type LocationRepo struct {
	*BaseModel[models.Location, models.LocationInsert, models.LocationUpdate]
}

func NewLocationRepo(db *gorm.DB) *LocationRepo {
	return &LocationRepo{newBaseModel[models.Location, models.LocationInsert, models.LocationUpdate](db)}
}

func (r *LocationRepo) FindByName(ctx context.Context, name string) (*models.Location, error) {
	return r.findUnique(ctx, "name", name)
}

// FindWithDetails loads the location with every relation it owns.
func (r *LocationRepo) FindWithDetails(ctx context.Context, id string) (*models.LocationDetails, error) {
	return findOne[models.LocationDetails](r.conn(ctx).
		Preload("Staff", orderBy("name ASC")).
		Preload("MenuItems").
		Preload("Stock").
		Preload("IngredientCosts").
		Preload("InventoryMovements", orderBy("created_at DESC")).
		Where(byID(id)))
}

// FindWithInventory loads stock and location costs, each with its ingredient.
func (r *LocationRepo) FindWithInventory(ctx context.Context, id string) (*models.LocationWithInventory, error) {
	return findOne[models.LocationWithInventory](r.conn(ctx).
		Preload("Inventory").
		Preload("Inventory.Ingredient").
		Preload("IngredientCosts").
		Preload("IngredientCosts.Ingredient").
		Where(byID(id)))
}

// FindWithLowStock loads the location with only the stock rows below
// threshold, lowest quantity first.
func (r *LocationRepo) FindWithLowStock(ctx context.Context, id string, threshold float64) (*models.LocationWithLowStock, error) {
	return findOne[models.LocationWithLowStock](r.conn(ctx).
		Preload("LowStock", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("quantity < ?", threshold).Order("quantity ASC")
		}).
		Preload("LowStock.Ingredient").
		Where(byID(id)))
}

func (r *LocationRepo) FindWithStaff(ctx context.Context, id string) (*models.LocationWithStaff, error) {
	return findOne[models.LocationWithStaff](r.conn(ctx).
		Preload("Staff", orderBy("name ASC")).
		Where(byID(id)))
}

func (r *LocationRepo) FindWithMenuItems(ctx context.Context, id string) (*models.LocationWithMenuItems, error) {
	return findOne[models.LocationWithMenuItems](r.conn(ctx).
		Preload("MenuItems").
		Preload("MenuItems.Recipe").
		Where(byID(id)))
}

// orderBy is a preload condition that only sorts.
func orderBy(order string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB { return tx.Order(order) }
}
