package repository

import (
	"context"

	"venue-backoffice/internal/models"

	"gorm.io/gorm"
)

var _ Repository[models.InventoryStock, models.InventoryStockInsert, models.InventoryStockUpdate] = (*InventoryStockRepo)(nil)

type InventoryStockRepo struct {
	*BaseModel[models.InventoryStock, models.InventoryStockInsert, models.InventoryStockUpdate]
}

func NewInventoryStockRepo(db *gorm.DB) *InventoryStockRepo {
	return &InventoryStockRepo{newBaseModel[models.InventoryStock, models.InventoryStockInsert, models.InventoryStockUpdate](db)}
}

func (r *InventoryStockRepo) FindByLocation(ctx context.Context, locationID string) ([]models.StockWithIngredient, error) {
	return findMany[models.StockWithIngredient](r.conn(ctx).
		Preload("Ingredient").
		Where(byColumn("location_id", locationID)))
}

func (r *InventoryStockRepo) FindByIngredient(ctx context.Context, ingredientID string) ([]models.StockWithLocation, error) {
	return findMany[models.StockWithLocation](r.conn(ctx).
		Preload("Location").
		Where(byColumn("ingredient_id", ingredientID)))
}

func (r *InventoryStockRepo) FindWithDetails(ctx context.Context, id string) (*models.StockDetails, error) {
	return findOne[models.StockDetails](r.detailed(ctx).Where(byID(id)))
}

// FindLowStock returns stock rows with quantity below threshold, lowest first.
func (r *InventoryStockRepo) FindLowStock(ctx context.Context, threshold float64) ([]models.StockDetails, error) {
	return findMany[models.StockDetails](r.detailed(ctx).
		Where("quantity < ?", threshold).
		Order("quantity ASC"))
}

// FindHighStock returns stock rows with quantity above threshold, highest first.
func (r *InventoryStockRepo) FindHighStock(ctx context.Context, threshold float64) ([]models.StockDetails, error) {
	return findMany[models.StockDetails](r.detailed(ctx).
		Where("quantity > ?", threshold).
		Order("quantity DESC"))
}

// FindStockWithMovements returns stock rows that had at least one movement of
// the same location and ingredient in the trailing days-day window, most
// recently moved first. Each row carries its in-window movements.
func (r *InventoryStockRepo) FindStockWithMovements(ctx context.Context, days int) ([]models.StockWithMovements, error) {
	since := windowStart(r.db, days)

	stock, err := findMany[models.StockWithMovements](r.conn(ctx).
		Preload("Ingredient").
		Joins("JOIN inventory_movements ON inventory_movements.location_id = inventory_stock.location_id"+
			" AND inventory_movements.ingredient_id = inventory_stock.ingredient_id").
		Where("inventory_movements.created_at >= ?", since).
		Group("inventory_stock.id").
		Order("MAX(inventory_movements.created_at) DESC"))
	if err != nil || len(stock) == 0 {
		return stock, err
	}

	locationIDs := make([]string, 0, len(stock))
	ingredientIDs := make([]string, 0, len(stock))
	for _, s := range stock {
		locationIDs = append(locationIDs, s.LocationID)
		ingredientIDs = append(ingredientIDs, s.IngredientID)
	}

	movements, err := findMany[models.InventoryMovement](r.conn(ctx).
		Where("location_id IN ? AND ingredient_id IN ? AND created_at >= ?", locationIDs, ingredientIDs, since).
		Order("created_at DESC"))
	if err != nil {
		return nil, err
	}

	byPair := make(map[[2]string][]models.InventoryMovement, len(stock))
	for _, m := range movements {
		key := [2]string{m.LocationID, m.IngredientID}
		byPair[key] = append(byPair[key], m)
	}
	for i := range stock {
		ms := byPair[[2]string{stock[i].LocationID, stock[i].IngredientID}]
		if ms == nil {
			ms = []models.InventoryMovement{}
		}
		stock[i].Movements = ms
	}
	return stock, nil
}

// FindStockWithCosts returns stock rows whose location-specific ingredient
// cost is below maxCost, cheapest first.
func (r *InventoryStockRepo) FindStockWithCosts(ctx context.Context, maxCost float64) ([]models.StockWithCost, error) {
	return findMany[models.StockWithCost](r.conn(ctx).
		Select("inventory_stock.*, location_ingredient_costs.cost_per_unit").
		Joins("JOIN location_ingredient_costs ON location_ingredient_costs.location_id = inventory_stock.location_id"+
			" AND location_ingredient_costs.ingredient_id = inventory_stock.ingredient_id").
		Where("location_ingredient_costs.cost_per_unit < ?", maxCost).
		Order("location_ingredient_costs.cost_per_unit ASC").
		Preload("Ingredient"))
}

// UpdateStock adds delta to the row's quantity in a single UPDATE evaluated
// by the database, so concurrent adjustments of the same row all apply.
// Callers must not read-modify-write quantity through Update.
func (r *InventoryStockRepo) UpdateStock(ctx context.Context, id string, delta float64) (*models.InventoryStock, error) {
	res := r.conn(ctx).
		Model(&models.InventoryStock{}).
		Where(byID(id)).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.mustFind(ctx, id)
}

func (r *InventoryStockRepo) detailed(ctx context.Context) *gorm.DB {
	return r.conn(ctx).
		Preload("Location").
		Preload("Ingredient")
}
