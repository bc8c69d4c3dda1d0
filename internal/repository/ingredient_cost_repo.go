package repository

import (
	"context"

	"venue-backoffice/internal/models"

	"gorm.io/gorm"
)

var _ Repository[models.LocationIngredientCost, models.LocationIngredientCostInsert, models.LocationIngredientCostUpdate] = (*LocationIngredientCostRepo)(nil)

type LocationIngredientCostRepo struct {
	*BaseModel[models.LocationIngredientCost, models.LocationIngredientCostInsert, models.LocationIngredientCostUpdate]
}

func NewLocationIngredientCostRepo(db *gorm.DB) *LocationIngredientCostRepo {
	return &LocationIngredientCostRepo{newBaseModel[models.LocationIngredientCost, models.LocationIngredientCostInsert, models.LocationIngredientCostUpdate](db)}
}

func (r *LocationIngredientCostRepo) FindByLocation(ctx context.Context, locationID string) ([]models.CostWithIngredient, error) {
	return findMany[models.CostWithIngredient](r.conn(ctx).
		Preload("Ingredient").
		Where(byColumn("location_id", locationID)).
		Order("cost_per_unit ASC"))
}

func (r *LocationIngredientCostRepo) FindByIngredient(ctx context.Context, ingredientID string) ([]models.CostWithLocation, error) {
	return findMany[models.CostWithLocation](r.conn(ctx).
		Preload("Location").
		Where(byColumn("ingredient_id", ingredientID)).
		Order("cost_per_unit ASC"))
}

func (r *LocationIngredientCostRepo) FindWithDetails(ctx context.Context, id string) (*models.CostDetails, error) {
	return findOne[models.CostDetails](r.conn(ctx).
		Preload("Location").
		Preload("Ingredient").
		Where(byID(id)))
}
