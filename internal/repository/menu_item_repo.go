package repository

import (
	"context"

	"venue-backoffice/internal/models"

	"gorm.io/gorm"
)

var _ Repository[models.LocationMenuItem, models.LocationMenuItemInsert, models.LocationMenuItemUpdate] = (*LocationMenuItemRepo)(nil)

type LocationMenuItemRepo struct {
	*BaseModel[models.LocationMenuItem, models.LocationMenuItemInsert, models.LocationMenuItemUpdate]
	modifiers *ModifierRepo
}

func NewLocationMenuItemRepo(db *gorm.DB) *LocationMenuItemRepo {
	return &LocationMenuItemRepo{
		BaseModel: newBaseModel[models.LocationMenuItem, models.LocationMenuItemInsert, models.LocationMenuItemUpdate](db),
		modifiers: NewModifierRepo(db),
	}
}

func (r *LocationMenuItemRepo) FindByLocation(ctx context.Context, locationID string) ([]models.MenuItemWithRecipe, error) {
	return findMany[models.MenuItemWithRecipe](r.conn(ctx).
		Preload("Recipe").
		Where(byColumn("location_id", locationID)))
}

func (r *LocationMenuItemRepo) FindByRecipe(ctx context.Context, recipeID string) ([]models.MenuItemWithLocation, error) {
	return findMany[models.MenuItemWithLocation](r.conn(ctx).
		Preload("Location").
		Where(byColumn("recipe_id", recipeID)))
}

// FindWithDetails loads location and recipe and resolves the enabled
// modifier ids to modifiers with their options.
func (r *LocationMenuItemRepo) FindWithDetails(ctx context.Context, id string) (*models.MenuItemDetails, error) {
	item, err := findOne[models.MenuItemDetails](r.conn(ctx).
		Preload("Location").
		Preload("Recipe").
		Where(byID(id)))
	if err != nil || item == nil {
		return nil, err
	}

	item.EnabledModifiers, err = r.modifiers.findWithOptionsByIDs(ctx, item.Modifiers)
	if err != nil {
		return nil, err
	}
	return item, nil
}
