package repository

import (
	"context"
	"time"

	"venue-backoffice/internal/models"

	"gorm.io/gorm"
)

var _ Repository[models.InventoryMovement, models.InventoryMovementInsert, models.InventoryMovementUpdate] = (*InventoryMovementRepo)(nil)

type InventoryMovementRepo struct {
	*BaseModel[models.InventoryMovement, models.InventoryMovementInsert, models.InventoryMovementUpdate]
}

func NewInventoryMovementRepo(db *gorm.DB) *InventoryMovementRepo {
	return &InventoryMovementRepo{newBaseModel[models.InventoryMovement, models.InventoryMovementInsert, models.InventoryMovementUpdate](db)}
}

// FindByLocation returns the location's movements, newest first, with the
// ingredient and the staff member who recorded each one.
func (r *InventoryMovementRepo) FindByLocation(ctx context.Context, locationID string) ([]models.MovementWithIngredient, error) {
	return findMany[models.MovementWithIngredient](r.conn(ctx).
		Preload("Ingredient").
		Preload("RecordedBy").
		Where(byColumn("location_id", locationID)).
		Order("created_at DESC"))
}

func (r *InventoryMovementRepo) FindByIngredient(ctx context.Context, ingredientID string) ([]models.MovementWithLocation, error) {
	return findMany[models.MovementWithLocation](r.conn(ctx).
		Preload("Location").
		Preload("RecordedBy").
		Where(byColumn("ingredient_id", ingredientID)).
		Order("created_at DESC"))
}

func (r *InventoryMovementRepo) FindByStaff(ctx context.Context, staffID string) ([]models.MovementDetails, error) {
	return findMany[models.MovementDetails](r.detailed(ctx).
		Where(byColumn("staff_id", staffID)).
		Order("created_at DESC"))
}

func (r *InventoryMovementRepo) FindByType(ctx context.Context, kind models.MovementType) ([]models.MovementDetails, error) {
	return findMany[models.MovementDetails](r.detailed(ctx).
		Where(byColumn("type", kind)).
		Order("created_at DESC"))
}

// FindSince returns movements recorded in the trailing days-day window.
func (r *InventoryMovementRepo) FindSince(ctx context.Context, days int) ([]models.MovementDetails, error) {
	return findMany[models.MovementDetails](r.detailed(ctx).
		Where("created_at >= ?", windowStart(r.db, days)).
		Order("created_at DESC"))
}

func (r *InventoryMovementRepo) FindWithDetails(ctx context.Context, id string) (*models.MovementDetails, error) {
	return findOne[models.MovementDetails](r.detailed(ctx).Where(byID(id)))
}

func (r *InventoryMovementRepo) detailed(ctx context.Context) *gorm.DB {
	return r.conn(ctx).
		Preload("Location").
		Preload("Ingredient").
		Preload("RecordedBy")
}

// windowStart is the lower bound of a trailing window of days, on the
// handle's clock.
func windowStart(db *gorm.DB, days int) time.Time {
	return db.NowFunc().AddDate(0, 0, -days)
}
