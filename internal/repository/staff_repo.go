package repository

import (
	"context"

	"venue-backoffice/internal/models"

	"gorm.io/gorm"
)

var _ Repository[models.Staff, models.StaffInsert, models.StaffUpdate] = (*StaffRepo)(nil)

type StaffRepo struct {
	*BaseModel[models.Staff, models.StaffInsert, models.StaffUpdate]
}

func NewStaffRepo(db *gorm.DB) *StaffRepo {
	return &StaffRepo{newBaseModel[models.Staff, models.StaffInsert, models.StaffUpdate](db)}
}

func (r *StaffRepo) FindByLocation(ctx context.Context, locationID string) ([]models.StaffWithLocation, error) {
	return findMany[models.StaffWithLocation](r.conn(ctx).
		Preload("Location").
		Where(byColumn("location_id", locationID)).
		Order("name ASC"))
}

// FindWithDetails loads the staff member's location and the movements they recorded.
func (r *StaffRepo) FindWithDetails(ctx context.Context, id string) (*models.StaffDetails, error) {
	return findOne[models.StaffDetails](r.conn(ctx).
		Preload("Location").
		Preload("RecordedMovements", orderBy("created_at DESC")).
		Where(byID(id)))
}
