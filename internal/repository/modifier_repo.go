package repository

import (
	"context"

	"venue-backoffice/internal/models"

	"gorm.io/gorm"
)

var _ Repository[models.Modifier, models.ModifierInsert, models.ModifierUpdate] = (*ModifierRepo)(nil)

var _ Repository[models.ModifierOption, models.ModifierOptionInsert, models.ModifierOptionUpdate] = (*ModifierOptionRepo)(nil)

type ModifierRepo struct {
	*BaseModel[models.Modifier, models.ModifierInsert, models.ModifierUpdate]
}

func NewModifierRepo(db *gorm.DB) *ModifierRepo {
	return &ModifierRepo{newBaseModel[models.Modifier, models.ModifierInsert, models.ModifierUpdate](db)}
}

func (r *ModifierRepo) FindByName(ctx context.Context, name string) (*models.Modifier, error) {
	return r.findUnique(ctx, "name", name)
}

func (r *ModifierRepo) FindWithOptions(ctx context.Context, id string) (*models.ModifierWithOptions, error) {
	return findOne[models.ModifierWithOptions](r.conn(ctx).
		Preload("Options", orderBy("price ASC")).
		Where(byID(id)))
}

func (r *ModifierRepo) FindAllWithOptions(ctx context.Context) ([]models.ModifierWithOptions, error) {
	return findMany[models.ModifierWithOptions](r.conn(ctx).
		Preload("Options", orderBy("price ASC")).
		Order("name ASC"))
}

// findWithOptionsByIDs resolves a list of modifier ids; unknown ids are skipped.
func (r *ModifierRepo) findWithOptionsByIDs(ctx context.Context, ids []string) ([]models.ModifierWithOptions, error) {
	if len(ids) == 0 {
		return []models.ModifierWithOptions{}, nil
	}
	return findMany[models.ModifierWithOptions](r.conn(ctx).
		Preload("Options", orderBy("price ASC")).
		Where("id IN ?", ids).
		Order("name ASC"))
}

type ModifierOptionRepo struct {
	*BaseModel[models.ModifierOption, models.ModifierOptionInsert, models.ModifierOptionUpdate]
}

func NewModifierOptionRepo(db *gorm.DB) *ModifierOptionRepo {
	return &ModifierOptionRepo{newBaseModel[models.ModifierOption, models.ModifierOptionInsert, models.ModifierOptionUpdate](db)}
}

func (r *ModifierOptionRepo) FindByModifier(ctx context.Context, modifierID string) ([]models.ModifierOption, error) {
	return findMany[models.ModifierOption](r.conn(ctx).
		Where(byColumn("modifier_id", modifierID)).
		Order("price ASC"))
}

func (r *ModifierOptionRepo) FindWithDetails(ctx context.Context, id string) (*models.ModifierOptionWithModifier, error) {
	return findOne[models.ModifierOptionWithModifier](r.conn(ctx).
		Preload("Modifier").
		Where(byID(id)))
}
