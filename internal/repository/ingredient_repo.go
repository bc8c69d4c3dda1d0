package repository

import (
	"context"

	"venue-backoffice/internal/models"

	"gorm.io/gorm"
)

var _ Repository[models.Ingredient, models.IngredientInsert, models.IngredientUpdate] = (*IngredientRepo)(nil)

type IngredientRepo struct {
	*BaseModel[models.Ingredient, models.IngredientInsert, models.IngredientUpdate]
}

func NewIngredientRepo(db *gorm.DB) *IngredientRepo {
	return &IngredientRepo{newBaseModel[models.Ingredient, models.IngredientInsert, models.IngredientUpdate](db)}
}

func (r *IngredientRepo) FindByName(ctx context.Context, name string) (*models.Ingredient, error) {
	return r.findUnique(ctx, "name", name)
}

// FindWithRecipes resolves the recipes that use the ingredient through
// recipe_ingredients. A recipe listing the ingredient twice appears once.
func (r *IngredientRepo) FindWithRecipes(ctx context.Context, id string) (*models.IngredientWithRecipes, error) {
	ingredient, err := r.FindByID(ctx, id)
	if err != nil || ingredient == nil {
		return nil, err
	}

	recipes, err := findMany[models.Recipe](r.conn(ctx).
		Where("recipes.id IN (?)", r.conn(ctx).
			Model(&models.RecipeIngredient{}).
			Select("recipe_id").
			Where("ingredient_id = ?", id)).
		Order("recipes.name ASC"))
	if err != nil {
		return nil, err
	}
	return &models.IngredientWithRecipes{Ingredient: *ingredient, Recipes: recipes}, nil
}

// FindWithDetails loads recipe links with their recipe, stock per location and
// location-specific costs.
func (r *IngredientRepo) FindWithDetails(ctx context.Context, id string) (*models.IngredientDetails, error) {
	return findOne[models.IngredientDetails](r.conn(ctx).
		Preload("RecipeLinks").
		Preload("RecipeLinks.Recipe").
		Preload("Stock").
		Preload("Stock.Location").
		Preload("LocationCosts").
		Preload("LocationCosts.Location").
		Where(byID(id)))
}

func (r *IngredientRepo) FindWithStock(ctx context.Context, id string) (*models.IngredientWithStock, error) {
	return findOne[models.IngredientWithStock](r.conn(ctx).
		Preload("Stock", orderBy("quantity ASC")).
		Preload("Stock.Location").
		Where(byID(id)))
}
