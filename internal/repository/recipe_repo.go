package repository

import (
	"context"

	"venue-backoffice/internal/models"

	"gorm.io/gorm"
)

var _ Repository[models.Recipe, models.RecipeInsert, models.RecipeUpdate] = (*RecipeRepo)(nil)

var _ Repository[models.RecipeIngredient, models.RecipeIngredientInsert, models.RecipeIngredientUpdate] = (*RecipeIngredientRepo)(nil)

type RecipeRepo struct {
	*BaseModel[models.Recipe, models.RecipeInsert, models.RecipeUpdate]
}

func NewRecipeRepo(db *gorm.DB) *RecipeRepo {
	return &RecipeRepo{newBaseModel[models.Recipe, models.RecipeInsert, models.RecipeUpdate](db)}
}

func (r *RecipeRepo) FindByName(ctx context.Context, name string) (*models.Recipe, error) {
	return r.findUnique(ctx, "name", name)
}

func (r *RecipeRepo) FindWithIngredients(ctx context.Context, id string) (*models.RecipeWithIngredients, error) {
	return findOne[models.RecipeWithIngredients](r.conn(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Where(byID(id)))
}

// FindWithDetails adds the menu items that serve the recipe, with their location.
func (r *RecipeRepo) FindWithDetails(ctx context.Context, id string) (*models.RecipeDetails, error) {
	return findOne[models.RecipeDetails](r.conn(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Preload("MenuItems").
		Preload("MenuItems.Location").
		Where(byID(id)))
}

// RecipeIngredientRepo manages the recipe/ingredient join rows.
type RecipeIngredientRepo struct {
	*BaseModel[models.RecipeIngredient, models.RecipeIngredientInsert, models.RecipeIngredientUpdate]
}

func NewRecipeIngredientRepo(db *gorm.DB) *RecipeIngredientRepo {
	return &RecipeIngredientRepo{newBaseModel[models.RecipeIngredient, models.RecipeIngredientInsert, models.RecipeIngredientUpdate](db)}
}

func (r *RecipeIngredientRepo) FindByRecipe(ctx context.Context, recipeID string) ([]models.RecipeIngredientWithIngredient, error) {
	return findMany[models.RecipeIngredientWithIngredient](r.conn(ctx).
		Preload("Ingredient").
		Where(byColumn("recipe_id", recipeID)))
}

func (r *RecipeIngredientRepo) FindByIngredient(ctx context.Context, ingredientID string) ([]models.RecipeIngredientWithRecipe, error) {
	return findMany[models.RecipeIngredientWithRecipe](r.conn(ctx).
		Preload("Recipe").
		Where(byColumn("ingredient_id", ingredientID)))
}
