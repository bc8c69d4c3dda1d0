package api

import (
	"venue-backoffice/internal/models"

	"github.com/gofiber/fiber/v2"
)

func registerRecipeRoutes(r, links fiber.Router, repos *Repos) {
	recipes := repos.Recipes

	r.Get("/:id/ingredients", one(recipes.FindWithIngredients, "Recipe"))
	r.Get("/:id/details", one(recipes.FindWithDetails, "Recipe"))
	registerCRUD(r, recipes.BaseModel, "Recipe", validateRecipe)

	links.Get("/by-recipe/:recipeId", many(repos.RecipeIngredients.FindByRecipe, "recipeId"))
	links.Get("/by-ingredient/:ingredientId", many(repos.RecipeIngredients.FindByIngredient, "ingredientId"))
	registerCRUD(links, repos.RecipeIngredients.BaseModel, "Recipe ingredient", validateRecipeIngredient)
}

func validateRecipe(in *models.RecipeInsert) error {
	in.Description = trimOptional(in.Description)
	return required("name", &in.Name)
}

func validateRecipeIngredient(in *models.RecipeIngredientInsert) error {
	if err := required("recipe_id", &in.RecipeID); err != nil {
		return err
	}
	if err := required("ingredient_id", &in.IngredientID); err != nil {
		return err
	}
	return positive("quantity", in.Quantity)
}
