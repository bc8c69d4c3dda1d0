package api

import (
	"venue-backoffice/internal/models"

	"github.com/gofiber/fiber/v2"
)

func registerIngredientRoutes(r fiber.Router, repos *Repos) {
	ingredients := repos.Ingredients

	r.Get("/:id/recipes", one(ingredients.FindWithRecipes, "Ingredient"))
	r.Get("/:id/details", one(ingredients.FindWithDetails, "Ingredient"))
	r.Get("/:id/stock", one(ingredients.FindWithStock, "Ingredient"))

	registerCRUD(r, ingredients.BaseModel, "Ingredient", validateIngredient)
}

func validateIngredient(in *models.IngredientInsert) error {
	if err := required("name", &in.Name); err != nil {
		return err
	}
	if err := required("unit", &in.Unit); err != nil {
		return err
	}
	if in.Cost != nil {
		return nonNegative("cost", *in.Cost)
	}
	return nil
}
