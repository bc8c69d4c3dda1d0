package api

import (
	"venue-backoffice/internal/models"

	"github.com/gofiber/fiber/v2"
)

func registerMenuItemRoutes(r fiber.Router, repos *Repos) {
	items := repos.MenuItems

	r.Get("/by-location/:locationId", many(items.FindByLocation, "locationId"))
	r.Get("/by-recipe/:recipeId", many(items.FindByRecipe, "recipeId"))
	r.Get("/:id/details", one(items.FindWithDetails, "Menu item"))

	registerCRUD(r, items.BaseModel, "Menu item", validateMenuItem)
}

func validateMenuItem(in *models.LocationMenuItemInsert) error {
	if err := required("location_id", &in.LocationID); err != nil {
		return err
	}
	if err := required("recipe_id", &in.RecipeID); err != nil {
		return err
	}
	if in.Modifiers == nil {
		in.Modifiers = models.IDList{}
	}
	return nonNegative("price", in.Price)
}
