package api

import (
	"venue-backoffice/internal/models"

	"github.com/gofiber/fiber/v2"
)

func registerModifierRoutes(r, options fiber.Router, repos *Repos) {
	modifiers := repos.Modifiers

	r.Get("/with-options", func(c *fiber.Ctx) error {
		rows, err := modifiers.FindAllWithOptions(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(rows)
	})
	r.Get("/:id/options", one(modifiers.FindWithOptions, "Modifier"))
	registerCRUD(r, modifiers.BaseModel, "Modifier", validateModifier)

	options.Get("/by-modifier/:modifierId", many(repos.ModifierOptions.FindByModifier, "modifierId"))
	options.Get("/:id/details", one(repos.ModifierOptions.FindWithDetails, "Modifier option"))
	registerCRUD(options, repos.ModifierOptions.BaseModel, "Modifier option", validateModifierOption)
}

func validateModifier(in *models.ModifierInsert) error {
	return required("name", &in.Name)
}

func validateModifierOption(in *models.ModifierOptionInsert) error {
	if err := required("modifier_id", &in.ModifierID); err != nil {
		return err
	}
	if err := required("name", &in.Name); err != nil {
		return err
	}
	return nonNegative("price", in.Price)
}
