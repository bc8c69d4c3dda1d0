package api

import (
	"venue-backoffice/internal/models"

	"github.com/gofiber/fiber/v2"
)

func registerLocationRoutes(r fiber.Router, repos *Repos) {
	locations := repos.Locations

	r.Get("/by-name/:name", func(c *fiber.Ctx) error {
		loc, err := locations.FindByName(c.UserContext(), c.Params("name"))
		if err != nil {
			return notFoundAs(err, "Location")
		}
		return c.JSON(loc)
	})
	r.Get("/:id/details", one(locations.FindWithDetails, "Location"))
	r.Get("/:id/inventory", one(locations.FindWithInventory, "Location"))
	r.Get("/:id/staff", one(locations.FindWithStaff, "Location"))
	r.Get("/:id/menu-items", one(locations.FindWithMenuItems, "Location"))
	r.Get("/:id/low-stock", func(c *fiber.Ctx) error {
		threshold, err := queryFloat(c, "threshold")
		if err != nil {
			return err
		}
		loc, err := locations.FindWithLowStock(c.UserContext(), c.Params("id"), threshold)
		if err != nil {
			return err
		}
		if loc == nil {
			return fiber.NewError(fiber.StatusNotFound, "Location not found")
		}
		return c.JSON(loc)
	})

	registerCRUD(r, locations.BaseModel, "Location", validateLocation)
}

func validateLocation(in *models.LocationInsert) error {
	if err := required("name", &in.Name); err != nil {
		return err
	}
	return required("address", &in.Address)
}
