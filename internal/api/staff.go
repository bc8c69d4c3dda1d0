package api

import (
	"venue-backoffice/internal/models"

	"github.com/gofiber/fiber/v2"
)

func registerStaffRoutes(r fiber.Router, repos *Repos) {
	staff := repos.Staff

	r.Get("/by-location/:locationId", many(staff.FindByLocation, "locationId"))
	r.Get("/:id/details", one(staff.FindWithDetails, "Staff member"))
	r.Get("/:id/movements", many(repos.Movements.FindByStaff, "id"))

	registerCRUD(r, staff.BaseModel, "Staff member", validateStaff)
}

func validateStaff(in *models.StaffInsert) error {
	if err := required("name", &in.Name); err != nil {
		return err
	}
	if err := required("location_id", &in.LocationID); err != nil {
		return err
	}
	in.Role = trimOptional(in.Role)
	in.IBAN = trimOptional(in.IBAN)
	in.BIC = trimOptional(in.BIC)
	return nil
}
