package api

import (
	"fmt"

	"venue-backoffice/internal/models"

	"github.com/gofiber/fiber/v2"
)

// defaultMovementWindow is the day count used when ?days= is absent.
const defaultMovementWindow = 7

type adjustRequest struct {
	QuantityChange *float64 `json:"quantity_change"`
}

func registerInventoryRoutes(stock, movements, costs fiber.Router, repos *Repos) {
	s := repos.Stock

	stock.Get("/by-location/:locationId", many(s.FindByLocation, "locationId"))
	stock.Get("/by-ingredient/:ingredientId", many(s.FindByIngredient, "ingredientId"))
	stock.Get("/low", func(c *fiber.Ctx) error {
		threshold, err := queryFloat(c, "threshold")
		if err != nil {
			return err
		}
		rows, err := s.FindLowStock(c.UserContext(), threshold)
		if err != nil {
			return err
		}
		return c.JSON(rows)
	})
	stock.Get("/high", func(c *fiber.Ctx) error {
		threshold, err := queryFloat(c, "threshold")
		if err != nil {
			return err
		}
		rows, err := s.FindHighStock(c.UserContext(), threshold)
		if err != nil {
			return err
		}
		return c.JSON(rows)
	})
	stock.Get("/with-movements", func(c *fiber.Ctx) error {
		days, err := queryDays(c, defaultMovementWindow)
		if err != nil {
			return err
		}
		rows, err := s.FindStockWithMovements(c.UserContext(), days)
		if err != nil {
			return err
		}
		return c.JSON(rows)
	})
	stock.Get("/with-costs", func(c *fiber.Ctx) error {
		maxCost, err := queryFloat(c, "max_cost")
		if err != nil {
			return err
		}
		rows, err := s.FindStockWithCosts(c.UserContext(), maxCost)
		if err != nil {
			return err
		}
		return c.JSON(rows)
	})
	stock.Get("/:id/details", one(s.FindWithDetails, "Stock entry"))
	stock.Post("/:id/adjust", func(c *fiber.Ctx) error {
		var req adjustRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if req.QuantityChange == nil {
			return fiber.NewError(fiber.StatusBadRequest, "quantity_change is required")
		}

		row, err := s.UpdateStock(c.UserContext(), c.Params("id"), *req.QuantityChange)
		if err != nil {
			return notFoundAs(err, "Stock entry")
		}
		return c.JSON(row)
	})
	registerCRUD(stock, s.BaseModel, "Stock entry", validateStock)

	m := repos.Movements
	movements.Get("/by-location/:locationId", many(m.FindByLocation, "locationId"))
	movements.Get("/by-ingredient/:ingredientId", many(m.FindByIngredient, "ingredientId"))
	movements.Get("/by-type/:type", func(c *fiber.Ctx) error {
		kind := models.MovementType(c.Params("type"))
		if !kind.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Unknown movement type %q", kind))
		}
		rows, err := m.FindByType(c.UserContext(), kind)
		if err != nil {
			return err
		}
		return c.JSON(rows)
	})
	movements.Get("/recent", func(c *fiber.Ctx) error {
		days, err := queryDays(c, defaultMovementWindow)
		if err != nil {
			return err
		}
		rows, err := m.FindSince(c.UserContext(), days)
		if err != nil {
			return err
		}
		return c.JSON(rows)
	})
	movements.Get("/:id/details", one(m.FindWithDetails, "Movement"))
	registerCRUD(movements, m.BaseModel, "Movement", validateMovement)

	lc := repos.IngredientCosts
	costs.Get("/by-location/:locationId", many(lc.FindByLocation, "locationId"))
	costs.Get("/by-ingredient/:ingredientId", many(lc.FindByIngredient, "ingredientId"))
	costs.Get("/:id/details", one(lc.FindWithDetails, "Ingredient cost"))
	registerCRUD(costs, lc.BaseModel, "Ingredient cost", validateIngredientCost)
}

func validateStock(in *models.InventoryStockInsert) error {
	if err := required("location_id", &in.LocationID); err != nil {
		return err
	}
	if err := required("ingredient_id", &in.IngredientID); err != nil {
		return err
	}
	return nonNegative("quantity", in.Quantity)
}

func validateMovement(in *models.InventoryMovementInsert) error {
	if err := required("location_id", &in.LocationID); err != nil {
		return err
	}
	if err := required("ingredient_id", &in.IngredientID); err != nil {
		return err
	}
	if !in.Type.Valid() {
		return fmt.Errorf("unknown movement type %q", in.Type)
	}
	if in.CostAtTime != nil {
		if err := nonNegative("cost_at_time", *in.CostAtTime); err != nil {
			return err
		}
	}
	in.StaffID = trimOptional(in.StaffID)
	in.Notes = trimOptional(in.Notes)
	return nil
}

func validateIngredientCost(in *models.LocationIngredientCostInsert) error {
	if err := required("location_id", &in.LocationID); err != nil {
		return err
	}
	if err := required("ingredient_id", &in.IngredientID); err != nil {
		return err
	}
	return nonNegative("cost_per_unit", in.CostPerUnit)
}
