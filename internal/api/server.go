// Package api exposes the repositories over REST. Handlers parse and check
// request parameters, call one repository method and shape the response.
package api

import (
	"log"
	"strings"
	"time"

	"venue-backoffice/internal/config"
	"venue-backoffice/internal/database"
	"venue-backoffice/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Repos holds one repository per table, all sharing the same handle.
type Repos struct {
	Locations         *repository.LocationRepo
	Ingredients       *repository.IngredientRepo
	Recipes           *repository.RecipeRepo
	RecipeIngredients *repository.RecipeIngredientRepo
	Staff             *repository.StaffRepo
	Modifiers         *repository.ModifierRepo
	ModifierOptions   *repository.ModifierOptionRepo
	MenuItems         *repository.LocationMenuItemRepo
	Stock             *repository.InventoryStockRepo
	Movements         *repository.InventoryMovementRepo
	IngredientCosts   *repository.LocationIngredientCostRepo
}

func NewRepos(db *gorm.DB) *Repos {
	return &Repos{
		Locations:         repository.NewLocationRepo(db),
		Ingredients:       repository.NewIngredientRepo(db),
		Recipes:           repository.NewRecipeRepo(db),
		RecipeIngredients: repository.NewRecipeIngredientRepo(db),
		Staff:             repository.NewStaffRepo(db),
		Modifiers:         repository.NewModifierRepo(db),
		ModifierOptions:   repository.NewModifierOptionRepo(db),
		MenuItems:         repository.NewLocationMenuItemRepo(db),
		Stock:             repository.NewInventoryStockRepo(db),
		Movements:         repository.NewInventoryMovementRepo(db),
		IngredientCosts:   repository.NewLocationIngredientCostRepo(db),
	}
}

// New builds the Fiber app with every route mounted under /api.
func New(db *gorm.DB, cfg *config.Config, lg *log.Logger, reg *prometheus.Registry) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(lg),
	})

	m := newMetrics(reg)
	app.Use(recover.New())
	app.Use(m.middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins(), ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/healthz", healthHandler(db))
	app.Get("/metrics", metricsHandler(reg))

	repos := NewRepos(db)
	api := app.Group("/api")

	registerLocationRoutes(api.Group("/locations"), repos)
	registerIngredientRoutes(api.Group("/ingredients"), repos)
	registerRecipeRoutes(api.Group("/recipes"), api.Group("/recipe-ingredients"), repos)
	registerStaffRoutes(api.Group("/staff"), repos)
	registerModifierRoutes(api.Group("/modifiers"), api.Group("/modifier-options"), repos)
	registerMenuItemRoutes(api.Group("/menu-items"), repos)
	registerInventoryRoutes(api.Group("/inventory-stock"), api.Group("/inventory-movements"), api.Group("/ingredient-costs"), repos)

	return app
}

func healthHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.HealthCheck(db, 2*time.Second); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Database unreachable")
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
