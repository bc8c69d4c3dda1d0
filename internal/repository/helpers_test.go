package repository

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"testing"
	"time"

	"venue-backoffice/internal/config"
	"venue-backoffice/internal/database"
	"venue-backoffice/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a migrated SQLite database in a temp dir.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DatabaseDriver:  config.DriverSQLite,
		DatabaseDSN:     database.SQLiteDSN(filepath.Join(t.TempDir(), "venue.db")),
		DBLogLevel:      "silent",
		DBSlowThreshold: time.Second,
	}
	lg := log.New(io.Discard, "", 0)

	db, err := database.Open(cfg, lg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db, lg))
	return db
}

func ptr[T any](v T) *T { return &v }

// fixture creates rows through the repositories and fails the test on error.
type fixture struct {
	t   *testing.T
	ctx context.Context
	db  *gorm.DB
}

func newFixture(t *testing.T) *fixture {
	return &fixture{t: t, ctx: context.Background(), db: newTestDB(t)}
}

func (f *fixture) location(name string) *models.Location {
	f.t.Helper()
	row, err := NewLocationRepo(f.db).Create(f.ctx, models.LocationInsert{Name: name, Address: name + " Street 1"})
	require.NoError(f.t, err)
	return row
}

func (f *fixture) ingredient(name, unit string) *models.Ingredient {
	f.t.Helper()
	row, err := NewIngredientRepo(f.db).Create(f.ctx, models.IngredientInsert{Name: name, Unit: unit})
	require.NoError(f.t, err)
	return row
}

func (f *fixture) recipe(name string) *models.Recipe {
	f.t.Helper()
	row, err := NewRecipeRepo(f.db).Create(f.ctx, models.RecipeInsert{Name: name})
	require.NoError(f.t, err)
	return row
}

func (f *fixture) recipeIngredient(recipeID, ingredientID string, qty float64) *models.RecipeIngredient {
	f.t.Helper()
	row, err := NewRecipeIngredientRepo(f.db).Create(f.ctx, models.RecipeIngredientInsert{
		RecipeID: recipeID, IngredientID: ingredientID, Quantity: qty,
	})
	require.NoError(f.t, err)
	return row
}

func (f *fixture) staff(name, locationID string) *models.Staff {
	f.t.Helper()
	row, err := NewStaffRepo(f.db).Create(f.ctx, models.StaffInsert{Name: name, LocationID: locationID})
	require.NoError(f.t, err)
	return row
}

func (f *fixture) stock(locationID, ingredientID string, qty float64) *models.InventoryStock {
	f.t.Helper()
	row, err := NewInventoryStockRepo(f.db).Create(f.ctx, models.InventoryStockInsert{
		LocationID: locationID, IngredientID: ingredientID, Quantity: qty,
	})
	require.NoError(f.t, err)
	return row
}

func (f *fixture) cost(locationID, ingredientID string, perUnit float64) *models.LocationIngredientCost {
	f.t.Helper()
	row, err := NewLocationIngredientCostRepo(f.db).Create(f.ctx, models.LocationIngredientCostInsert{
		LocationID: locationID, IngredientID: ingredientID, CostPerUnit: perUnit,
	})
	require.NoError(f.t, err)
	return row
}

// movement records a movement and backdates it to at.
func (f *fixture) movement(locationID, ingredientID string, change float64, kind models.MovementType, at time.Time) *models.InventoryMovement {
	f.t.Helper()
	row, err := NewInventoryMovementRepo(f.db).Create(f.ctx, models.InventoryMovementInsert{
		LocationID: locationID, IngredientID: ingredientID, QuantityChange: change, Type: kind,
	})
	require.NoError(f.t, err)

	at = at.UTC()
	require.NoError(f.t, f.db.Model(&models.InventoryMovement{}).
		Where("id = ?", row.ID).
		UpdateColumn("created_at", at).Error)
	row.CreatedAt = at
	return row
}

func ids[T models.Record](rows []T) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.GetID())
	}
	return out
}
