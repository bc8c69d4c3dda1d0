package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"venue-backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonFields flattens v into its JSON object form. Row JSON names match the
// column names, so the result is keyed by column.
func jsonFields(t *testing.T, v any) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

// jsonValue normalises v the way jsonFields normalises a row field.
func jsonValue(t *testing.T, v any) any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	var out any
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

// checkRoundTrip creates in, reads it back field for field, applies patch and
// checks that exactly the patched columns changed.
func checkRoundTrip[R models.Record, I models.Insertable[R], U models.Patch](t *testing.T, repo *BaseModel[R, I, U], in I, patch U) {
	t.Helper()
	ctx := context.Background()

	created, err := repo.Create(ctx, in)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, (*created).GetID())
	require.NoError(t, err)
	require.NotNil(t, found)

	before := jsonFields(t, found)
	assert.Equal(t, jsonFields(t, created), before, "read back differs from created row")

	changes := patch.Changes()
	require.NotEmpty(t, changes)
	want := jsonFields(t, found)
	for column, v := range changes {
		require.Contains(t, want, column, "patch names an unknown column")
		want[column] = jsonValue(t, v)
		assert.NotEqual(t, before[column], want[column], "patch for %s does not change it", column)
	}

	updated, err := repo.Update(ctx, (*created).GetID(), patch)
	require.NoError(t, err)

	reread, err := repo.FindByID(ctx, (*created).GetID())
	require.NoError(t, err)
	require.NotNil(t, reread)

	got := jsonFields(t, reread)
	assert.Equal(t, jsonFields(t, updated), got)

	delete(want, "updated_at")
	delete(got, "updated_at")
	assert.Equal(t, want, got)
}

func TestRoundTripAndPartialUpdateOnEveryTable(t *testing.T) {
	f := newFixture(t)
	loc := f.location("Downtown")
	harbour := f.location("Harbour")
	flour := f.ingredient("Flour", "kg")
	sugar := f.ingredient("Sugar", "kg")
	salt := f.ingredient("Salt", "g")
	soup := f.recipe("Soup")
	bread := f.recipe("Bread")
	chef := f.staff("Ana", loc.ID)
	waiter := f.staff("Ben", harbour.ID)
	size, err := NewModifierRepo(f.db).Create(f.ctx, models.ModifierInsert{Name: "Size"})
	require.NoError(t, err)
	extras, err := NewModifierRepo(f.db).Create(f.ctx, models.ModifierInsert{Name: "Extras"})
	require.NoError(t, err)

	dob := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	kind := models.MovementAdjustment

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"locations", func(t *testing.T) {
			checkRoundTrip(t, NewLocationRepo(f.db).BaseModel,
				models.LocationInsert{Name: "Airport", Address: "Gate 4"},
				models.LocationUpdate{Address: ptr("Gate 7")})
		}},
		{"ingredients", func(t *testing.T) {
			checkRoundTrip(t, NewIngredientRepo(f.db).BaseModel,
				models.IngredientInsert{Name: "Butter", Unit: "kg", Cost: ptr(7.5)},
				models.IngredientUpdate{Unit: ptr("g"), Cost: ptr(0.0075)})
		}},
		{"recipes", func(t *testing.T) {
			checkRoundTrip(t, NewRecipeRepo(f.db).BaseModel,
				models.RecipeInsert{Name: "Stew", Description: ptr("slow cooked")},
				models.RecipeUpdate{Description: ptr("pressure cooked")})
		}},
		{"recipe ingredients", func(t *testing.T) {
			checkRoundTrip(t, NewRecipeIngredientRepo(f.db).BaseModel,
				models.RecipeIngredientInsert{RecipeID: soup.ID, IngredientID: salt.ID, Quantity: 0.02},
				models.RecipeIngredientUpdate{RecipeID: &bread.ID, Quantity: ptr(0.05)})
		}},
		{"staff", func(t *testing.T) {
			checkRoundTrip(t, NewStaffRepo(f.db).BaseModel,
				models.StaffInsert{
					Name: "Cem", LocationID: loc.ID, Role: ptr("cook"),
					DOB: &dob, IBAN: ptr("DE89370400440532013000"), BIC: ptr("COBADEFFXXX"),
				},
				models.StaffUpdate{LocationID: &harbour.ID, Role: ptr("head cook"), DOB: ptr(dob.AddDate(1, 0, 0))})
		}},
		{"modifiers", func(t *testing.T) {
			checkRoundTrip(t, NewModifierRepo(f.db).BaseModel,
				models.ModifierInsert{Name: "Milk"},
				models.ModifierUpdate{Name: ptr("Milk choice")})
		}},
		{"modifier options", func(t *testing.T) {
			checkRoundTrip(t, NewModifierOptionRepo(f.db).BaseModel,
				models.ModifierOptionInsert{ModifierID: size.ID, Name: "Large", Price: 0.5},
				models.ModifierOptionUpdate{ModifierID: &extras.ID, Price: ptr(0.75)})
		}},
		{"menu items", func(t *testing.T) {
			checkRoundTrip(t, NewLocationMenuItemRepo(f.db).BaseModel,
				models.LocationMenuItemInsert{
					LocationID: loc.ID, RecipeID: soup.ID, Price: 6.5,
					Modifiers: models.IDList{size.ID},
				},
				models.LocationMenuItemUpdate{Price: ptr(7.0), Modifiers: &models.IDList{size.ID, extras.ID}})
		}},
		{"inventory stock", func(t *testing.T) {
			checkRoundTrip(t, NewInventoryStockRepo(f.db).BaseModel,
				models.InventoryStockInsert{LocationID: loc.ID, IngredientID: flour.ID, Quantity: 12},
				models.InventoryStockUpdate{IngredientID: &sugar.ID, Quantity: ptr(3.5)})
		}},
		{"inventory movements", func(t *testing.T) {
			checkRoundTrip(t, NewInventoryMovementRepo(f.db).BaseModel,
				models.InventoryMovementInsert{
					LocationID: loc.ID, IngredientID: flour.ID, QuantityChange: -2,
					Type: models.MovementWaste, CostAtTime: ptr(0.9), StaffID: &chef.ID, Notes: ptr("dropped"),
				},
				models.InventoryMovementUpdate{Type: &kind, StaffID: &waiter.ID, Notes: ptr("miscounted")})
		}},
		{"ingredient costs", func(t *testing.T) {
			checkRoundTrip(t, NewLocationIngredientCostRepo(f.db).BaseModel,
				models.LocationIngredientCostInsert{LocationID: harbour.ID, IngredientID: flour.ID, CostPerUnit: 0.8},
				models.LocationIngredientCostUpdate{CostPerUnit: ptr(0.85)})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}
