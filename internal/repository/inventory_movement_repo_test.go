package repository

import (
	"testing"
	"time"

	"venue-backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryMovementScopedFinders(t *testing.T) {
	f := newFixture(t)
	downtown := f.location("Downtown")
	airport := f.location("Airport")
	flour := f.ingredient("Flour", "kg")
	sugar := f.ingredient("Sugar", "kg")
	now := time.Now().UTC()

	m1 := f.movement(downtown.ID, flour.ID, -1, models.MovementSale, now.Add(-3*time.Hour))
	m2 := f.movement(downtown.ID, sugar.ID, -0.5, models.MovementWaste, now.Add(-2*time.Hour))
	m3 := f.movement(airport.ID, flour.ID, 20, models.MovementRestock, now.Add(-time.Hour))
	repo := NewInventoryMovementRepo(f.db)

	byLocation, err := repo.FindByLocation(f.ctx, downtown.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{m2.ID, m1.ID}, ids(byLocation))
	for _, m := range byLocation {
		assert.NotNil(t, m.Ingredient)
		assert.Nil(t, m.RecordedBy)
	}

	byIngredient, err := repo.FindByIngredient(f.ctx, flour.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{m3.ID, m1.ID}, ids(byIngredient))

	byType, err := repo.FindByType(f.ctx, models.MovementWaste)
	require.NoError(t, err)
	require.Equal(t, []string{m2.ID}, ids(byType))
	assert.Equal(t, "Downtown", byType[0].Location.Name)
	assert.Equal(t, "Sugar", byType[0].Ingredient.Name)
}

func TestInventoryMovementFindSince(t *testing.T) {
	f := newFixture(t)
	loc := f.location("Downtown")
	flour := f.ingredient("Flour", "kg")
	now := time.Now().UTC()

	recent := f.movement(loc.ID, flour.ID, -1, models.MovementSale, now.Add(-6*time.Hour))
	f.movement(loc.ID, flour.ID, -1, models.MovementSale, now.AddDate(0, 0, -10))

	rows, err := NewInventoryMovementRepo(f.db).FindSince(f.ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{recent.ID}, ids(rows))
}

func TestInventoryMovementRecordedBy(t *testing.T) {
	f := newFixture(t)
	loc := f.location("Downtown")
	flour := f.ingredient("Flour", "kg")
	chef := f.staff("Chef Ana", loc.ID)
	repo := NewInventoryMovementRepo(f.db)

	m, err := repo.Create(f.ctx, models.InventoryMovementInsert{
		LocationID:     loc.ID,
		IngredientID:   flour.ID,
		QuantityChange: -2,
		Type:           models.MovementWaste,
		CostAtTime:     ptr(0.9),
		StaffID:        &chef.ID,
		Notes:          ptr("dropped a bag"),
	})
	require.NoError(t, err)

	details, err := repo.FindWithDetails(f.ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, details.RecordedBy)
	assert.Equal(t, "Chef Ana", details.RecordedBy.Name)
	assert.Equal(t, "dropped a bag", *details.Notes)

	byStaff, err := repo.FindByStaff(f.ctx, chef.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{m.ID}, ids(byStaff))

	staff, err := NewStaffRepo(f.db).FindWithDetails(f.ctx, chef.ID)
	require.NoError(t, err)
	require.NotNil(t, staff.Location)
	assert.Equal(t, "Downtown", staff.Location.Name)
	assert.Equal(t, []string{m.ID}, ids(staff.RecordedMovements))
}

func TestMovementTypeValid(t *testing.T) {
	for _, k := range models.MovementTypes() {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, models.MovementType("theft").Valid())
}
