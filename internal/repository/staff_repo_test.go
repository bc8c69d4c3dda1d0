package repository

import (
	"testing"
	"time"

	"venue-backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffFindByLocation(t *testing.T) {
	f := newFixture(t)
	downtown := f.location("Downtown")
	airport := f.location("Airport")
	f.staff("Mia", downtown.ID)
	f.staff("Ben", downtown.ID)
	f.staff("Ola", airport.ID)

	rows, err := NewStaffRepo(f.db).FindByLocation(f.ctx, downtown.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ben", rows[0].Name)
	assert.Equal(t, "Mia", rows[1].Name)
	for _, s := range rows {
		require.NotNil(t, s.Location)
		assert.Equal(t, "Downtown", s.Location.Name)
	}
}

func TestStaffOptionalFields(t *testing.T) {
	f := newFixture(t)
	loc := f.location("Downtown")
	repo := NewStaffRepo(f.db)
	dob := time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(f.ctx, models.StaffInsert{
		Name:       "Lena",
		LocationID: loc.ID,
		Role:       ptr("manager"),
		DOB:        &dob,
		IBAN:       ptr("DE89370400440532013000"),
		BIC:        ptr("COBADEFFXXX"),
	})
	require.NoError(t, err)

	found, err := repo.FindByID(f.ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Role)
	assert.Equal(t, "manager", *found.Role)
	require.NotNil(t, found.IBAN)
	assert.Equal(t, "DE89370400440532013000", *found.IBAN)
	require.NotNil(t, found.DOB)
	assert.Equal(t, "1990-03-14", found.DOB.UTC().Format(time.DateOnly))

	updated, err := repo.Update(f.ctx, created.ID, models.StaffUpdate{Role: ptr("chef")})
	require.NoError(t, err)
	assert.Equal(t, "chef", *updated.Role)
	assert.Equal(t, "COBADEFFXXX", *updated.BIC)
}
