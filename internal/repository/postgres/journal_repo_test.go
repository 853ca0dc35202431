package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/garden-manager/internal/repository/postgres"
	"github.com/dom/garden-manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRepository_CRUD(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewJournalRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	garden := testutil.NewGardenBuilder(user.ID).Build(t, testDB.DB)

	entry := testutil.CreateJournalEntry(t, testDB.DB, garden.ID, "sowed carrots")

	got, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "sowed carrots", got.Notes)

	got.Notes = "sowed carrots and radishes"
	got.UpdatedAt = time.Now()
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "sowed carrots and radishes", updated.Notes)

	require.NoError(t, repo.Delete(ctx, entry.ID))

	_, err = repo.GetByID(ctx, entry.ID)
	assert.Error(t, err)
}

func TestJournalRepository_ListByGardenID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewJournalRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	garden := testutil.NewGardenBuilder(user.ID).Build(t, testDB.DB)
	other := testutil.NewGardenBuilder(user.ID).Build(t, testDB.DB)

	testutil.CreateJournalEntry(t, testDB.DB, garden.ID, "entry one")
	testutil.CreateJournalEntry(t, testDB.DB, garden.ID, "entry two")
	testutil.CreateJournalEntry(t, testDB.DB, other.ID, "other garden entry")

	entries, err := repo.ListByGardenID(ctx, garden.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, garden.ID, e.GardenID)
	}
}
