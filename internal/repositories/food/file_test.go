package food

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eats-health/eats/internal/common"
	"github.com/eats-health/eats/internal/models"
)

func testEntry(id, item string) models.FoodEntry {
	return models.FoodEntry{
		ID:       id,
		Food:     item,
		Calories: 350,
		Date:     "August 22, 2026",
		Time:     "12:30",
		Meal:     models.MealLunch,
	}
}

func newTestRepo(t *testing.T) (*FileRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "food_data.json")
	return NewFileRepository(path), path
}

func TestGetAll_MissingFile(t *testing.T) {
	repo, _ := newTestRepo(t)

	entries, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestAppend_PreservesOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testEntry("1", "Adobo")))
	require.NoError(t, repo.Append(ctx, testEntry("2", "Sinigang")))
	require.NoError(t, repo.Append(ctx, testEntry("3", "Mango")))

	entries, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "Adobo", entries[0].Food)
	require.Equal(t, "Sinigang", entries[1].Food)
	require.Equal(t, "Mango", entries[2].Food)
}

func TestAppend_SurvivesReopen(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	want := testEntry("1", "Adobo")
	require.NoError(t, repo.Append(ctx, want))

	reopened := NewFileRepository(path)
	entries, err := reopened.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, want, entries[0])
}

func TestDeleteByID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testEntry("1", "Adobo")))
	require.NoError(t, repo.Append(ctx, testEntry("2", "Sinigang")))

	require.NoError(t, repo.DeleteByID(ctx, "1"))

	entries, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "2", entries[0].ID)
}

func TestDeleteByID_Unknown(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testEntry("1", "Adobo")))

	err := repo.DeleteByID(ctx, "does-not-exist")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestClear(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testEntry("1", "Adobo")))
	require.NoError(t, repo.Clear(ctx))

	entries, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestGetAll_MalformedFile(t *testing.T) {
	repo, path := newTestRepo(t)

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := repo.GetAll(context.Background())
	require.ErrorIs(t, err, common.ErrStorage)
}
