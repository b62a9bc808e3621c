//go:build integration_test || all_tests

package habits

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/2beens/fitjournal/internal/calendar"
	"github.com/2beens/fitjournal/internal/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const repoTestUserID = 1

func testRepoSetup(t *testing.T) (*Repo, func()) {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	t.Logf("using postres host: %s", host)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         "5432",
		DBName:         "fitjournal",
		TracingEnabled: false,
	})
	require.NoError(t, err)

	return NewRepo(dbPool), func() {
		dbPool.Close()
	}
}

func TestRepo_AddHabit_GetHabit(t *testing.T) {
	ctx := context.Background()
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	added, err := repo.Add(ctx, repoTestUserID, Habit{
		Name:      "morning run",
		Frequency: FrequencyWeekly,
		Weekdays:  []int{1, 3, 5},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, added.ID)
	defer func() {
		require.NoError(t, repo.Delete(ctx, repoTestUserID, added.ID))
	}()

	found, err := repo.Get(ctx, repoTestUserID, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "morning run", found.Name)
	assert.Equal(t, FrequencyWeekly, found.Frequency)
	assert.Equal(t, []int{1, 3, 5}, found.Weekdays)
	assert.Empty(t, found.Completions)
	assert.Zero(t, found.Streak)
	assert.Nil(t, found.LastCompletedDate)
}

func TestRepo_UpdateHabit(t *testing.T) {
	ctx := context.Background()
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	added, err := repo.Add(ctx, repoTestUserID, Habit{
		Name:      "drink water",
		Frequency: FrequencyDaily,
	})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, repo.Delete(ctx, repoTestUserID, added.ID))
	}()

	today := calendar.NewDate(2024, 5, 3)
	toggled := added.ToggleCompletion(today, today)
	require.NoError(t, repo.Update(ctx, repoTestUserID, toggled))

	found, err := repo.Get(ctx, repoTestUserID, added.ID)
	require.NoError(t, err)
	assert.True(t, found.Completions.Contains(today))
	assert.Equal(t, 1, found.Streak)
	require.NotNil(t, found.LastCompletedDate)
	assert.Equal(t, today, *found.LastCompletedDate)
}

func TestRepo_ListHabits(t *testing.T) {
	ctx := context.Background()
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	h1, err := repo.Add(ctx, repoTestUserID, Habit{Name: "a habit", Frequency: FrequencyDaily})
	require.NoError(t, err)
	h2, err := repo.Add(ctx, repoTestUserID, Habit{Name: "b habit", Frequency: FrequencyDaily})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, repo.Delete(ctx, repoTestUserID, h1.ID))
		require.NoError(t, repo.Delete(ctx, repoTestUserID, h2.ID))
	}()

	listed, err := repo.List(ctx, repoTestUserID)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(listed), 2)

	// habits of other users stay invisible
	otherListed, err := repo.List(ctx, repoTestUserID+1)
	require.NoError(t, err)
	for _, h := range otherListed {
		assert.NotEqual(t, h1.ID, h.ID)
		assert.NotEqual(t, h2.ID, h.ID)
	}
}

func TestRepo_NotFound(t *testing.T) {
	ctx := context.Background()
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	_, err := repo.Get(ctx, repoTestUserID, uuid.New())
	assert.ErrorIs(t, err, ErrHabitNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, repoTestUserID, uuid.New()), ErrHabitNotFound)
}
