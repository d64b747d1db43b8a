package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/tarefa-api/internal/model"
)

// testRepository прогоняет одинаковые проверки для всех реализаций TaskRepository.
// newRepo должен возвращать пустое хранилище
func testRepository(t *testing.T, newRepo func(t *testing.T) TaskRepository) {
	ctx := context.Background()
	march5 := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	t.Run("create assigns distinct ids", func(t *testing.T) {
		r := newRepo(t)

		a, err := r.Create(ctx, model.Task{Title: "A", Description: "primeira", Date: march5})
		require.NoError(t, err)
		b, err := r.Create(ctx, model.Task{Title: "B", Date: march5, Status: model.StatusDone})
		require.NoError(t, err)

		assert.NotZero(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)

		got, err := r.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)
		assert.Equal(t, "A", got.Title)
		assert.Equal(t, "primeira", got.Description)
		assert.True(t, march5.Equal(got.Date), "got %v", got.Date)
		assert.Equal(t, model.StatusPending, got.Status)
	})

	t.Run("get missing", func(t *testing.T) {
		r := newRepo(t)

		_, err := r.Get(ctx, 12345)
		assert.ErrorIs(t, err, ErrorNotFound)
	})

	t.Run("list filters", func(t *testing.T) {
		r := newRepo(t)

		seed := []model.Task{
			{Title: "Comprar pão", Date: march5, Status: model.StatusPending},
			{Title: "Comprar pão", Date: march5.AddDate(0, 0, 1), Status: model.StatusDone},
			{Title: "Lavar louça", Date: time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC), Status: model.StatusInProgress},
			{Title: "Pagar contas", Date: time.Date(2024, 3, 4, 23, 59, 59, 0, time.UTC), Status: model.StatusDone},
		}
		for _, task := range seed {
			_, err := r.Create(ctx, task)
			require.NoError(t, err)
		}

		all, err := r.List(ctx, model.TaskFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 4)
		for i := 1; i < len(all); i++ {
			assert.Less(t, all[i-1].ID, all[i].ID)
		}

		title := "Comprar pão"
		byTitle, err := r.List(ctx, model.TaskFilter{Title: &title})
		require.NoError(t, err)
		assert.Len(t, byTitle, 2)

		for _, day := range []time.Time{
			time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 5, 23, 59, 59, 0, time.UTC),
		} {
			byDate, err := r.List(ctx, model.TaskFilter{Day: &day})
			require.NoError(t, err)
			assert.Len(t, byDate, 2, "day %v", day)
		}

		done := model.StatusDone
		byStatus, err := r.List(ctx, model.TaskFilter{Status: &done})
		require.NoError(t, err)
		assert.Len(t, byStatus, 2)

		combined, err := r.List(ctx, model.TaskFilter{Title: &title, Status: &done})
		require.NoError(t, err)
		require.Len(t, combined, 1)
		assert.True(t, march5.AddDate(0, 0, 1).Equal(combined[0].Date))

		missing := "Inexistente"
		none, err := r.List(ctx, model.TaskFilter{Title: &missing})
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("update keeps id and date", func(t *testing.T) {
		r := newRepo(t)

		created, err := r.Create(ctx, model.Task{Title: "Original", Date: march5})
		require.NoError(t, err)

		updated, err := r.Update(ctx, model.Task{
			ID:          created.ID,
			Title:       "Novo",
			Description: "desc",
			Date:        march5.AddDate(1, 0, 0),
			Status:      model.StatusInProgress,
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Novo", updated.Title)
		assert.Equal(t, "desc", updated.Description)
		assert.Equal(t, model.StatusInProgress, updated.Status)
		assert.True(t, march5.Equal(updated.Date))

		got, err := r.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("update missing", func(t *testing.T) {
		r := newRepo(t)

		_, err := r.Update(ctx, model.Task{ID: 999, Title: "x", Date: march5})
		assert.ErrorIs(t, err, ErrorNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		r := newRepo(t)

		created, err := r.Create(ctx, model.Task{Title: "Apagar", Date: march5})
		require.NoError(t, err)

		require.NoError(t, r.Delete(ctx, created.ID))
		assert.ErrorIs(t, r.Delete(ctx, created.ID), ErrorNotFound)

		_, err = r.Get(ctx, created.ID)
		assert.ErrorIs(t, err, ErrorNotFound)

		all, err := r.List(ctx, model.TaskFilter{})
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
