package maintenance_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/bistro/internal/maintenance"
	"github.com/MrJamesThe3rd/bistro/internal/maintenance/store"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/storage/memory"
	"github.com/MrJamesThe3rd/bistro/internal/validate"
)

func TestService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	svc := maintenance.NewService(store.New(db), db)

	october := time.Date(2026, 10, 8, 0, 0, 0, 0, time.UTC)

	espresso, err := svc.Create(ctx, maintenance.CreateParams{
		Date: october, Service: "Espresso machine descaling", Duration: "2h", Amount: 8500,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, maintenance.CreateParams{
		Date: october.AddDate(0, -1, 0), Service: "Fridge repair", Amount: 12000,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, maintenance.CreateParams{Date: october, Amount: 100})
	assert.True(t, validate.IsValidation(err))

	key := period.Of(october)

	current, err := svc.List(ctx, &key)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, espresso.ID, current[0].ID)

	closedAt := october.AddDate(0, 0, 23)
	require.NoError(t, svc.ClosePeriod(ctx, key, closedAt))

	live, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, live)

	history, err := svc.History(ctx, &key)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	for _, m := range history {
		assert.Equal(t, key, m.ArchivedPeriod)
		require.NotNil(t, m.ArchivedAt)
		assert.True(t, closedAt.Equal(*m.ArchivedAt))
	}

	assert.ErrorIs(t, svc.Delete(ctx, uuid.New()), maintenance.ErrNotFound)
}

func TestService_Close(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	svc := maintenance.NewService(store.New(db), db)

	_, err := svc.Create(ctx, maintenance.CreateParams{
		Date: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), Service: "Grinder burrs", Amount: 4000,
	})
	require.NoError(t, err)

	at := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	closed, err := svc.Close(ctx, at)
	require.NoError(t, err)
	assert.Equal(t, period.Key("2026-10"), closed)

	live, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, live)

	history, err := svc.History(ctx, &closed)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Grinder burrs", history[0].Service)
	require.NotNil(t, history[0].ArchivedAt)
	assert.True(t, at.Equal(*history[0].ArchivedAt))
}
