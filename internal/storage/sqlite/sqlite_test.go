package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqliteDriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MrJamesThe3rd/bistro/internal/storage"
	"github.com/MrJamesThe3rd/bistro/internal/storage/sqlite"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	db, err := gorm.Open(sqliteDriver.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	s := sqlite.New(db)
	require.NoError(t, s.Migrate(context.Background()))

	return s
}

func TestStore_PutGet(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Get(ctx, storage.Employees)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.Put(ctx, storage.Employees, []byte(`[1]`)))
	require.NoError(t, s.Put(ctx, storage.Employees, []byte(`[1,2]`)))

	got, err := s.Get(ctx, storage.Employees)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))
}

func TestStore_WithinTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Put(ctx, storage.Purchases, []byte(`["a"]`)))

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.Put(ctx, storage.Purchases, []byte(`[]`)); err != nil {
			return err
		}

		return errors.New("archive failed")
	})
	require.Error(t, err)

	got, err := s.Get(ctx, storage.Purchases)
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(got))
}
