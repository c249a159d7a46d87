package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/bistro/internal/storage"
	"github.com/MrJamesThe3rd/bistro/internal/storage/memory"
)

func TestStore_GetMissing(t *testing.T) {
	_, err := memory.New().Get(context.Background(), storage.Employees)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_WithinTx(t *testing.T) {
	ctx := context.Background()

	type testCase struct {
		name    string
		fnErr   error
		want    string
		wantErr bool
	}

	tests := []testCase{
		{name: "Commit", want: `["new"]`},
		{name: "Rollback", fnErr: errors.New("boom"), want: `["old"]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := memory.New()
			require.NoError(t, s.Put(ctx, storage.Sales, []byte(`["old"]`)))

			err := s.WithinTx(ctx, func(ctx context.Context) error {
				if err := s.Put(ctx, storage.Sales, []byte(`["new"]`)); err != nil {
					return err
				}

				if err := s.Put(ctx, storage.SalesHistory, []byte(`["old"]`)); err != nil {
					return err
				}

				return tt.fnErr
			})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			got, err := s.Get(ctx, storage.Sales)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))

			_, err = s.Get(ctx, storage.SalesHistory)
			assert.Equal(t, tt.wantErr, errors.Is(err, storage.ErrNotFound))
		})
	}
}

func TestStore_NestedTxJoinsOuter(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.WithinTx(ctx, func(ctx context.Context) error {
			return s.Put(ctx, storage.Stock, []byte(`[]`))
		}); err != nil {
			return err
		}

		return errors.New("outer failed")
	})
	require.Error(t, err)

	_, err = s.Get(ctx, storage.Stock)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_WithinTxRestoresOnPanic(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	require.NoError(t, s.Put(ctx, storage.Purchases, []byte(`["old"]`)))

	assert.Panics(t, func() {
		_ = s.WithinTx(ctx, func(ctx context.Context) error {
			if err := s.Put(ctx, storage.Purchases, []byte(`["new"]`)); err != nil {
				return err
			}

			panic("handler crashed")
		})
	})

	got, err := s.Get(ctx, storage.Purchases)
	require.NoError(t, err)
	assert.JSONEq(t, `["old"]`, string(got))
}
