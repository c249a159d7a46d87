package matching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/bistro/internal/validate"
)

func TestService_Suggest(t *testing.T) {
	older := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	newer := older.AddDate(0, 1, 0)

	aliases := []*Alias{
		{Pattern: "exp", Article: "Express", CreatedAt: older},
		{Pattern: "cafe exp", Article: "Café express", CreatedAt: older},
		{Pattern: "lait", Article: "Lait entier", CreatedAt: older},
		{Pattern: "LAIT", Article: "Lait demi-écrémé", CreatedAt: newer},
	}

	type testCase struct {
		name string
		raw  string
		want string
	}

	tests := []testCase{
		{name: "LongestPatternWins", raw: "CAFE EXP 7G", want: "Café express"},
		{name: "ShortPattern", raw: "double exp", want: "Express"},
		{name: "NewestOnTie", raw: "Lait UHT", want: "Lait demi-écrémé"},
		{name: "NoMatch", raw: "Sucre", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepository(ctrl)
			repo.EXPECT().ListAliases(gomock.Any()).Return(aliases, nil)

			got, err := NewService(repo).Suggest(context.Background(), tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Learn(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)

	existing := &Alias{ID: uuid.New(), Pattern: "Exp", Article: "Express"}
	kept := &Alias{ID: uuid.New(), Pattern: "lait", Article: "Lait"}

	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	svc := NewService(repo)
	svc.now = func() time.Time { return now }

	repo.EXPECT().ListAliases(gomock.Any()).Return([]*Alias{existing, kept}, nil)
	repo.EXPECT().SaveAliases(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, saved []*Alias) error {
		require.Len(t, saved, 2)
		assert.Equal(t, kept, saved[0])
		assert.Equal(t, "exp", saved[1].Pattern)
		assert.Equal(t, "Espresso", saved[1].Article)
		assert.Equal(t, now, saved[1].CreatedAt)

		return nil
	})

	got, err := svc.Learn(context.Background(), LearnParams{Pattern: " exp ", Article: "Espresso"})
	require.NoError(t, err)
	assert.Equal(t, "exp", got.Pattern)
}

func TestService_Learn_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewService(NewMockRepository(ctrl)).Learn(context.Background(), LearnParams{Pattern: "  ", Article: "Express"})
	assert.True(t, validate.IsValidation(err))
}

func TestService_Forget(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	a := &Alias{ID: uuid.New(), Pattern: "exp", Article: "Express"}

	gomock.InOrder(
		repo.EXPECT().ListAliases(gomock.Any()).Return([]*Alias{a}, nil),
		repo.EXPECT().SaveAliases(gomock.Any(), []*Alias{}).Return(nil),
		repo.EXPECT().ListAliases(gomock.Any()).Return([]*Alias{a}, nil),
	)

	svc := NewService(repo)
	require.NoError(t, svc.Forget(context.Background(), a.ID))
	assert.ErrorIs(t, svc.Forget(context.Background(), uuid.New()), ErrNotFound)
}

func TestService_SuggestError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	repo.EXPECT().ListAliases(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := NewService(repo).Suggest(context.Background(), "x")
	assert.EqualError(t, err, "boom")
}
