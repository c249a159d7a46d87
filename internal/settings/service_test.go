package settings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/settings"
	"github.com/MrJamesThe3rd/bistro/internal/validate"
)

var now = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func TestService_Get(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *settings.MockRepository)
		want      *settings.Settings
		wantErr   bool
	}

	saved := &settings.Settings{SickAllowance: 12, CurrentPeriod: "2026-09"}

	tests := []testCase{
		{
			name: "Saved",
			setupMock: func(m *settings.MockRepository) {
				m.EXPECT().GetSettings(gomock.Any()).Return(saved, nil)
			},
			want: saved,
		},
		{
			name: "DefaultsWhenMissing",
			setupMock: func(m *settings.MockRepository) {
				m.EXPECT().GetSettings(gomock.Any()).Return(nil, settings.ErrNotFound)
			},
			want: &settings.Settings{SickAllowance: 20, LastResetDate: now, CurrentPeriod: "2026-10"},
		},
		{
			name: "RepoError",
			setupMock: func(m *settings.MockRepository) {
				m.EXPECT().GetSettings(gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := settings.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := settings.NewService(repo, settings.WithClock(clock), settings.WithDefaultAllowance(20))

			got, err := svc.Get(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settings.NewMockRepository(ctrl)
	repo.EXPECT().GetSettings(gomock.Any()).Return(&settings.Settings{SickAllowance: 30, CurrentPeriod: "2026-09"}, nil)
	repo.EXPECT().
		SaveSettings(gomock.Any(), &settings.Settings{SickAllowance: 15, CurrentPeriod: "2026-10"}).
		Return(nil)

	svc := settings.NewService(repo, settings.WithClock(clock))

	got, err := svc.Update(context.Background(), settings.UpdateParams{SickAllowance: 15})
	require.NoError(t, err)
	assert.Equal(t, 15, got.SickAllowance)

	_, err = svc.Update(context.Background(), settings.UpdateParams{SickAllowance: -1})
	assert.True(t, validate.IsValidation(err))
}

func TestService_ClosePeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	at := time.Date(2026, 11, 2, 8, 0, 0, 0, time.UTC)

	repo := settings.NewMockRepository(ctrl)
	repo.EXPECT().GetSettings(gomock.Any()).Return(&settings.Settings{SickAllowance: 30, CurrentPeriod: "2026-10"}, nil)
	repo.EXPECT().
		SaveSettings(gomock.Any(), &settings.Settings{SickAllowance: 30, LastResetDate: at, CurrentPeriod: period.Key("2026-11")}).
		Return(nil)

	svc := settings.NewService(repo, settings.WithClock(clock))
	require.NoError(t, svc.ClosePeriod(context.Background(), "2026-10", at))
}
