package personnel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/bistro/internal/personnel"
	"github.com/MrJamesThe3rd/bistro/internal/settings"
	"github.com/MrJamesThe3rd/bistro/internal/validate"
)

var now = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func TestService_Hire(t *testing.T) {
	type args struct {
		params personnel.HireParams
	}

	type testCase struct {
		name          string
		args          args
		setupMock     func(r *personnel.MockRepository, s *personnel.MockSettingsReader)
		wantAllowance int
		wantErr       bool
	}

	tests := []testCase{
		{
			name: "DefaultAllowanceFromSettings",
			args: args{params: personnel.HireParams{FirstName: "Amel", LastName: "Ben Salah", Role: "Barista", SalaryPerDay: 2500}},
			setupMock: func(r *personnel.MockRepository, s *personnel.MockSettingsReader) {
				s.EXPECT().Get(gomock.Any()).Return(&settings.Settings{SickAllowance: 30}, nil)
				r.EXPECT().SaveEmployee(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantAllowance: 30,
		},
		{
			name: "ExplicitAllowance",
			args: args{params: personnel.HireParams{FirstName: "Karim", LastName: "Haddad", SickAllowance: new(5)}},
			setupMock: func(r *personnel.MockRepository, _ *personnel.MockSettingsReader) {
				r.EXPECT().SaveEmployee(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantAllowance: 5,
		},
		{
			name:    "MissingName",
			args:    args{params: personnel.HireParams{LastName: "Haddad"}},
			wantErr: true,
		},
		{
			name: "RepoError",
			args: args{params: personnel.HireParams{FirstName: "Karim", LastName: "Haddad", SickAllowance: new(5)}},
			setupMock: func(r *personnel.MockRepository, _ *personnel.MockSettingsReader) {
				r.EXPECT().SaveEmployee(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := personnel.NewMockRepository(ctrl)
			st := personnel.NewMockSettingsReader(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, st)
			}

			svc := personnel.NewService(repo, st, personnel.WithClock(clock))

			got, err := svc.Hire(context.Background(), tt.args.params)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, tt.wantAllowance, got.SickAllowance)
			assert.Equal(t, tt.wantAllowance, got.SickBalance)
			assert.Equal(t, now, got.CreatedAt)
		})
	}
}

func TestService_AddPresence(t *testing.T) {
	id := uuid.New()

	existing := func() *personnel.Employee {
		return &personnel.Employee{
			ID:            id,
			SickAllowance: 30,
			SickBalance:   30,
			DaysWorked:    1,
			Presences:     []personnel.Presence{{Date: day(1), Status: personnel.StatusPresent}},
		}
	}

	type testCase struct {
		name       string
		date       time.Time
		setupMock  func(r *personnel.MockRepository)
		wantErr    error
		wantWorked int
	}

	tests := []testCase{
		{
			name: "Adds",
			date: day(2),
			setupMock: func(r *personnel.MockRepository) {
				r.EXPECT().GetEmployee(gomock.Any(), id).Return(existing(), nil)
				r.EXPECT().SaveEmployee(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantWorked: 2,
		},
		{
			name: "DuplicateDoesNotSave",
			date: day(1),
			setupMock: func(r *personnel.MockRepository) {
				r.EXPECT().GetEmployee(gomock.Any(), id).Return(existing(), nil)
			},
			wantErr: personnel.ErrDuplicatePresence,
		},
		{
			name: "RemovedEmployee",
			date: day(2),
			setupMock: func(r *personnel.MockRepository) {
				e := existing()
				e.Deleted = true
				r.EXPECT().GetEmployee(gomock.Any(), id).Return(e, nil)
			},
			wantErr: personnel.ErrRemoved,
		},
		{
			name: "NotFound",
			date: day(2),
			setupMock: func(r *personnel.MockRepository) {
				r.EXPECT().GetEmployee(gomock.Any(), id).Return(nil, personnel.ErrNotFound)
			},
			wantErr: personnel.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := personnel.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := personnel.NewService(repo, personnel.NewMockSettingsReader(ctrl), personnel.WithClock(clock))

			got, err := svc.AddPresence(context.Background(), id, tt.date, personnel.StatusPresent)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantWorked, got.DaysWorked)
			assert.Equal(t, &now, got.UpdatedAt)
		})
	}
}

func TestService_AddAdvance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := personnel.NewMockRepository(ctrl)
	repo.EXPECT().GetEmployee(gomock.Any(), id).Return(&personnel.Employee{ID: id, Advance: 1000}, nil)
	repo.EXPECT().SaveEmployee(gomock.Any(), gomock.Any()).Return(nil)

	svc := personnel.NewService(repo, personnel.NewMockSettingsReader(ctrl), personnel.WithClock(clock))

	got, err := svc.AddAdvance(context.Background(), id, 2500)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), got.Advance)

	_, err = svc.AddAdvance(context.Background(), id, 0)
	assert.True(t, validate.IsValidation(err))
}

func TestService_RemoveAndListRemoved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	active := &personnel.Employee{ID: uuid.New()}
	older := &personnel.Employee{ID: uuid.New(), Deleted: true, DeletedAt: new(now.Add(-48 * time.Hour))}
	newer := &personnel.Employee{ID: uuid.New(), Deleted: true, DeletedAt: new(now.Add(-time.Hour))}

	repo := personnel.NewMockRepository(ctrl)
	repo.EXPECT().GetEmployee(gomock.Any(), active.ID).Return(active, nil)
	repo.EXPECT().
		SaveEmployee(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *personnel.Employee) error {
			assert.True(t, e.Deleted)
			assert.Equal(t, &now, e.DeletedAt)

			return nil
		})
	repo.EXPECT().ListEmployees(gomock.Any()).Return([]*personnel.Employee{active, older, newer}, nil)

	svc := personnel.NewService(repo, personnel.NewMockSettingsReader(ctrl), personnel.WithClock(clock))

	require.NoError(t, svc.Remove(context.Background(), active.ID))

	removed, err := svc.ListRemoved(context.Background())
	require.NoError(t, err)
	require.Len(t, removed, 3)
	assert.Equal(t, []uuid.UUID{active.ID, newer.ID, older.ID}, []uuid.UUID{removed[0].ID, removed[1].ID, removed[2].ID})
}

func TestService_ClosePeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	working := &personnel.Employee{ID: uuid.New(), SickAllowance: 30, Advance: 4000}
	require.NoError(t, working.AddPresence(day(1), personnel.StatusPresent))
	require.NoError(t, working.AddPresence(day(2), personnel.StatusSick))

	gone := &personnel.Employee{ID: uuid.New(), Deleted: true, DaysWorked: 7, Advance: 100, SickBalance: 2}

	repo := personnel.NewMockRepository(ctrl)
	st := personnel.NewMockSettingsReader(ctrl)

	st.EXPECT().Get(gomock.Any()).Return(&settings.Settings{SickAllowance: 12}, nil)
	repo.EXPECT().ListEmployees(gomock.Any()).Return([]*personnel.Employee{working, gone}, nil)
	repo.EXPECT().SaveEmployees(gomock.Any(), gomock.Len(2)).Return(nil)

	svc := personnel.NewService(repo, st, personnel.WithClock(clock))
	require.NoError(t, svc.ClosePeriod(context.Background(), "2026-10", now))

	assert.Zero(t, working.DaysWorked)
	assert.Zero(t, working.Advance)
	assert.Empty(t, working.Presences)
	assert.Equal(t, 12, working.SickBalance)

	assert.Equal(t, 7, gone.DaysWorked)
	assert.Equal(t, int64(100), gone.Advance)
	assert.Equal(t, 2, gone.SickBalance)
}
