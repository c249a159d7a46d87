package archive

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/bistro/internal/dashboard"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/personnel"
	"github.com/MrJamesThe3rd/bistro/internal/report"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

var asOf = time.Date(2026, 10, 31, 22, 0, 0, 0, time.UTC)

func passthrough(tx *storage.MockTransactor) {
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	)
}

func TestService_PerformMonthlyReset(t *testing.T) {
	snap := &report.Snapshot{
		AsOf:      asOf,
		Employees: []*personnel.Employee{{FirstName: "Amel"}},
		Totals:    report.Totals{Revenue: 500000, Salaries: 200000, Purchases: 70000, Maintenance: 30000, TotalExpense: 300000, Profit: 200000, SaleCount: 3},
	}

	type mocks struct {
		repo      *MockRepository
		snapshots *MockSnapshotter
		history   *MockHistoryRecorder
		first     *MockPeriodCloser
		last      *MockPeriodCloser
	}

	type testCase struct {
		name      string
		setupMock func(m mocks)
		wantErr   string
	}

	tests := []testCase{
		{
			name: "RunsStepsInOrder",
			setupMock: func(m mocks) {
				gomock.InOrder(
					m.snapshots.EXPECT().Snapshot(gomock.Any(), asOf).Return(snap, nil),
					m.repo.EXPECT().ListArchives(gomock.Any()).Return(nil, nil),
					m.repo.EXPECT().SaveArchives(gomock.Any(), gomock.Len(1)).Return(nil),
					m.history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil),
					m.first.EXPECT().ClosePeriod(gomock.Any(), period.Key("2026-10"), asOf).Return(nil),
					m.last.EXPECT().ClosePeriod(gomock.Any(), period.Key("2026-10"), asOf).Return(nil),
				)
			},
		},
		{
			name: "SnapshotFails",
			setupMock: func(m mocks) {
				m.snapshots.EXPECT().Snapshot(gomock.Any(), asOf).Return(nil, errors.New("disk"))
			},
			wantErr: "taking snapshot: disk",
		},
		{
			name: "StepFailureStopsLaterSteps",
			setupMock: func(m mocks) {
				m.snapshots.EXPECT().Snapshot(gomock.Any(), asOf).Return(snap, nil)
				m.repo.EXPECT().ListArchives(gomock.Any()).Return(nil, nil)
				m.repo.EXPECT().SaveArchives(gomock.Any(), gomock.Any()).Return(nil)
				m.history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				m.first.EXPECT().ClosePeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("locked"))
			},
			wantErr: "closing first: locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mocks{
				repo:      NewMockRepository(ctrl),
				snapshots: NewMockSnapshotter(ctrl),
				history:   NewMockHistoryRecorder(ctrl),
				first:     NewMockPeriodCloser(ctrl),
				last:      NewMockPeriodCloser(ctrl),
			}
			tx := storage.NewMockTransactor(ctrl)

			passthrough(tx)
			tt.setupMock(m)

			svc := NewService(m.repo, m.snapshots, m.history, tx,
				Step{Name: "first", Closer: m.first},
				Step{Name: "last", Closer: m.last},
			)

			got, err := svc.PerformMonthlyReset(context.Background(), asOf)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, period.Key("2026-10"), got.Archive.Period)
			assert.Equal(t, Expenses{Salaries: 200000, Purchases: 70000, Maintenance: 30000, Total: 300000}, got.Archive.Expenses)
			assert.Equal(t, Revenues{Sales: 500000, SaleCount: 3}, got.Archive.Revenues)
			assert.Equal(t, int64(200000), got.Archive.Profit())
			assert.Equal(t, asOf, got.Archive.ArchivedAt)

			assert.Equal(t, &dashboard.HistoryPoint{
				ID:          got.Point.ID,
				Period:      "2026-10",
				Date:        asOf,
				Revenue:     500000,
				Expense:     300000,
				Profit:      200000,
				Purchases:   70000,
				Maintenance: 30000,
				Salaries:    200000,
				ArchivedAt:  asOf,
			}, got.Point)
		})
	}
}

func TestService_Delete(t *testing.T) {
	id := uuid.New()
	other := &MonthlyArchive{ID: uuid.New()}

	type testCase struct {
		name      string
		setupMock func(repo *MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Removes",
			setupMock: func(repo *MockRepository) {
				repo.EXPECT().ListArchives(gomock.Any()).Return([]*MonthlyArchive{{ID: id}, other}, nil)
				repo.EXPECT().SaveArchives(gomock.Any(), []*MonthlyArchive{other}).Return(nil)
			},
		},
		{
			name: "Unknown",
			setupMock: func(repo *MockRepository) {
				repo.EXPECT().ListArchives(gomock.Any()).Return([]*MonthlyArchive{other}, nil)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepository(ctrl)
			tt.setupMock(repo)

			err := NewService(repo, nil, nil, nil).Delete(context.Background(), id)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_List_NewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)

	older := &MonthlyArchive{Period: "2026-09", ArchivedAt: asOf.AddDate(0, -1, 0)}
	newer := &MonthlyArchive{Period: "2026-10", ArchivedAt: asOf}
	repo.EXPECT().ListArchives(gomock.Any()).Return([]*MonthlyArchive{older, newer}, nil)

	got, err := NewService(repo, nil, nil, nil).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*MonthlyArchive{newer, older}, got)
}
