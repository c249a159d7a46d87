package personnel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/bistro/internal/personnel"
)

func day(d int) time.Time {
	return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC)
}

func TestEmployee_AddPresence(t *testing.T) {
	type args struct {
		date   time.Time
		status personnel.Status
	}

	type testCase struct {
		name          string
		args          args
		wantErr       error
		wantWorked    int
		wantAbsences  int
		wantSick      int
		wantPresences int
	}

	tests := []testCase{
		{
			name:          "Present",
			args:          args{date: day(3), status: personnel.StatusPresent},
			wantWorked:    2,
			wantSick:      1,
			wantPresences: 3,
		},
		{
			name:          "Absent",
			args:          args{date: day(3), status: personnel.StatusAbsent},
			wantWorked:    1,
			wantAbsences:  1,
			wantSick:      1,
			wantPresences: 3,
		},
		{
			name:          "SickFloorsAtZero",
			args:          args{date: day(3), status: personnel.StatusSick},
			wantWorked:    1,
			wantSick:      0,
			wantPresences: 3,
		},
		{
			name:          "OffHasNoEffect",
			args:          args{date: day(3), status: personnel.StatusOff},
			wantWorked:    1,
			wantSick:      1,
			wantPresences: 3,
		},
		{
			name:          "DuplicateDateSameDayDifferentHour",
			args:          args{date: day(1).Add(15 * time.Hour), status: personnel.StatusAbsent},
			wantErr:       personnel.ErrDuplicatePresence,
			wantWorked:    1,
			wantSick:      1,
			wantPresences: 2,
		},
		{
			name:          "InvalidStatus",
			args:          args{date: day(4), status: "holiday"},
			wantErr:       personnel.ErrInvalidStatus,
			wantWorked:    1,
			wantSick:      1,
			wantPresences: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &personnel.Employee{SickAllowance: 2}
			require.NoError(t, e.AddPresence(day(1), personnel.StatusPresent))
			require.NoError(t, e.AddPresence(day(2), personnel.StatusSick))

			err := e.AddPresence(tt.args.date, tt.args.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantWorked, e.DaysWorked)
			assert.Equal(t, tt.wantAbsences, e.Absences)
			assert.Equal(t, tt.wantSick, e.SickBalance)
			assert.Len(t, e.Presences, tt.wantPresences)
		})
	}
}

func TestEmployee_PresencesStaySorted(t *testing.T) {
	e := &personnel.Employee{}
	require.NoError(t, e.AddPresence(day(9), personnel.StatusPresent))
	require.NoError(t, e.AddPresence(day(2), personnel.StatusPresent))
	require.NoError(t, e.AddPresence(day(5), personnel.StatusOff))

	got := make([]int, 0, len(e.Presences))
	for _, p := range e.Presences {
		got = append(got, p.Date.Day())
	}

	assert.Equal(t, []int{2, 5, 9}, got)
}

func TestEmployee_EditAndDeletePresence(t *testing.T) {
	e := &personnel.Employee{SickAllowance: 5}
	require.NoError(t, e.AddPresence(day(1), personnel.StatusPresent))
	require.NoError(t, e.AddPresence(day(2), personnel.StatusPresent))

	require.NoError(t, e.EditPresence(day(2), personnel.StatusSick))
	assert.Equal(t, 1, e.DaysWorked)
	assert.Equal(t, 4, e.SickBalance)

	require.NoError(t, e.DeletePresence(day(2)))
	assert.Equal(t, 1, e.DaysWorked)
	assert.Equal(t, 5, e.SickBalance)

	assert.ErrorIs(t, e.EditPresence(day(20), personnel.StatusAbsent), personnel.ErrPresenceNotFound)
	assert.ErrorIs(t, e.DeletePresence(day(20)), personnel.ErrPresenceNotFound)
}

func TestEmployee_RecountIsIdempotent(t *testing.T) {
	e := &personnel.Employee{SickAllowance: 3}
	statuses := []personnel.Status{
		personnel.StatusPresent, personnel.StatusAbsent, personnel.StatusSick,
		personnel.StatusOff, personnel.StatusPresent, personnel.StatusSick,
	}

	for i, s := range statuses {
		require.NoError(t, e.AddPresence(day(i+1), s))
	}

	e.Recount()
	first := *e

	e.Recount()

	assert.Equal(t, first.DaysWorked, e.DaysWorked)
	assert.Equal(t, first.Absences, e.Absences)
	assert.Equal(t, first.SickBalance, e.SickBalance)
	assert.Equal(t, 2, e.DaysWorked)
	assert.Equal(t, 1, e.Absences)
	assert.Equal(t, 1, e.SickBalance)
}

func TestEmployee_StartPeriod(t *testing.T) {
	e := &personnel.Employee{SickAllowance: 3, Advance: 5000}
	require.NoError(t, e.AddPresence(day(1), personnel.StatusPresent))
	require.NoError(t, e.AddPresence(day(2), personnel.StatusAbsent))

	e.StartPeriod(30)

	assert.Zero(t, e.DaysWorked)
	assert.Zero(t, e.Absences)
	assert.Zero(t, e.Advance)
	assert.Empty(t, e.Presences)
	assert.Equal(t, 30, e.SickBalance)
	assert.Equal(t, 30, e.SickAllowance)
}
