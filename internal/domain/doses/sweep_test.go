package doses

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestSweep_PromotesOverdueUpcoming(t *testing.T) {
	records := []DoseRecord{
		{ID: "d1", DueDate: day(-10), Status: StatusUpcoming},
		{ID: "d2", DueDate: day(0), Status: StatusUpcoming},
		{ID: "d3", DueDate: day(3), Status: StatusUpcoming},
	}

	out, changed := Sweep(records, now)

	require.True(t, changed)
	assert.Equal(t, StatusMissed, out[0].Status)
	assert.Equal(t, StatusUpcoming, out[1].Status, "due today is not overdue")
	assert.Equal(t, StatusUpcoming, out[2].Status)

	// no muta la entrada
	assert.Equal(t, StatusUpcoming, records[0].Status)
}

func TestSweep_IdempotentWithSameNow(t *testing.T) {
	records := []DoseRecord{
		{ID: "d1", DueDate: day(-1), Status: StatusUpcoming},
		{ID: "d2", DueDate: day(5), Status: StatusUpcoming},
	}

	first, changed := Sweep(records, now)
	require.True(t, changed)

	second, changed := Sweep(first, now)
	assert.False(t, changed)
	assert.Equal(t, first, second)
}

func TestSweep_NeverTouchesCompleted(t *testing.T) {
	done := day(-20)
	records := []DoseRecord{
		{ID: "d1", DueDate: day(-30), Status: StatusCompleted, CompletedDate: &done},
	}

	for _, at := range []time.Time{now, now.AddDate(1, 0, 0), now.AddDate(20, 0, 0)} {
		out, changed := Sweep(records, at)
		assert.False(t, changed)
		assert.Equal(t, StatusCompleted, out[0].Status)
		assert.Equal(t, &done, out[0].CompletedDate)
	}
}

func TestSweep_OnlyStatusChanges(t *testing.T) {
	in := DoseRecord{
		ID:        "d1",
		SubjectID: "s1",
		DoseName:  "BCG",
		Category:  "Tuberculosis",
		DueDate:   day(-8),
		Status:    StatusUpcoming,
		Note:      "clinic A",
	}

	out, _ := Sweep([]DoseRecord{in}, now)

	want := in
	want.Status = StatusMissed
	assert.Equal(t, want, out[0])
}

func TestSweep_Empty(t *testing.T) {
	out, changed := Sweep(nil, now)
	assert.False(t, changed)
	assert.Empty(t, out)
}

func TestComplete_RecoversFromMissed(t *testing.T) {
	r := DoseRecord{ID: "d1", DueDate: day(-10), Status: StatusMissed}
	at := now

	out, ok := Complete(r, at, "  late but done ")

	require.True(t, ok)
	assert.Equal(t, StatusCompleted, out.Status)
	require.NotNil(t, out.CompletedDate)
	assert.Equal(t, at, *out.CompletedDate)
	assert.Equal(t, "late but done", out.Note)
}

func TestComplete_TerminalOnceCompleted(t *testing.T) {
	first := day(-2)
	r := DoseRecord{ID: "d1", DueDate: day(-3), Status: StatusCompleted, CompletedDate: &first}

	out, ok := Complete(r, now, "again")

	assert.False(t, ok)
	assert.Equal(t, r, out)
}

func TestInitialStatus_Boundary(t *testing.T) {
	assert.Equal(t, StatusUpcoming, InitialStatus(day(0), now))
	assert.Equal(t, StatusMissed, InitialStatus(day(-1), now))
	assert.Equal(t, StatusUpcoming, InitialStatus(day(1), now))
}

func TestOverdueDays(t *testing.T) {
	assert.Equal(t, 10, OverdueDays(DoseRecord{DueDate: day(-10)}, now))
	assert.Equal(t, 0, OverdueDays(DoseRecord{DueDate: day(0)}, now))
	assert.Equal(t, -4, OverdueDays(DoseRecord{DueDate: day(4)}, now))
}
