package demand

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// 5 октября 2026 - понедельник
var monday = time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)

func findCell(t *testing.T, h Heatmap, wd time.Weekday, hour int) Cell {
	t.Helper()
	for _, c := range h.Cells {
		if c.Weekday == wd && c.Hour == hour {
			return c
		}
	}
	require.FailNow(t, "cell not found")
	return Cell{}
}

func appointment(start, end time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:         "a",
		ResourceID: "r1",
		Start:      start,
		End:        end,
		Status:     status,
	}
}

func TestBuildHeatmap_GridShape(t *testing.T) {
	h := BuildHeatmap(HeatmapInput{BasePrice: 1800, From: monday, Weeks: 4})

	require.Len(t, h.Cells, 7*12)
	assert.Equal(t, time.Monday, h.Cells[0].Weekday)
	assert.Equal(t, 9, h.Cells[0].Hour)
	last := h.Cells[len(h.Cells)-1]
	assert.Equal(t, time.Sunday, last.Weekday)
	assert.Equal(t, 20, last.Hour)
}

func TestBuildHeatmap_BaselineWithoutData(t *testing.T) {
	h := BuildHeatmap(HeatmapInput{BasePrice: 1800, From: monday, Weeks: 4})

	for _, c := range h.Cells {
		assert.False(t, c.Observed)
		assert.Equal(t, domain.ConfidenceLow, c.Confidence)
	}

	// суббота вечером - пик
	sat := findCell(t, h, time.Saturday, 17)
	assert.Equal(t, 100, sat.Load)
	assert.Equal(t, 2070, sat.SuggestedPrice)

	// будний обед
	lunch := findCell(t, h, time.Wednesday, 13)
	assert.Equal(t, 15, lunch.Load)

	assert.Equal(t, 100, h.Summary.Peak.Load)
	assert.Equal(t, time.Saturday, h.Summary.Peak.Weekday)
}

func TestBuildHeatmap_ObservedLoad(t *testing.T) {
	appts := []*domain.Appointment{
		appointment(monday.Add(10*time.Hour), monday.Add(11*time.Hour), domain.StatusConfirmed),
		// отмененные записи не занимают ресурс
		appointment(monday.Add(15*time.Hour), monday.Add(16*time.Hour), domain.StatusCancelled),
	}

	h := BuildHeatmap(HeatmapInput{
		BasePrice:    1800,
		Appointments: appts,
		Resources:    1,
		From:         monday,
		Weeks:        1,
		Location:     time.UTC,
	})

	busy := findCell(t, h, time.Monday, 10)
	assert.True(t, busy.Observed)
	assert.Equal(t, 100, busy.Load)
	assert.Equal(t, 1, busy.Bookings)
	assert.Equal(t, 2070, busy.SuggestedPrice)
	assert.Equal(t, domain.ConfidenceHigh, busy.Confidence)

	cancelled := findCell(t, h, time.Monday, 15)
	assert.Equal(t, 0, cancelled.Load)
	assert.Equal(t, 0, cancelled.Bookings)

	quiet := findCell(t, h, time.Tuesday, 10)
	assert.Equal(t, 0, quiet.Load)
	assert.Equal(t, 1530, quiet.SuggestedPrice)
	assert.Equal(t, domain.ConfidenceLow, quiet.Confidence)

	assert.Equal(t, busy, h.Summary.Peak)
	assert.InDelta(t, 100.0/84, h.Summary.MeanLoad, 0.01)
	assert.Equal(t, 0.0, h.Summary.MedianLoad)
}

func TestBuildHeatmap_SplitsAcrossHours(t *testing.T) {
	appts := []*domain.Appointment{
		appointment(monday.Add(10*time.Hour+30*time.Minute), monday.Add(11*time.Hour+30*time.Minute), domain.StatusConfirmed),
	}

	h := BuildHeatmap(HeatmapInput{
		BasePrice:    1000,
		Appointments: appts,
		Resources:    2,
		From:         monday,
		Weeks:        1,
	})

	// 30 минут из 2 ресурсов x 60 минут
	assert.Equal(t, 25, findCell(t, h, time.Monday, 10).Load)
	assert.Equal(t, 25, findCell(t, h, time.Monday, 11).Load)
}

func TestBuildHeatmap_CompletenessAcrossWeeks(t *testing.T) {
	week := 7 * 24 * time.Hour
	appts := []*domain.Appointment{
		appointment(monday.Add(10*time.Hour), monday.Add(11*time.Hour), domain.StatusCompleted),
		appointment(monday.Add(week+10*time.Hour), monday.Add(week+11*time.Hour), domain.StatusConfirmed),
	}

	h := BuildHeatmap(HeatmapInput{
		BasePrice:    1000,
		Appointments: appts,
		Resources:    1,
		From:         monday,
		Weeks:        4,
	})

	// данные есть за 2 понедельника из 4
	assert.Equal(t, domain.ConfidenceMid, findCell(t, h, time.Monday, 10).Confidence)
	assert.Equal(t, 50, findCell(t, h, time.Monday, 10).Load)
}

func TestBaselineLoad_Bounded(t *testing.T) {
	for _, wd := range weekdays {
		for hour := firstHour; hour <= lastHour; hour++ {
			load := BaselineLoad(wd, hour)
			assert.GreaterOrEqual(t, load, 0.0)
			assert.LessOrEqual(t, load, 100.0)
		}
	}
}

func TestBuildHeatmap_ClipsToWindow(t *testing.T) {
	sunday := monday.AddDate(0, 0, -1)
	nextMonday := monday.AddDate(0, 0, 7)
	appts := []*domain.Appointment{
		// началась до периода: учитывается только хвост в понедельник
		appointment(sunday.Add(20*time.Hour), monday.Add(10*time.Hour), domain.StatusConfirmed),
		// закончилась после периода: учитывается только воскресная часть
		appointment(nextMonday.Add(-4*time.Hour), nextMonday.Add(10*time.Hour), domain.StatusConfirmed),
	}

	h := BuildHeatmap(HeatmapInput{
		BasePrice:    1000,
		Appointments: appts,
		Resources:    2,
		From:         monday,
		Weeks:        1,
	})

	mon9 := findCell(t, h, time.Monday, 9)
	assert.Equal(t, 50, mon9.Load)
	assert.Zero(t, mon9.Bookings)
	assert.Equal(t, domain.ConfidenceLow, mon9.Confidence)

	sun20 := findCell(t, h, time.Sunday, 20)
	assert.Equal(t, 50, sun20.Load)
	assert.Equal(t, 1, sun20.Bookings)
	assert.Equal(t, domain.ConfidenceHigh, sun20.Confidence)
}

func TestBuildHeatmap_OutsideWindowFallsBackToBaseline(t *testing.T) {
	prevWeek := monday.AddDate(0, 0, -7)
	appts := []*domain.Appointment{
		appointment(prevWeek.Add(10*time.Hour), prevWeek.Add(11*time.Hour), domain.StatusConfirmed),
	}

	h := BuildHeatmap(HeatmapInput{BasePrice: 1000, Appointments: appts, From: monday, Weeks: 1})

	cell := findCell(t, h, time.Monday, 10)
	assert.False(t, cell.Observed)
	assert.Equal(t, int(BaselineLoad(time.Monday, 10)), cell.Load)
}
