package demand

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// Часы тепловой карты: 9:00 - 20:00
const (
	firstHour = 9
	lastHour  = 20
)

// weekdays порядок дней в сетке: с понедельника
var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// HeatmapInput данные для построения карты
type HeatmapInput struct {
	BasePrice    float64
	Appointments []*domain.Appointment // записи выбранных ресурсов за период
	Resources    int                   // количество ресурсов, по которым считается загрузка
	From         time.Time             // начало периода (понедельник 00:00 в поясе салона)
	Weeks        int
	Location     *time.Location
}

// Cell ячейка день x час
type Cell struct {
	Weekday        time.Weekday
	Hour           int
	Load           int // 0..100
	Bookings       int
	Observed       bool // загрузка посчитана по записям, а не по шаблону
	SuggestedPrice int
	Confidence     domain.Confidence
}

// Summary сводка по карте
type Summary struct {
	MeanLoad   float64
	MedianLoad float64
	P90Load    float64
	Peak       Cell
}

// Heatmap сетка 7 x 12
type Heatmap struct {
	Cells   []Cell
	Summary Summary
}

type cellKey struct {
	weekday time.Weekday
	hour    int
}

// BuildHeatmap строит карту спроса. Загрузка ячейки - доля занятых минут ресурсов
// в этот час за период. Если за период нет ни одной записи, используется типовой
// профиль спроса салона с низким доверием.
func BuildHeatmap(in HeatmapInput) Heatmap {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	weeks := in.Weeks
	if weeks <= 0 {
		weeks = 1
	}
	resources := in.Resources
	if resources <= 0 {
		resources = 1
	}

	busyMinutes := make(map[cellKey]float64)
	bookings := make(map[cellKey]int)
	activeWeeks := make(map[time.Weekday]map[int]struct{})
	observedAny := false

	windowStart := in.From.In(loc)
	windowEnd := windowStart.AddDate(0, 0, 7*weeks)

	for _, a := range in.Appointments {
		if !a.OccupiesResource() {
			continue
		}

		// Учитывается только часть записи внутри периода
		start := maxTime(a.Start, windowStart).In(loc)
		end := minTime(a.End, windowEnd).In(loc)
		if !end.After(start) {
			continue
		}
		observedAny = true

		// Записи, начавшиеся до периода, дают только занятость
		if !a.Start.Before(windowStart) {
			k := cellKey{weekday: start.Weekday(), hour: start.Hour()}
			bookings[k]++

			week := int(start.Sub(windowStart) / (7 * 24 * time.Hour))
			if activeWeeks[start.Weekday()] == nil {
				activeWeeks[start.Weekday()] = make(map[int]struct{})
			}
			activeWeeks[start.Weekday()][week] = struct{}{}
		}

		// Раскладываем занятость записи по часовым ячейкам
		for t := start.Truncate(time.Hour); t.Before(end); t = t.Add(time.Hour) {
			hourEnd := t.Add(time.Hour)
			from := maxTime(t, start)
			to := minTime(hourEnd, end)
			if to.After(from) {
				busyMinutes[cellKey{weekday: t.Weekday(), hour: t.Hour()}] += to.Sub(from).Minutes()
			}
		}
	}

	capacity := float64(resources * weeks * 60)
	cells := make([]Cell, 0, len(weekdays)*(lastHour-firstHour+1))
	loads := make([]float64, 0, cap(cells))

	for _, wd := range weekdays {
		completeness := float64(len(activeWeeks[wd])) / float64(weeks)
		for hour := firstHour; hour <= lastHour; hour++ {
			k := cellKey{weekday: wd, hour: hour}

			var load float64
			if observedAny {
				load = clamp(busyMinutes[k]/capacity*100, 0, 100)
			} else {
				load = BaselineLoad(wd, hour)
				completeness = 0
			}

			s := SuggestPrice(in.BasePrice, load, Hints{DataCompleteness: completeness})
			cell := Cell{
				Weekday:        wd,
				Hour:           hour,
				Load:           int(math.Round(load)),
				Bookings:       bookings[k],
				Observed:       observedAny,
				SuggestedPrice: s.SuggestedPrice,
				Confidence:     s.Confidence,
			}
			cells = append(cells, cell)
			loads = append(loads, load)
		}
	}

	return Heatmap{
		Cells:   cells,
		Summary: summarize(cells, loads),
	}
}

// BaselineLoad типовой профиль загрузки салона без случайного шума:
// будни 30, суббота 70, воскресенье 20; утренний пик +25, вечерний +30, обед -15
func BaselineLoad(wd time.Weekday, hour int) float64 {
	load := 30.0
	switch wd {
	case time.Saturday:
		load = 70
	case time.Sunday:
		load = 20
	}

	switch {
	case hour >= 10 && hour <= 12:
		load += 25
	case hour >= 16 && hour <= 19:
		load += 30
	case hour == 13 || hour == 14:
		load -= 15
	}

	return clamp(load, 0, 100)
}

func summarize(cells []Cell, loads []float64) Summary {
	if len(cells) == 0 {
		return Summary{}
	}

	data := stats.LoadRawData(loads)
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	p90, _ := stats.Percentile(data, 90)

	peak := cells[0]
	for _, c := range cells[1:] {
		if c.Load > peak.Load {
			peak = c
		}
	}

	return Summary{
		MeanLoad:   round2(mean),
		MedianLoad: round2(median),
		P90Load:    round2(p90),
		Peak:       peak,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
