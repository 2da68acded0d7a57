package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// FreeSlots возвращает начала слотов длительностью duration с шагом step в рабочих часах
// дня day, которые не пересекаются с записями ресурса и начинаются не раньше now
func FreeSlots(
	resourceID string,
	day time.Time,
	duration, step time.Duration,
	hours domain.BusinessHours,
	existing []*domain.Appointment,
	now time.Time,
) []domain.FreeSlot {
	if duration <= 0 || step <= 0 {
		return nil
	}

	loc := hours.Loc()
	y, m, d := day.In(loc).Date()
	windowStart := time.Date(y, m, d, hours.OpenHour, 0, 0, 0, loc)
	windowEnd := time.Date(y, m, d, hours.CloseHour, 0, 0, 0, loc)

	slots := make([]domain.FreeSlot, 0)
	for t := windowStart; !t.Add(duration).After(windowEnd); t = t.Add(step) {
		if t.Before(now) {
			continue
		}
		probe := Candidate{ResourceID: resourceID, Start: t, End: t.Add(duration)}
		if FindConflict(probe, existing) != nil {
			continue
		}
		slots = append(slots, domain.FreeSlot{
			ResourceID: resourceID,
			Start:      probe.Start,
			End:        probe.End,
		})
	}
	return slots
}
