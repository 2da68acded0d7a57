package domain

import "time"

// FreeSlot свободный интервал ресурса, в который помещается запись
type FreeSlot struct {
	ResourceID string
	Start      time.Time
	End        time.Time
}

// DurationMinutes длительность слота в минутах
func (s *FreeSlot) DurationMinutes() int {
	return int(s.End.Sub(s.Start) / time.Minute)
}
