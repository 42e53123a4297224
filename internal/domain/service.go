package domain

import "time"

// Service represents a cosmetology service in the catalog
type Service struct {
	ID              int64
	Name            string
	Category        string
	Description     *string
	Price           float64
	DurationMinutes *int
	CreatedAt       time.Time
}

// EffectiveDuration длительность услуги в минутах.
// Отсутствующая или нулевая длительность означает длительность по умолчанию.
func (s *Service) EffectiveDuration() int {
	if s.DurationMinutes == nil || *s.DurationMinutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return *s.DurationMinutes
}
