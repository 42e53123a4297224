package domain

import (
	"time"

	"github.com/avikhr/SalonBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s string) bool {
	for _, status := range ValidStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// Booking represents an appointment in the salon schedule
type Booking struct {
	ID                   int64
	UserID               int64
	ServiceID            int64
	BookingDate          time.Time
	BookingTime          types.TimeString
	Status               BookingStatus
	Comment              *string
	TelegramNotification bool
	CreatedAt            time.Time
}

// IsActive returns true if the booking still occupies its slot.
// Only cancelled bookings release their time.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// BookingsFilter фильтр выборки бронирований для отчетов и админских списков
type BookingsFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    *BookingStatus
}

// BookingDetails бронирование с денормализованными данными услуги и клиента
// (результат JOIN запросов - для списков, расписания и уведомлений)
type BookingDetails struct {
	Booking

	ServiceName     string
	ServicePrice    float64
	ServiceDuration *int

	UserName       string
	UserSurname    string
	UserEmail      string
	UserPhone      string
	UserTelegramID *string
}

// EffectiveDuration длительность услуги бронирования в минутах.
// Отсутствующая или нулевая длительность означает длительность по умолчанию.
func (b *BookingDetails) EffectiveDuration() int {
	if b.ServiceDuration == nil || *b.ServiceDuration <= 0 {
		return DefaultServiceDurationMinutes
	}
	return *b.ServiceDuration
}
