package create_booking

import (
	"fmt"

	"github.com/avikhr/SalonBookingService/internal/domain"
	"github.com/avikhr/SalonBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Comment != nil && len([]rune(*req.Comment)) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment must not exceed %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	return nil
}

// validateTimeSlot проверяет, что время попадает в сетку расписания:
// внутри рабочего дня и кратно шагу сетки
func validateTimeSlot(slot types.TimeString) error {
	minutes, err := slot.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	start := domain.ScheduleStartHour * 60
	end := domain.ScheduleEndHour * 60

	if minutes < start || minutes >= end {
		return fmt.Errorf("%w: time %s is outside working hours", ErrInvalidTimeSlot, slot)
	}

	if (minutes-start)%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: time %s is not aligned to the schedule grid", ErrInvalidTimeSlot, slot)
	}

	return nil
}

// hasConflict проверяет конфликт слота с активными записями.
// Правила совпадают с расчетом доступных слотов: слот занят, начинается
// внутри заблокированного интервала записи или запрашиваемая процедура
// пересекается с ним.
func hasConflict(slot types.TimeString, bookings []*domain.BookingDetails, requestedDuration int) bool {
	slotMinutes, err := slot.Minutes()
	if err != nil {
		return true
	}

	for _, b := range bookings {
		// Отмененные записи не блокируют слот
		if !b.IsActive() {
			continue
		}

		bookingMinutes, err := b.BookingTime.Minutes()
		if err != nil {
			continue
		}

		if b.BookingTime == slot {
			return true
		}

		bookingDuration := requestedDuration
		if b.ServiceDuration != nil && *b.ServiceDuration > 0 {
			bookingDuration = *b.ServiceDuration
		}
		blockedUntil := bookingMinutes + bookingDuration + domain.CleanupBufferMinutes

		if slotMinutes >= bookingMinutes && slotMinutes < blockedUntil {
			return true
		}

		if slotMinutes < blockedUntil && slotMinutes+requestedDuration > bookingMinutes {
			return true
		}
	}

	return false
}
