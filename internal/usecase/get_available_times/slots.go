package get_available_times

import (
	"github.com/avikhr/SalonBookingService/internal/domain"
	"github.com/avikhr/SalonBookingService/pkg/types"
)

// generateTimeSlots генерирует полную сетку слотов рабочего дня
// с фиксированным шагом. Сетка одинакова для всех дат и услуг.
func generateTimeSlots() []types.TimeString {
	slots := make([]types.TimeString, 0)

	start := domain.ScheduleStartHour * 60
	end := domain.ScheduleEndHour * 60

	for minutes := start; minutes < end; minutes += domain.SlotStepMinutes {
		// Сетка всегда в пределах суток, ошибка диапазона невозможна
		slot, _ := types.NewTimeStringFromMinutes(minutes)
		slots = append(slots, slot)
	}

	return slots
}

// computeAvailableSlots фильтрует сетку слотов по конфликтам с активными
// бронированиями. Слот отклоняется, если:
//   - он занят существующей записью,
//   - он попадает в заблокированный интервал записи
//     (длительность процедуры плюс время на уборку),
//   - запрашиваемая процедура, начатая в этом слоте, пересекается
//     с заблокированным интервалом записи.
func computeAvailableSlots(
	allSlots []types.TimeString,
	bookings []*domain.BookingDetails,
	requestedDuration int,
) []types.TimeString {
	bookedSlots := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		// Отмененные записи освобождают свой слот
		if !b.IsActive() {
			continue
		}
		bookedSlots[b.BookingTime] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(allSlots))

	for _, slot := range allSlots {
		if _, taken := bookedSlots[slot]; taken {
			continue
		}
		if hasConflict(slot, bookings, requestedDuration) {
			continue
		}
		available = append(available, slot)
	}

	return available
}

// hasConflict проверяет пересечение слота с заблокированными интервалами записей
func hasConflict(slot types.TimeString, bookings []*domain.BookingDetails, requestedDuration int) bool {
	slotMinutes, err := slot.Minutes()
	if err != nil {
		return true
	}

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		bookingMinutes, err := b.BookingTime.Minutes()
		if err != nil {
			continue
		}

		// Интервал записи блокируется на длительность процедуры плюс уборка.
		// Запись без длительности услуги наследует длительность запрашиваемой.
		bookingDuration := requestedDuration
		if b.ServiceDuration != nil && *b.ServiceDuration > 0 {
			bookingDuration = *b.ServiceDuration
		}
		blockedUntil := bookingMinutes + bookingDuration + domain.CleanupBufferMinutes

		// Слот начинается внутри заблокированного интервала
		if slotMinutes >= bookingMinutes && slotMinutes < blockedUntil {
			return true
		}

		// Запрашиваемая процедура пересекается с заблокированным интервалом
		if slotMinutes < blockedUntil && slotMinutes+requestedDuration > bookingMinutes {
			return true
		}
	}

	return false
}
