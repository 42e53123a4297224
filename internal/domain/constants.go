package domain

// Slot grid configuration.
// Сетка слотов фиксированная для всего салона и не зависит от запроса.
const (
	ScheduleStartHour = 9
	ScheduleEndHour   = 18
	SlotStepMinutes   = 30
)

// Booking time policy
const (
	// DefaultServiceDurationMinutes применяется, когда у услуги не указана длительность
	DefaultServiceDurationMinutes = 60

	// CleanupBufferMinutes буфер после процедуры на уборку и подготовку кабинета.
	// Добавляется только к длительности СУЩЕСТВУЮЩЕГО бронирования.
	CleanupBufferMinutes = 30
)

// Validation constants
const (
	LinkCodeLength        = 6
	LinkCodeExpiryMinutes = 60
	MaxCommentLength      = 500
	MinPasswordLength     = 6
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
