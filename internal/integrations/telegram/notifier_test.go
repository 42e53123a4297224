package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avikhr/SalonBookingService/internal/domain"
)

func testBooking() *domain.BookingDetails {
	comment := "Первый визит"
	duration := 60
	return &domain.BookingDetails{
		Booking: domain.Booking{
			ID:          15,
			BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			BookingTime: "10:00",
			Status:      domain.StatusPending,
			Comment:     &comment,
		},
		ServiceName:     "Чистка лица",
		ServicePrice:    2500,
		ServiceDuration: &duration,
		UserName:        "Анна",
		UserSurname:     "Иванова",
		UserEmail:       "anna@example.com",
		UserPhone:       "+79991234567",
	}
}

func TestUserBookingMessage(t *testing.T) {
	msg := userBookingMessage(testBooking())

	assert.Contains(t, msg, "Вы записались на услугу")
	assert.Contains(t, msg, "Анна Иванова")
	assert.Contains(t, msg, "Чистка лица")
	assert.Contains(t, msg, "2500 руб.")
	assert.Contains(t, msg, "2026-09-01")
	assert.Contains(t, msg, "10:00")
	assert.Contains(t, msg, "Ожидание подтверждения")
	assert.Contains(t, msg, "Первый визит")
}

func TestUserBookingMessage_NoComment(t *testing.T) {
	booking := testBooking()
	booking.Comment = nil

	msg := userBookingMessage(booking)

	assert.NotContains(t, msg, "Комментарий")
}

func TestAdminBookingMessage(t *testing.T) {
	msg := adminBookingMessage(testBooking())

	assert.Contains(t, msg, "НОВАЯ ЗАПИСЬ")
	assert.Contains(t, msg, "anna@example.com")
	assert.Contains(t, msg, "+79991234567")
	assert.Contains(t, msg, "60 мин.")
	assert.Contains(t, msg, "ID записи: 15")
}

func TestStatusMessage(t *testing.T) {
	msg := statusMessage(testBooking(), domain.StatusConfirmed)

	assert.Contains(t, msg, "Статус вашей записи изменен")
	assert.Contains(t, msg, "Подтверждено")
	assert.Contains(t, msg, "Ждем вас в салоне")

	msg = statusMessage(testBooking(), domain.StatusCancelled)
	assert.Contains(t, msg, "Отменено")
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "⏳ Ожидание подтверждения", statusText(domain.StatusPending))
	assert.Equal(t, "✅ Подтверждено", statusText(domain.StatusConfirmed))
	assert.Equal(t, "✅ Завершено", statusText(domain.StatusCompleted))
	assert.Equal(t, "❌ Отменено", statusText(domain.StatusCancelled))
	assert.Equal(t, "unknown", statusText(domain.BookingStatus("unknown")))
}

func TestLinkCodePattern(t *testing.T) {
	assert.True(t, linkCodeRe.MatchString("ABC123"))
	assert.True(t, linkCodeRe.MatchString("000000"))
	assert.False(t, linkCodeRe.MatchString("abc123"))
	assert.False(t, linkCodeRe.MatchString("ABC12"))
	assert.False(t, linkCodeRe.MatchString("ABC1234"))
	assert.False(t, linkCodeRe.MatchString("AB C12"))
}
