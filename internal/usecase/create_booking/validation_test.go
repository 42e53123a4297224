package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avikhr/SalonBookingService/internal/domain"
	"github.com/avikhr/SalonBookingService/pkg/types"
)

func validRequest() *Request {
	return &Request{
		UserID:    1,
		ServiceID: 2,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:      "10:00",
	}
}

func TestValidateRequest_OK(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))
}

func TestValidateRequest_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(req *Request)
	}{
		{"zero user", func(req *Request) { req.UserID = 0 }},
		{"zero service", func(req *Request) { req.ServiceID = 0 }},
		{"zero date", func(req *Request) { req.Date = time.Time{} }},
		{"empty time", func(req *Request) { req.Time = "" }},
		{"malformed time", func(req *Request) { req.Time = "25:99" }},
		{"comment too long", func(req *Request) {
			comment := strings.Repeat("а", domain.MaxCommentLength+1)
			req.Comment = &comment
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}

func TestValidateTimeSlot(t *testing.T) {
	tests := []struct {
		slot types.TimeString
		ok   bool
	}{
		{"09:00", true},
		{"17:30", true},
		{"12:30", true},
		{"08:30", false}, // до открытия
		{"18:00", false}, // после закрытия
		{"10:15", false}, // мимо сетки
	}

	for _, tt := range tests {
		t.Run(string(tt.slot), func(t *testing.T) {
			err := validateTimeSlot(tt.slot)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTimeSlot)
			}
		})
	}
}

func TestHasConflict(t *testing.T) {
	duration := 60
	existing := []*domain.BookingDetails{
		{
			Booking: domain.Booking{
				BookingTime: "10:00",
				Status:      domain.StatusPending,
			},
			ServiceDuration: &duration,
		},
	}

	// Занятый слот
	assert.True(t, hasConflict("10:00", existing, 30))
	// Внутри заблокированного интервала (до 11:30 с уборкой)
	assert.True(t, hasConflict("11:00", existing, 30))
	// Часовая процедура в 09:30 пересекается с записью
	assert.True(t, hasConflict("09:30", existing, 60))
	// Получасовая процедура в 09:30 заканчивается к началу записи
	assert.False(t, hasConflict("09:30", existing, 30))
	// После заблокированного интервала
	assert.False(t, hasConflict("11:30", existing, 60))
}

func TestHasConflict_CancelledBookingIgnored(t *testing.T) {
	duration := 60
	existing := []*domain.BookingDetails{
		{
			Booking: domain.Booking{
				BookingTime: "10:00",
				Status:      domain.StatusCancelled,
			},
			ServiceDuration: &duration,
		},
	}

	// Отмененная запись освобождает и слот, и заблокированный интервал
	assert.False(t, hasConflict("10:00", existing, 60))
	assert.False(t, hasConflict("11:00", existing, 30))
	assert.False(t, hasConflict("09:30", existing, 60))
}
