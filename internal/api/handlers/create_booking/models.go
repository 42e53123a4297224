package create_booking

import (
	"time"

	"github.com/avikhr/SalonBookingService/internal/domain"
	createBooking "github.com/avikhr/SalonBookingService/internal/usecase/create_booking"
	"github.com/avikhr/SalonBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID            int64   `json:"serviceId"`
	Date                 string  `json:"date"` // "2025-10-15"
	Time                 string  `json:"time"` // "10:00"
	Comment              *string `json:"comment,omitempty"`
	TelegramNotification *bool   `json:"telegramNotification,omitempty"` // по умолчанию true
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	bookingTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	telegramNotification := true
	if r.TelegramNotification != nil {
		telegramNotification = *r.TelegramNotification
	}

	return &createBooking.Request{
		UserID:               userID,
		ServiceID:            r.ServiceID,
		Date:                 bookingDate,
		Time:                 bookingTime,
		Comment:              r.Comment,
		TelegramNotification: telegramNotification,
	}, nil
}
