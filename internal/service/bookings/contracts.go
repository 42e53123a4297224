package bookings

import (
	"context"

	"github.com/avikhr/SalonBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingDetails, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.BookingDetails, error)
	GetAllWithDetails(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

// Notifier интерфейс отправки Telegram уведомлений
type Notifier interface {
	NotifyBookingStatus(ctx context.Context, booking *domain.BookingDetails, status domain.BookingStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
