package delete_booking

import (
	"context"
)

type BookingsService interface {
	DeleteBooking(ctx context.Context, id, userID int64, isAdmin bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
