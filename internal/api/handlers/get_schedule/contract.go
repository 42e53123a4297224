package get_schedule

import (
	"context"
	"time"

	"github.com/avikhr/SalonBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetSchedule(ctx context.Context, date time.Time) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
