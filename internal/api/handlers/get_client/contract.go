package get_client

import (
	"context"

	"github.com/avikhr/SalonBookingService/internal/service/clients/models"
)

type ClientsService interface {
	GetByID(ctx context.Context, id int64) (*models.ClientDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
