package get_current_user

import (
	"context"

	"github.com/avikhr/SalonBookingService/internal/service/auth/models"
)

type AuthService interface {
	GetCurrentUser(ctx context.Context, userID int64) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
