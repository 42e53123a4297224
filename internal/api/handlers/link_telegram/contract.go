package link_telegram

import (
	"context"

	"github.com/avikhr/SalonBookingService/internal/service/telegram/models"
)

type TelegramService interface {
	CreateLink(ctx context.Context, userID int64) (*models.CreateLinkResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
