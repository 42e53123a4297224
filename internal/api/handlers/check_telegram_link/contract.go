package check_telegram_link

import (
	"context"

	"github.com/avikhr/SalonBookingService/internal/service/telegram/models"
)

type TelegramService interface {
	CheckLink(ctx context.Context, code string) (*models.CheckLinkResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
