package telegram

import (
	"context"

	"github.com/avikhr/SalonBookingService/internal/domain"
)

// LinkService интерфейс сервиса привязки аккаунтов
type LinkService interface {
	VerifyLink(ctx context.Context, code string, telegramID, telegramUsername *string) (*domain.User, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetAdminsWithTelegram(ctx context.Context) ([]*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
