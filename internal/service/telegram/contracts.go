package telegram

import (
	"context"
	"time"

	"github.com/avikhr/SalonBookingService/internal/domain"
)

// LinkRepository интерфейс репозитория кодов привязки
type LinkRepository interface {
	Replace(ctx context.Context, userID int64, code string, expiresAt time.Time) (*domain.TelegramLink, error)
	GetByCode(ctx context.Context, code string) (*domain.TelegramLink, error)
	GetActiveByCode(ctx context.Context, code string, now time.Time) (*domain.TelegramLink, error)
	Verify(ctx context.Context, linkID int64, telegramID, telegramUsername *string, now time.Time) (int64, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateTelegram(ctx context.Context, userID int64, telegramID, telegramUsername *string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider предоставляет текущее время
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
