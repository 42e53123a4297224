package auth

import (
	"context"
	"time"

	"github.com/avikhr/SalonBookingService/internal/domain"
	"github.com/avikhr/SalonBookingService/pkg/auth"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetByPhoneOrEmail(ctx context.Context, phoneOrEmail string) (*domain.User, error)
}

// TokenManager интерфейс для выпуска JWT токенов
type TokenManager interface {
	Generate(userID int64, role string, now time.Time) (string, error)
	Parse(tokenString string) (*auth.Claims, error)
}

// PasswordHasher интерфейс для хеширования паролей
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
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
