package models

import (
	"github.com/avikhr/SalonBookingService/internal/domain"
)

// Request модели

// RegisterRequest запрос на регистрацию клиента
type RegisterRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest запрос на вход клиента (телефон или email)
type LoginRequest struct {
	PhoneOrEmail string `json:"phoneOrEmail"`
	Password     string `json:"password"`
}

// AdminLoginRequest запрос на вход администратора
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response модели

// UserResponse данные пользователя в ответах
type UserResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Surname           string  `json:"surname"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Role              string  `json:"role"`
	TelegramConnected bool    `json:"telegramConnected"`
	TelegramID        *string `json:"telegramId,omitempty"`
	TelegramUsername  *string `json:"telegramUsername,omitempty"`
}

// AuthResponse ответ на успешную аутентификацию
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// FromDomainUser конвертирует domain пользователя в response модель
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Surname:           u.Surname,
		Email:             u.Email,
		Phone:             u.Phone,
		Role:              string(u.Role),
		TelegramConnected: u.HasTelegram(),
		TelegramID:        u.TelegramID,
		TelegramUsername:  u.TelegramUsername,
	}
}
