package domain

import "time"

// UserRole represents the access role of a user
type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

// User represents a registered user of the salon
type User struct {
	ID               int64
	Name             string
	Surname          string
	Phone            string
	Email            string
	PasswordHash     string
	Role             UserRole
	TelegramID       *string
	TelegramUsername *string
	CreatedAt        time.Time
}

// IsAdmin returns true if the user has administrator access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasTelegram returns true if the user has a linked Telegram account
func (u *User) HasTelegram() bool {
	return u.TelegramID != nil && *u.TelegramID != ""
}

// ClientSummary клиент с агрегированной статистикой бронирований
// (для списка клиентов в админке)
type ClientSummary struct {
	User

	TotalBookings int
	LastBooking   *time.Time
}

// ClientDetails клиент с расширенной статистикой
type ClientDetails struct {
	ClientSummary

	CompletedBookings int
	PendingBookings   int
}
