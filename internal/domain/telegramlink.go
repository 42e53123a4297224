package domain

import "time"

// TelegramLink represents a pending or verified account link code.
// Код живет один час, верифицируется ботом при вводе кода в чате.
type TelegramLink struct {
	ID               int64
	UserID           int64
	LinkCode         string
	TelegramID       *string
	TelegramUsername *string
	IsVerified       bool
	ExpiresAt        time.Time
	VerifiedAt       *time.Time
	CreatedAt        time.Time
}

// IsExpired returns true if the link code is past its expiry time
func (l *TelegramLink) IsExpired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}
