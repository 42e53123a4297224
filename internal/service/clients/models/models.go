package models

import (
	"time"

	"github.com/avikhr/SalonBookingService/internal/domain"
)

// ClientResponse клиент со статистикой бронирований
type ClientResponse struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Surname           string     `json:"surname"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
	TelegramConnected bool       `json:"telegramConnected"`
	TotalBookings     int        `json:"totalBookings"`
	LastBooking       *time.Time `json:"lastBooking,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// ClientDetailsResponse клиент с расширенной статистикой
type ClientDetailsResponse struct {
	ClientResponse

	CompletedBookings int `json:"completedBookings"`
	PendingBookings   int `json:"pendingBookings"`
}

// ClientListResponse список клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// FromDomainClientSummary конвертирует domain клиента в response модель
func FromDomainClientSummary(c *domain.ClientSummary) *ClientResponse {
	return &ClientResponse{
		ID:                c.ID,
		Name:              c.Name,
		Surname:           c.Surname,
		Phone:             c.Phone,
		Email:             c.Email,
		TelegramConnected: c.HasTelegram(),
		TotalBookings:     c.TotalBookings,
		LastBooking:       c.LastBooking,
		CreatedAt:         c.CreatedAt,
	}
}

// FromDomainClientDetails конвертирует domain клиента с расширенной статистикой
func FromDomainClientDetails(c *domain.ClientDetails) *ClientDetailsResponse {
	return &ClientDetailsResponse{
		ClientResponse:    *FromDomainClientSummary(&c.ClientSummary),
		CompletedBookings: c.CompletedBookings,
		PendingBookings:   c.PendingBookings,
	}
}

// FromDomainClientList конвертирует список domain клиентов
func FromDomainClientList(clients []*domain.ClientSummary) *ClientListResponse {
	result := ClientListResponse{
		Clients: make([]ClientResponse, 0, len(clients)),
	}
	for _, c := range clients {
		result.Clients = append(result.Clients, *FromDomainClientSummary(c))
	}
	return &result
}
