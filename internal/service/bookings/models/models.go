package models

import (
	"errors"
	"time"

	"github.com/avikhr/SalonBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetAllBookingsRequest запрос на получение всех бронирований с фильтрацией
type GetAllBookingsRequest struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Status    *string    `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetAllBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		if !domain.IsValidStatus(*r.Status) {
			return filter, ErrInvalidStatus
		}
		status := domain.BookingStatus(*r.Status)
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse бронирование с данными услуги и клиента
type BookingResponse struct {
	ID                   int64     `json:"id"`
	UserID               int64     `json:"userId"`
	ServiceID            int64     `json:"serviceId"`
	Date                 string    `json:"date"`
	Time                 string    `json:"time"`
	Status               string    `json:"status"`
	Comment              *string   `json:"comment,omitempty"`
	TelegramNotification bool      `json:"telegramNotification"`
	CreatedAt            time.Time `json:"createdAt"`

	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	ServiceDuration *int    `json:"serviceDuration,omitempty"`

	ClientName    string `json:"clientName"`
	ClientSurname string `json:"clientSurname"`
	ClientEmail   string `json:"clientEmail"`
	ClientPhone   string `json:"clientPhone"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ScheduleEntry занятый слот в расписании на день
type ScheduleEntry struct {
	ID          int64  `json:"id"`
	Time        string `json:"time"`
	Booked      bool   `json:"booked"`
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`
}

// ScheduleResponse расписание на день
type ScheduleResponse struct {
	Schedule []ScheduleEntry `json:"schedule"`
}

// FromDomainBookingDetails конвертирует domain бронирование в response модель
func FromDomainBookingDetails(b *domain.BookingDetails) *BookingResponse {
	return &BookingResponse{
		ID:                   b.ID,
		UserID:               b.UserID,
		ServiceID:            b.ServiceID,
		Date:                 b.BookingDate.Format(domain.DateFormat),
		Time:                 string(b.BookingTime),
		Status:               string(b.Status),
		Comment:              b.Comment,
		TelegramNotification: b.TelegramNotification,
		CreatedAt:            b.CreatedAt,
		ServiceName:          b.ServiceName,
		ServicePrice:         b.ServicePrice,
		ServiceDuration:      b.ServiceDuration,
		ClientName:           b.UserName,
		ClientSurname:        b.UserSurname,
		ClientEmail:          b.UserEmail,
		ClientPhone:          b.UserPhone,
	}
}

// FromDomainBookingList конвертирует список domain бронирований
func FromDomainBookingList(bookings []*domain.BookingDetails) *BookingListResponse {
	result := BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBookingDetails(b))
	}
	return &result
}
