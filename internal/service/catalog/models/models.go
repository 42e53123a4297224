package models

import (
	"time"

	"github.com/avikhr/SalonBookingService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Duration    *int    `json:"duration,omitempty"`
}

// UpdateServiceRequest запрос на обновление услуги
type UpdateServiceRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Duration    *int    `json:"duration,omitempty"`
}

// Response модели

// ServiceResponse данные услуги в ответах
type ServiceResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Duration    *int      `json:"duration,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain услугу в response модель
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.DurationMinutes,
		CreatedAt:   s.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список domain услуг
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	result := ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, s := range services {
		result.Services = append(result.Services, *FromDomainService(s))
	}
	return &result
}
