package models

import (
	"time"
)

// Типы отчетов
const (
	TypeFinancial = "financial"
	TypeBookings  = "bookings"
	TypeClients   = "clients"
	TypeServices  = "services"
)

// ValidTypes все поддерживаемые типы отчетов
var ValidTypes = []string{TypeFinancial, TypeBookings, TypeClients, TypeServices}

// IsValidType проверяет, что строка является поддерживаемым типом отчета
func IsValidType(t string) bool {
	for _, valid := range ValidTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// Request модели

// GenerateReportRequest запрос на формирование отчета
type GenerateReportRequest struct {
	Type      string  `json:"type"`
	Name      string  `json:"name"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
}

// Response модели

// ReportStats агрегированная статистика отчета.
// Набор заполненных полей зависит от типа отчета.
type ReportStats struct {
	Revenue           *float64 `json:"revenue,omitempty"`
	TotalBookings     *int     `json:"totalBookings,omitempty"`
	CompletedBookings *int     `json:"completedBookings,omitempty"`
	PendingBookings   *int     `json:"pendingBookings,omitempty"`
	CancelledBookings *int     `json:"cancelledBookings,omitempty"`
	TotalClients      *int     `json:"totalClients,omitempty"`
	TotalServices     *int     `json:"totalServices,omitempty"`
}

// Report сформированный отчет
type Report struct {
	ID        int64       `json:"id"`
	Type      string      `json:"type"`
	Name      string      `json:"name"`
	Data      interface{} `json:"data"`
	Stats     ReportStats `json:"stats"`
	CreatedAt time.Time   `json:"createdAt"`
}

// GenerateReportResponse ответ на формирование отчета
type GenerateReportResponse struct {
	Success bool   `json:"success"`
	Report  Report `json:"report"`
}

// HistoryResponse история сформированных отчетов.
// Отчеты не сохраняются, история всегда пуста.
type HistoryResponse struct {
	Reports []Report `json:"reports"`
}
