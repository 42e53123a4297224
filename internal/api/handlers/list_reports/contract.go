package list_reports

import (
	"context"

	"github.com/avikhr/SalonBookingService/internal/service/reports/models"
)

type ReportsService interface {
	History(ctx context.Context) *models.HistoryResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
