package generate_report

import (
	"context"

	"github.com/avikhr/SalonBookingService/internal/service/reports/models"
)

type ReportsService interface {
	Generate(ctx context.Context, req *models.GenerateReportRequest) (*models.GenerateReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
