package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/avikhr/SalonBookingService/internal/domain"
	bookingModels "github.com/avikhr/SalonBookingService/internal/service/bookings/models"
	catalogModels "github.com/avikhr/SalonBookingService/internal/service/catalog/models"
	clientModels "github.com/avikhr/SalonBookingService/internal/service/clients/models"
	"github.com/avikhr/SalonBookingService/internal/service/reports/models"
	"github.com/avikhr/SalonBookingService/pkg/ptr"
)

// Service сервис формирования отчетов.
// Отчеты строятся на лету и не сохраняются.
type Service struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	userRepo UserRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Generate формирует отчет заданного типа за опциональный период
func (s *Service) Generate(ctx context.Context, req *models.GenerateReportRequest) (*models.GenerateReportResponse, error) {
	s.logger.Info("Generate: generating report type=%s name=%s", req.Type, req.Name)

	if !models.IsValidType(req.Type) {
		s.logger.Warn("Generate: invalid report type=%s", req.Type)
		return nil, ErrInvalidReportType
	}

	filter, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("Generate: invalid period for report type=%s: %v", req.Type, err)
		return nil, err
	}

	now := s.timeProvider.Now()
	report := models.Report{
		ID:        now.UnixMilli(),
		Type:      req.Type,
		Name:      req.Name,
		CreatedAt: now,
	}

	switch req.Type {
	case models.TypeFinancial, models.TypeBookings:
		bookings, err := s.bookingRepo.GetAllWithDetails(ctx, filter)
		if err != nil {
			s.logger.Error("Generate: repository error fetching bookings: %v", err)
			return nil, fmt.Errorf("%w: Generate - fetch bookings: %v", ErrInternal, err)
		}
		s.fillBookingsReport(&report, req.Type, bookings)

	case models.TypeClients:
		clients, err := s.userRepo.GetClients(ctx)
		if err != nil {
			s.logger.Error("Generate: repository error fetching clients: %v", err)
			return nil, fmt.Errorf("%w: Generate - fetch clients: %v", ErrInternal, err)
		}
		report.Stats.TotalClients = ptr.Ptr(len(clients))
		report.Data = clientModels.FromDomainClientList(clients).Clients

	case models.TypeServices:
		services, err := s.serviceRepo.GetAll(ctx)
		if err != nil {
			s.logger.Error("Generate: repository error fetching services: %v", err)
			return nil, fmt.Errorf("%w: Generate - fetch services: %v", ErrInternal, err)
		}
		report.Stats.TotalServices = ptr.Ptr(len(services))
		report.Data = catalogModels.FromDomainServiceList(services).Services
	}

	s.logger.Info("Generate: report type=%s generated successfully", req.Type)
	return &models.GenerateReportResponse{Success: true, Report: report}, nil
}

// History возвращает историю отчетов. Отчеты не сохраняются,
// история всегда пуста.
func (s *Service) History(ctx context.Context) *models.HistoryResponse {
	s.logger.Info("History: fetching reports history")
	return &models.HistoryResponse{Reports: []models.Report{}}
}

func (s *Service) fillBookingsReport(report *models.Report, reportType string, bookings []*domain.BookingDetails) {
	var completed, pending, cancelled int
	var revenue float64
	completedBookings := make([]*domain.BookingDetails, 0)

	for _, b := range bookings {
		switch b.Status {
		case domain.StatusCompleted:
			completed++
			revenue += b.ServicePrice
			completedBookings = append(completedBookings, b)
		case domain.StatusPending:
			pending++
		case domain.StatusCancelled:
			cancelled++
		}
	}

	if reportType == models.TypeFinancial {
		// Финансовый отчет - только выполненные записи и выручка по ним
		report.Stats.Revenue = ptr.Ptr(revenue)
		report.Stats.TotalBookings = ptr.Ptr(len(bookings))
		report.Stats.CompletedBookings = ptr.Ptr(completed)
		report.Stats.PendingBookings = ptr.Ptr(pending)
		report.Data = bookingModels.FromDomainBookingList(completedBookings).Bookings
		return
	}

	report.Stats.TotalBookings = ptr.Ptr(len(bookings))
	report.Stats.CompletedBookings = ptr.Ptr(completed)
	report.Stats.PendingBookings = ptr.Ptr(pending)
	report.Stats.CancelledBookings = ptr.Ptr(cancelled)
	report.Data = bookingModels.FromDomainBookingList(bookings).Bookings
}

func parsePeriod(startDate, endDate *string) (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	// Период применяется только когда заданы обе границы
	if startDate == nil || endDate == nil {
		return filter, nil
	}

	start, err := time.Parse(domain.DateFormat, *startDate)
	if err != nil {
		return filter, fmt.Errorf("%w: invalid startDate", ErrInvalidPeriod)
	}
	end, err := time.Parse(domain.DateFormat, *endDate)
	if err != nil {
		return filter, fmt.Errorf("%w: invalid endDate", ErrInvalidPeriod)
	}
	if end.Before(start) {
		return filter, fmt.Errorf("%w: endDate before startDate", ErrInvalidPeriod)
	}

	filter.StartDate = &start
	filter.EndDate = &end
	return filter, nil
}
