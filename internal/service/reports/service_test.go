package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikhr/SalonBookingService/internal/domain"
	bookingModels "github.com/avikhr/SalonBookingService/internal/service/bookings/models"
	"github.com/avikhr/SalonBookingService/internal/service/reports/models"
)

type fakeBookingRepo struct {
	bookings []*domain.BookingDetails
	filter   domain.BookingsFilter
}

func (f *fakeBookingRepo) GetAllWithDetails(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error) {
	f.filter = filter
	return f.bookings, nil
}

type fakeServiceRepo struct {
	services []*domain.Service
}

func (f *fakeServiceRepo) GetAll(ctx context.Context) ([]*domain.Service, error) {
	return f.services, nil
}

type fakeUserRepo struct {
	clients []*domain.ClientSummary
}

func (f *fakeUserRepo) GetClients(ctx context.Context) ([]*domain.ClientSummary, error) {
	return f.clients, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func strPtr(s string) *string {
	return &s
}

func bookingWithStatus(id int64, status domain.BookingStatus, price float64) *domain.BookingDetails {
	return &domain.BookingDetails{
		Booking: domain.Booking{
			ID:          id,
			BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			BookingTime: "10:00",
			Status:      status,
		},
		ServicePrice: price,
	}
}

func newTestService(bookings *fakeBookingRepo) *Service {
	return NewService(
		bookings,
		&fakeServiceRepo{},
		&fakeUserRepo{},
		fixedTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
}

func TestGenerate_FinancialReport(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.BookingDetails{
		bookingWithStatus(1, domain.StatusCompleted, 2000),
		bookingWithStatus(2, domain.StatusCompleted, 1500),
		bookingWithStatus(3, domain.StatusPending, 3000),
		bookingWithStatus(4, domain.StatusCancelled, 500),
	}}
	svc := newTestService(repo)

	resp, err := svc.Generate(context.Background(), &models.GenerateReportRequest{
		Type: models.TypeFinancial,
		Name: "Выручка за месяц",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)

	report := resp.Report
	assert.Equal(t, models.TypeFinancial, report.Type)
	require.NotNil(t, report.Stats.Revenue)
	assert.Equal(t, 3500.0, *report.Stats.Revenue)
	require.NotNil(t, report.Stats.TotalBookings)
	assert.Equal(t, 4, *report.Stats.TotalBookings)
	require.NotNil(t, report.Stats.CompletedBookings)
	assert.Equal(t, 2, *report.Stats.CompletedBookings)

	// Только выполненные записи попадают в данные финансового отчета
	data, ok := report.Data.([]bookingModels.BookingResponse)
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestGenerate_BookingsReportCounters(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.BookingDetails{
		bookingWithStatus(1, domain.StatusCompleted, 2000),
		bookingWithStatus(2, domain.StatusPending, 1500),
		bookingWithStatus(3, domain.StatusPending, 3000),
		bookingWithStatus(4, domain.StatusCancelled, 500),
	}}
	svc := newTestService(repo)

	resp, err := svc.Generate(context.Background(), &models.GenerateReportRequest{
		Type: models.TypeBookings,
		Name: "Записи",
	})

	require.NoError(t, err)
	stats := resp.Report.Stats
	assert.Equal(t, 4, *stats.TotalBookings)
	assert.Equal(t, 1, *stats.CompletedBookings)
	assert.Equal(t, 2, *stats.PendingBookings)
	assert.Equal(t, 1, *stats.CancelledBookings)
	assert.Nil(t, stats.Revenue)

	data, ok := resp.Report.Data.([]bookingModels.BookingResponse)
	require.True(t, ok)
	assert.Len(t, data, 4)
}

func TestGenerate_ReportIDFromClock(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(&fakeBookingRepo{}, &fakeServiceRepo{}, &fakeUserRepo{}, fixedTime{now: now}, nopLogger{})

	resp, err := svc.Generate(context.Background(), &models.GenerateReportRequest{Type: models.TypeBookings})

	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), resp.Report.ID)
	assert.Equal(t, now, resp.Report.CreatedAt)
}

func TestGenerate_InvalidType(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	_, err := svc.Generate(context.Background(), &models.GenerateReportRequest{Type: "unknown"})

	assert.ErrorIs(t, err, ErrInvalidReportType)
}

func TestGenerate_PeriodFilter(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo)

	_, err := svc.Generate(context.Background(), &models.GenerateReportRequest{
		Type:      models.TypeBookings,
		StartDate: strPtr("2026-09-01"),
		EndDate:   strPtr("2026-09-30"),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.filter.StartDate)
	require.NotNil(t, repo.filter.EndDate)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *repo.filter.StartDate)
}

func TestGenerate_PeriodIgnoredWithoutBothDates(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo)

	_, err := svc.Generate(context.Background(), &models.GenerateReportRequest{
		Type:      models.TypeBookings,
		StartDate: strPtr("2026-09-01"),
	})

	require.NoError(t, err)
	assert.Nil(t, repo.filter.StartDate)
	assert.Nil(t, repo.filter.EndDate)
}

func TestGenerate_InvalidPeriod(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	_, err := svc.Generate(context.Background(), &models.GenerateReportRequest{
		Type:      models.TypeBookings,
		StartDate: strPtr("2026-09-30"),
		EndDate:   strPtr("2026-09-01"),
	})

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestHistory_AlwaysEmpty(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	resp := svc.History(context.Background())

	assert.NotNil(t, resp.Reports)
	assert.Empty(t, resp.Reports)
}
