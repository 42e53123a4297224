package get_available_times

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikhr/SalonBookingService/internal/domain"
	serviceRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/service"
	"github.com/avikhr/SalonBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.BookingDetails
	err      error
}

func (f *fakeBookingRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.BookingDetails, error) {
	return f.bookings, f.err
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return f.service, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_ReturnsFullGridForEmptyDay(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeServiceRepo{service: &domain.Service{ID: 1, Name: "Маникюр", DurationMinutes: intPtr(60)}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Len(t, resp.AllSlots, 18)
	assert.Equal(t, resp.AllSlots, resp.AvailableSlots)
}

func TestExecute_FiltersConflictingSlots(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.BookingDetails{
			bookingAt("10:00", intPtr(60)),
		}},
		&fakeServiceRepo{service: &domain.Service{ID: 1, Name: "Маникюр", DurationMinutes: intPtr(30)}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Len(t, resp.AllSlots, 18)
	assert.NotContains(t, resp.AvailableSlots, types.TimeString("10:30"))
	assert.Contains(t, resp.AvailableSlots, types.TimeString("11:30"))
}

func TestExecute_ServiceWithoutDurationDefaultsToHour(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.BookingDetails{
			bookingAt("10:00", intPtr(30)),
		}},
		&fakeServiceRepo{service: &domain.Service{ID: 1, Name: "Пилинг"}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	// Услуга без длительности считается часовой: процедура в 09:30
	// пересеклась бы с записью в 10:00, а в 09:00 заканчивается ровно к ней
	assert.NotContains(t, resp.AvailableSlots, types.TimeString("09:30"))
	assert.Contains(t, resp.AvailableSlots, types.TimeString("09:00"))
	assert.Contains(t, resp.AvailableSlots, types.TimeString("11:00"))
}

func TestExecute_RepeatedCallReturnsSameResult(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.BookingDetails{
			bookingAt("10:00", intPtr(60)),
			bookingAt("15:30", nil),
		}},
		&fakeServiceRepo{service: &domain.Service{ID: 1, Name: "Маникюр", DurationMinutes: intPtr(30)}},
		nopLogger{},
	)

	req := &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeServiceRepo{err: serviceRepo.ErrServiceNotFound},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 42,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeServiceRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
