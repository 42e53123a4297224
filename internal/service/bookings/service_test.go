package bookings

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikhr/SalonBookingService/internal/domain"
	bookingRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/booking"
	"github.com/avikhr/SalonBookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	mu        sync.Mutex
	byID      map[int64]*domain.BookingDetails
	all       []*domain.BookingDetails
	deleted   []int64
	statuses  map[int64]domain.BookingStatus
	getAllErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		byID:     make(map[int64]*domain.BookingDetails),
		statuses: make(map[int64]domain.BookingStatus),
	}
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.BookingDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.BookingDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []*domain.BookingDetails
	for _, b := range f.all {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) GetAllWithDetails(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.all, f.getAllErr
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.statuses[id] = status
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	status []domain.BookingStatus
}

func (f *fakeNotifier) NotifyBookingStatus(ctx context.Context, booking *domain.BookingDetails, status domain.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.status = append(f.status, status)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func details(id, userID int64) *domain.BookingDetails {
	return &domain.BookingDetails{
		Booking: domain.Booking{
			ID:          id,
			UserID:      userID,
			BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			BookingTime: "10:00",
			Status:      domain.StatusPending,
		},
		ServiceName: "Маникюр",
		UserName:    "Анна",
		UserSurname: "Иванова",
	}
}

func TestDeleteBooking_Owner(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[1] = details(1, 7)
	svc := NewService(repo, &fakeNotifier{}, nopLogger{})

	err := svc.DeleteBooking(context.Background(), 1, 7, false)

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestDeleteBooking_NotOwner(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[1] = details(1, 7)
	svc := NewService(repo, &fakeNotifier{}, nopLogger{})

	err := svc.DeleteBooking(context.Background(), 1, 8, false)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

func TestDeleteBooking_Admin(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[1] = details(1, 7)
	svc := NewService(repo, &fakeNotifier{}, nopLogger{})

	err := svc.DeleteBooking(context.Background(), 1, 99, true)

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestDeleteBooking_NotFoundForClient(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, &fakeNotifier{}, nopLogger{})

	// Несуществующая запись для клиента неотличима от чужой
	err := svc.DeleteBooking(context.Background(), 1, 7, false)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[1] = details(1, 7)
	svc := NewService(repo, &fakeNotifier{}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "done"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, &fakeNotifier{}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_OK(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[1] = details(1, 7)
	svc := NewService(repo, &fakeNotifier{}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.statuses[1])
}

func TestGetSchedule(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.all = []*domain.BookingDetails{details(1, 7)}
	svc := NewService(repo, &fakeNotifier{}, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, resp.Schedule, 1)
	entry := resp.Schedule[0]
	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, "10:00", entry.Time)
	assert.True(t, entry.Booked)
	assert.Equal(t, "Анна Иванова", entry.ClientName)
	assert.Equal(t, "Маникюр", entry.ServiceName)
}
