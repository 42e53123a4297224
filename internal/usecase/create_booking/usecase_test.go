package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikhr/SalonBookingService/internal/domain"
	serviceRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/service"
	userRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/user"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	existing []*domain.BookingDetails
	created  *domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.BookingDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return &domain.BookingDetails{Booking: *f.created}, nil
}

func (f *fakeBookingRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.BookingDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.existing, nil
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return f.user, f.err
}

type fakeNotifier struct {
	mu       sync.Mutex
	notified []int64
}

func (f *fakeNotifier) NotifyBookingCreated(ctx context.Context, booking *domain.BookingDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.notified = append(f.notified, booking.ID)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func intPtr(v int) *int {
	return &v
}

func newTestUseCase(bookings *fakeBookingRepo) *UseCase {
	return NewUseCase(
		bookings,
		&fakeServiceRepo{service: &domain.Service{
			ID:              2,
			Name:            "Чистка лица",
			Price:           2500,
			DurationMinutes: intPtr(60),
		}},
		&fakeUserRepo{user: &domain.User{ID: 1, Role: domain.RoleClient}},
		&fakeNotifier{},
		fakeTxManager{},
		nopLogger{},
	)
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{nextID: 10}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:               1,
		ServiceID:            2,
		Date:                 time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:                 "10:00",
		TelegramNotification: true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Чистка лица", resp.ServiceName)
	assert.Equal(t, 2500.0, resp.ServicePrice)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeBookingRepo{
		nextID: 10,
		existing: []*domain.BookingDetails{
			{
				Booking: domain.Booking{
					BookingTime: "10:00",
					Status:      domain.StatusConfirmed,
				},
				ServiceDuration: intPtr(60),
			},
		},
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 2,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:      "10:30",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_MisalignedTime(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{nextID: 10})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 2,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:      "10:15",
	})

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{nextID: 10},
		&fakeServiceRepo{err: serviceRepo.ErrServiceNotFound},
		&fakeUserRepo{user: &domain.User{ID: 1}},
		&fakeNotifier{},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 99,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:      "10:00",
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_UserNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{nextID: 10},
		&fakeServiceRepo{service: &domain.Service{ID: 2}},
		&fakeUserRepo{err: userRepo.ErrUserNotFound},
		&fakeNotifier{},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    99,
		ServiceID: 2,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:      "10:00",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}
