package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikhr/SalonBookingService/internal/domain"
	serviceRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/service"
	"github.com/avikhr/SalonBookingService/internal/service/catalog/models"
)

type fakeServiceRepo struct {
	byID    map[int64]*domain.Service
	nextID  int64
	deleted []int64
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{byID: make(map[int64]*domain.Service), nextID: 1}
}

func (f *fakeServiceRepo) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	created := *service
	created.ID = f.nextID
	f.nextID++
	f.byID[created.ID] = &created
	return &created, nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	service, ok := f.byID[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return service, nil
}

func (f *fakeServiceRepo) GetAll(ctx context.Context) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0, len(f.byID))
	for _, service := range f.byID {
		result = append(result, service)
	}
	return result, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, service *domain.Service) error {
	if _, ok := f.byID[service.ID]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	f.byID[service.ID] = service
	return nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func intPtr(v int) *int {
	return &v
}

func TestCreate_Service(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:     "  Маникюр  ",
		Category: "Ногти",
		Price:    1500,
		Duration: intPtr(60),
	})

	require.NoError(t, err)
	assert.Equal(t, "Маникюр", resp.Name)
	assert.Equal(t, 1500.0, resp.Price)
	require.NotNil(t, resp.Duration)
	assert.Equal(t, 60, *resp.Duration)
}

func TestCreate_Invalid(t *testing.T) {
	svc := NewService(newFakeServiceRepo(), nopLogger{})

	tests := []struct {
		name string
		req  *models.CreateServiceRequest
	}{
		{"empty name", &models.CreateServiceRequest{Name: "  ", Price: 100}},
		{"negative price", &models.CreateServiceRequest{Name: "Маникюр", Price: -1}},
		{"zero duration", &models.CreateServiceRequest{Name: "Маникюр", Price: 100, Duration: intPtr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_ReturnsReloadedService(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateServiceRequest{Name: "Маникюр", Price: 1500})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, &models.UpdateServiceRequest{
		Name:  "Маникюр с покрытием",
		Price: 2000,
	})

	require.NoError(t, err)
	assert.Equal(t, "Маникюр с покрытием", resp.Name)
	assert.Equal(t, 2000.0, resp.Price)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newFakeServiceRepo(), nopLogger{})

	_, err := svc.Update(context.Background(), 99, &models.UpdateServiceRequest{Name: "Маникюр", Price: 100})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateServiceRequest{Name: "Маникюр", Price: 1500})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Equal(t, []int64{created.ID}, repo.deleted)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrServiceNotFound)
}
