package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avikhr/SalonBookingService/internal/domain"
	serviceRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/service"
	"github.com/avikhr/SalonBookingService/internal/service/catalog/models"
)

// Service сервис каталога услуг салона
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает все услуги, отсортированные по названию
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching services")

	services, err := s.serviceRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// GetByID возвращает услугу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainService(service), nil
}

// Create создает новую услугу
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%s category=%s", req.Name, req.Category)

	if err := validateService(req.Name, req.Price, req.Duration); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	service := &domain.Service{
		Name:            strings.TrimSpace(req.Name),
		Category:        strings.TrimSpace(req.Category),
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.Duration,
	}

	service, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service created id=%d", service.ID)
	return models.FromDomainService(service), nil
}

// Update обновляет услугу
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	if err := validateService(req.Name, req.Price, req.Duration); err != nil {
		s.logger.Warn("Update: validation failed for service=%d: %v", id, err)
		return nil, err
	}

	service := &domain.Service{
		ID:              id,
		Name:            strings.TrimSpace(req.Name),
		Category:        strings.TrimSpace(req.Category),
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.Duration,
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload service=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload service: %v", ErrInternal, err)
	}

	s.logger.Info("Update: service updated id=%d", id)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting service id=%d", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: service deleted id=%d", id)
	return nil
}

func validateService(name string, price float64, duration *int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if duration != nil && *duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}
