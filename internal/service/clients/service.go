package clients

import (
	"context"
	"errors"
	"fmt"

	userRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/user"
	"github.com/avikhr/SalonBookingService/internal/service/clients/models"
)

// Service сервис для работы с клиентской базой
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// List получает всех клиентов со статистикой бронирований
func (s *Service) List(ctx context.Context) (*models.ClientListResponse, error) {
	s.logger.Info("List: fetching clients")

	clients, err := s.userRepo.GetClients(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// GetByID получает клиента с расширенной статистикой
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ClientDetailsResponse, error) {
	s.logger.Info("GetByID: fetching client id=%d", id)

	client, err := s.userRepo.GetClientDetails(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched client id=%d", id)
	return models.FromDomainClientDetails(client), nil
}
