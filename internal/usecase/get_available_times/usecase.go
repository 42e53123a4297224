package get_available_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/avikhr/SalonBookingService/internal/domain"
	serviceRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/service"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute вычисляет доступные слоты на дату для записи на услугу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу - ее длительность определяет занимаемый интервал
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableTimes: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableTimes: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем активные бронирования на дату
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get bookings for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Генерируем сетку и фильтруем по конфликтам
	allSlots := generateTimeSlots()
	availableSlots := computeAvailableSlots(allSlots, bookings, service.EffectiveDuration())

	uc.logger.Info("GetAvailableTimes: %d of %d slots available for service=%d, date=%s",
		len(availableSlots), len(allSlots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		AvailableSlots: availableSlots,
		AllSlots:       allSlots,
	}, nil
}
