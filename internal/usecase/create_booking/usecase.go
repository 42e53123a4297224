package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avikhr/SalonBookingService/internal/domain"
	serviceRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/service"
	userRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/user"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	userRepo    UserRepository
	notifier    Notifier
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	userRepo UserRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов и вставка выполняются в сериализуемой транзакции
// с блокировкой записей дня - две конкурентные записи на один слот
// не смогут зафиксироваться обе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, service=%d, date=%s, time=%s",
		req.UserID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем попадание времени в сетку расписания
	if err := validateTimeSlot(req.Time); err != nil {
		uc.logger.Warn("CreateBooking: time slot validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Проверяем существование пользователя
	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 5. Выполняем проверку конфликтов и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем активные бронирования дня с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Перепроверяем доступность слота
		if hasConflict(req.Time, bookings, service.EffectiveDuration()) {
			uc.logger.Warn("CreateBooking: slot %s on %s is not available",
				req.Time, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 5.3. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			UserID:               req.UserID,
			ServiceID:            req.ServiceID,
			BookingDate:          req.Date,
			BookingTime:          req.Time,
			Status:               domain.StatusPending,
			Comment:              req.Comment,
			TelegramNotification: req.TelegramNotification,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 6. Уведомляем клиента и администраторов в фоне
	uc.notifyCreated(result.ID)

	return &Response{
		ID:                   result.ID,
		UserID:               result.UserID,
		ServiceID:            result.ServiceID,
		Date:                 result.BookingDate.Format(domain.DateFormat),
		Time:                 string(result.BookingTime),
		Status:               string(result.Status),
		Comment:              result.Comment,
		TelegramNotification: result.TelegramNotification,
		CreatedAt:            result.CreatedAt,
		ServiceName:          service.Name,
		ServicePrice:         service.Price,
	}, nil
}

// notifyCreated отправляет уведомления о новой записи в фоне.
// Ошибки уведомлений только логируются и не влияют на результат.
func (uc *UseCase) notifyCreated(bookingID int64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load booking=%d for notification: %v", bookingID, err)
			return
		}

		if err := uc.notifier.NotifyBookingCreated(ctx, booking); err != nil {
			uc.logger.Error("CreateBooking: notification failed for booking=%d: %v", bookingID, err)
		}
	}()
}
