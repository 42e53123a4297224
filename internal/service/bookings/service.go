package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avikhr/SalonBookingService/internal/domain"
	bookingRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/booking"
	"github.com/avikhr/SalonBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetUserBookings получает историю бронирований пользователя, новые первыми
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// GetAllBookings получает все бронирования с опциональной фильтрацией
// по периоду и статусу (админский список)
func (s *Service) GetAllBookings(ctx context.Context, req *models.GetAllBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetAllBookings: fetching all bookings")

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAllBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetAllWithDetails(ctx, filter)
	if err != nil {
		s.logger.Error("GetAllBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус бронирования и уведомляет клиента в Telegram.
// Сбой уведомления не откатывает смену статуса.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking=%d to status=%s", id, req.Status)

	if !domain.IsValidStatus(req.Status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking=%d", req.Status, id)
		return ErrInvalidStatus
	}
	status := domain.BookingStatus(req.Status)

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.notifyStatusChanged(id, status)

	s.logger.Info("UpdateStatus: booking=%d updated to status=%s", id, status)
	return nil
}

// DeleteBooking удаляет бронирование.
// Клиент может удалить только свою запись, администратор - любую.
func (s *Service) DeleteBooking(ctx context.Context, id, userID int64, isAdmin bool) error {
	s.logger.Info("DeleteBooking: deleting booking=%d by user=%d", id, userID)

	if !isAdmin {
		booking, err := s.bookingRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("DeleteBooking: booking=%d not found", id)
				return ErrAccessDenied
			}
			s.logger.Error("DeleteBooking: repository error for booking=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteBooking - repository error: %v", ErrInternal, err)
		}
		if booking.UserID != userID {
			s.logger.Warn("DeleteBooking: access denied for user=%d to booking=%d", userID, id)
			return ErrAccessDenied
		}
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("DeleteBooking: booking=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("DeleteBooking: repository error for booking=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBooking - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBooking: booking=%d deleted", id)
	return nil
}

// GetSchedule получает занятые слоты на дату, включая отмененные записи
func (s *Service) GetSchedule(ctx context.Context, date time.Time) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for date=%s", date.Format(domain.DateFormat))

	filter := domain.BookingsFilter{StartDate: &date, EndDate: &date}
	bookings, err := s.bookingRepo.GetAllWithDetails(ctx, filter)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	schedule := models.ScheduleResponse{
		Schedule: make([]models.ScheduleEntry, 0, len(bookings)),
	}
	for _, b := range bookings {
		schedule.Schedule = append(schedule.Schedule, models.ScheduleEntry{
			ID:          b.ID,
			Time:        string(b.BookingTime),
			Booked:      true,
			ClientName:  b.UserName + " " + b.UserSurname,
			ServiceName: b.ServiceName,
		})
	}

	s.logger.Info("GetSchedule: fetched %d entries for date=%s", len(schedule.Schedule), date.Format(domain.DateFormat))
	return &schedule, nil
}

// notifyStatusChanged отправляет уведомление о смене статуса в фоне.
// Ошибки уведомлений только логируются.
func (s *Service) notifyStatusChanged(bookingID int64, status domain.BookingStatus) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		booking, err := s.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			s.logger.Error("notifyStatusChanged: failed to load booking=%d: %v", bookingID, err)
			return
		}

		if err := s.notifier.NotifyBookingStatus(ctx, booking, status); err != nil {
			s.logger.Error("notifyStatusChanged: notification failed for booking=%d: %v", bookingID, err)
		}
	}()
}
