package telegram

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/avikhr/SalonBookingService/internal/domain"
	linkRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/telegramlink"
	userRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/user"
	"github.com/avikhr/SalonBookingService/internal/service/telegram/models"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Service сервис привязки Telegram аккаунтов
type Service struct {
	linkRepo     LinkRepository
	userRepo     UserRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса привязки Telegram
func NewService(
	linkRepo LinkRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		linkRepo:     linkRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateLink выпускает новый код привязки для пользователя.
// Старые коды пользователя при этом удаляются.
func (s *Service) CreateLink(ctx context.Context, userID int64) (*models.CreateLinkResponse, error) {
	s.logger.Info("CreateLink: creating link code for user=%d", userID)

	code, err := generateLinkCode()
	if err != nil {
		s.logger.Error("CreateLink: failed to generate code for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: CreateLink - generate code: %v", ErrInternal, err)
	}

	expiresAt := s.timeProvider.Now().Add(domain.LinkCodeExpiryMinutes * time.Minute)
	if _, err := s.linkRepo.Replace(ctx, userID, code, expiresAt); err != nil {
		s.logger.Error("CreateLink: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: CreateLink - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateLink: link code created for user=%d", userID)
	return &models.CreateLinkResponse{LinkCode: code}, nil
}

// CheckLink проверяет, подтвержден ли код привязки.
// Неизвестный код не ошибка - фронтенд опрашивает статус до подтверждения.
func (s *Service) CheckLink(ctx context.Context, code string) (*models.CheckLinkResponse, error) {
	s.logger.Info("CheckLink: checking link code=%s", code)

	link, err := s.linkRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, linkRepo.ErrLinkNotFound) {
			return &models.CheckLinkResponse{Linked: false}, nil
		}
		s.logger.Error("CheckLink: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: CheckLink - repository error: %v", ErrInternal, err)
	}

	if !link.IsVerified {
		return &models.CheckLinkResponse{Linked: false}, nil
	}

	s.logger.Info("CheckLink: link code=%s verified", code)
	return &models.CheckLinkResponse{
		Linked:           true,
		TelegramID:       link.TelegramID,
		TelegramUsername: link.TelegramUsername,
	}, nil
}

// VerifyLink подтверждает код из Telegram бота и привязывает аккаунт
// к пользователю. Обновление кода и пользователя выполняется атомарно.
func (s *Service) VerifyLink(ctx context.Context, code string, telegramID, telegramUsername *string) (*domain.User, error) {
	s.logger.Info("VerifyLink: verifying link code=%s", code)

	var user *domain.User
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		now := s.timeProvider.Now()

		link, err := s.linkRepo.GetActiveByCode(ctx, code, now)
		if err != nil {
			if errors.Is(err, linkRepo.ErrLinkNotFound) {
				return ErrLinkNotFound
			}
			return fmt.Errorf("%w: VerifyLink - get link: %v", ErrInternal, err)
		}

		userID, err := s.linkRepo.Verify(ctx, link.ID, telegramID, telegramUsername, now)
		if err != nil {
			return fmt.Errorf("%w: VerifyLink - verify link: %v", ErrInternal, err)
		}

		if err := s.userRepo.UpdateTelegram(ctx, userID, telegramID, telegramUsername); err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("%w: VerifyLink - update user: %v", ErrInternal, err)
		}

		user, err = s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("%w: VerifyLink - reload user: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrLinkNotFound) {
			s.logger.Warn("VerifyLink: link code=%s not found or expired", code)
		} else {
			s.logger.Error("VerifyLink: failed for code=%s: %v", code, err)
		}
		return nil, err
	}

	s.logger.Info("VerifyLink: telegram linked to user=%d", user.ID)
	return user, nil
}

// Unlink отвязывает Telegram аккаунт от пользователя.
// Коды привязки и поля пользователя очищаются атомарно.
func (s *Service) Unlink(ctx context.Context, userID int64) (*models.UnlinkResponse, error) {
	s.logger.Info("Unlink: unlinking telegram for user=%d", userID)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.linkRepo.DeleteByUserID(ctx, userID); err != nil {
			return fmt.Errorf("%w: Unlink - delete links: %v", ErrInternal, err)
		}

		if err := s.userRepo.UpdateTelegram(ctx, userID, nil, nil); err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("%w: Unlink - update user: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.logger.Warn("Unlink: user=%d not found", userID)
		} else {
			s.logger.Error("Unlink: failed for user=%d: %v", userID, err)
		}
		return nil, err
	}

	s.logger.Info("Unlink: telegram unlinked for user=%d", userID)
	return &models.UnlinkResponse{Success: true}, nil
}

// generateLinkCode генерирует код привязки из заглавных букв и цифр.
// Байты вне кратного размеру алфавита диапазона отбрасываются,
// чтобы распределение символов было равномерным.
func generateLinkCode() (string, error) {
	// Наибольшее кратное len(codeCharset) в диапазоне байта
	limit := byte(256 - 256%len(codeCharset))

	code := make([]byte, 0, domain.LinkCodeLength)
	buf := make([]byte, domain.LinkCodeLength)
	for len(code) < domain.LinkCodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			code = append(code, codeCharset[int(b)%len(codeCharset)])
			if len(code) == domain.LinkCodeLength {
				break
			}
		}
	}
	return string(code), nil
}
