package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avikhr/SalonBookingService/internal/domain"
	userRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/user"
	"github.com/avikhr/SalonBookingService/internal/service/auth/models"
)

// Service сервис аутентификации и учетных записей
type Service struct {
	userRepo     UserRepository
	tokenManager TokenManager
	hasher       PasswordHasher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	userRepo UserRepository,
	tokenManager TokenManager,
	hasher PasswordHasher,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register регистрирует нового клиента и сразу выпускает токен
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: new registration request email=%s phone=%s", req.Email, req.Phone)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	// Проверяем занятость email и телефона до создания
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		s.logger.Warn("Register: email already taken: %s", req.Email)
		return nil, ErrUserExists
	} else if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("Register: repository error checking email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	if _, err := s.userRepo.GetByPhone(ctx, req.Phone); err == nil {
		s.logger.Warn("Register: phone already taken: %s", req.Phone)
		return nil, ErrUserExists
	} else if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("Register: repository error checking phone=%s: %v", req.Phone, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Surname:      strings.TrimSpace(req.Surname),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: passwordHash,
		Role:         domain.RoleClient,
	}

	user, err = s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUser) {
			return nil, ErrUserExists
		}
		s.logger.Error("Register: failed to create user email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - create user: %v", ErrInternal, err)
	}

	token, err := s.tokenManager.Generate(user.ID, string(user.Role), s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Register: failed to generate token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Register - generate token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user registered successfully id=%d", user.ID)
	return &models.AuthResponse{User: *models.FromDomainUser(user), Token: token}, nil
}

// Login аутентифицирует клиента по телефону или email
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	s.logger.Info("Login: login request for %s", req.PhoneOrEmail)

	if req.PhoneOrEmail == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: phoneOrEmail and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByPhoneOrEmail(ctx, req.PhoneOrEmail)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: user not found: %s", req.PhoneOrEmail)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Login: repository error for %s: %v", req.PhoneOrEmail, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !s.hasher.Compare(user.PasswordHash, req.Password) {
		s.logger.Warn("Login: invalid password for user=%d", user.ID)
		return nil, ErrInvalidPassword
	}

	token, err := s.tokenManager.Generate(user.ID, string(user.Role), s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Login: failed to generate token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - generate token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user logged in successfully id=%d", user.ID)
	return &models.AuthResponse{User: *models.FromDomainUser(user), Token: token}, nil
}

// AdminLogin аутентифицирует администратора по email.
// Пользователям без роли admin вход запрещен еще до проверки пароля.
func (s *Service) AdminLogin(ctx context.Context, req *models.AdminLoginRequest) (*models.AuthResponse, error) {
	s.logger.Info("AdminLogin: admin login request for %s", req.Email)

	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("AdminLogin: access denied for %s", req.Email)
			return nil, ErrAccessDenied
		}
		s.logger.Error("AdminLogin: repository error for %s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: AdminLogin - repository error: %v", ErrInternal, err)
	}

	if !user.IsAdmin() {
		s.logger.Warn("AdminLogin: access denied for non-admin user=%d", user.ID)
		return nil, ErrAccessDenied
	}

	if !s.hasher.Compare(user.PasswordHash, req.Password) {
		s.logger.Warn("AdminLogin: invalid password for admin=%d", user.ID)
		return nil, ErrInvalidPassword
	}

	token, err := s.tokenManager.Generate(user.ID, string(user.Role), s.timeProvider.Now())
	if err != nil {
		s.logger.Error("AdminLogin: failed to generate token for admin=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: AdminLogin - generate token: %v", ErrInternal, err)
	}

	s.logger.Info("AdminLogin: admin logged in successfully id=%d", user.ID)
	return &models.AuthResponse{User: *models.FromDomainUser(user), Token: token}, nil
}

// GetCurrentUser возвращает данные текущего пользователя по ID из токена
func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*models.UserResponse, error) {
	s.logger.Info("GetCurrentUser: fetching user id=%d", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetCurrentUser: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetCurrentUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetCurrentUser - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

func validateRegister(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	return nil
}
