package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikhr/SalonBookingService/internal/domain"
	userRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/user"
	"github.com/avikhr/SalonBookingService/internal/service/auth/models"
	pkgauth "github.com/avikhr/SalonBookingService/pkg/auth"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	byPhone map[string]*domain.User
	byID    map[int64]*domain.User
	nextID  int64
	created *domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*domain.User),
		byPhone: make(map[string]*domain.User),
		byID:    make(map[int64]*domain.User),
		nextID:  1,
	}
}

func (f *fakeUserRepo) add(user *domain.User) {
	f.byEmail[user.Email] = user
	f.byPhone[user.Phone] = user
	f.byID[user.ID] = user
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created := *user
	created.ID = f.nextID
	f.nextID++
	f.created = &created
	f.add(&created)
	return &created, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	user, ok := f.byPhone[phone]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByPhoneOrEmail(ctx context.Context, phoneOrEmail string) (*domain.User, error) {
	if user, ok := f.byPhone[phoneOrEmail]; ok {
		return user, nil
	}
	if user, ok := f.byEmail[phoneOrEmail]; ok {
		return user, nil
	}
	return nil, userRepo.ErrUserNotFound
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo *fakeUserRepo) *Service {
	return NewService(
		repo,
		pkgauth.NewTokenManager("test-secret", time.Hour),
		pkgauth.NewPasswordHasher(4),
		fixedTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
}

func registerRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     "Анна",
		Surname:  "Иванова",
		Phone:    "+79991234567",
		Email:    "anna@example.com",
		Password: "secret123",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), registerRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "anna@example.com", resp.User.Email)
	assert.Equal(t, string(domain.RoleClient), resp.User.Role)
	require.NotNil(t, repo.created)
	assert.NotEqual(t, "secret123", repo.created.PasswordHash)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&domain.User{ID: 1, Email: "anna@example.com", Phone: "+70000000000"})
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), registerRequest())

	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegister_PhoneTaken(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&domain.User{ID: 1, Email: "other@example.com", Phone: "+79991234567"})
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), registerRequest())

	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	req := registerRequest()
	req.Password = "123"
	_, err := svc.Register(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_ByPhoneAndByEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	for _, identifier := range []string{"+79991234567", "anna@example.com"} {
		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			PhoneOrEmail: identifier,
			Password:     "secret123",
		})
		require.NoError(t, err, identifier)
		assert.NotEmpty(t, resp.Token)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		PhoneOrEmail: "nobody@example.com",
		Password:     "secret123",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		PhoneOrEmail: "anna@example.com",
		Password:     "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestAdminLogin_RejectsClientBeforePasswordCheck(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	// Клиент с верным паролем все равно получает отказ
	_, err = svc.AdminLogin(context.Background(), &models.AdminLoginRequest{
		Email:    "anna@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAdminLogin_UnknownEmailIsAccessDenied(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.AdminLogin(context.Background(), &models.AdminLoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAdminLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	hasher := pkgauth.NewPasswordHasher(4)
	hash, err := hasher.Hash("admin-pass")
	require.NoError(t, err)
	repo.add(&domain.User{
		ID:           1,
		Email:        "admin@example.com",
		Phone:        "+70000000001",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	})

	resp, err := svc.AdminLogin(context.Background(), &models.AdminLoginRequest{
		Email:    "admin@example.com",
		Password: "admin-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.RoleAdmin), resp.User.Role)
	assert.NotEmpty(t, resp.Token)
}

func TestGetCurrentUser(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&domain.User{ID: 5, Name: "Анна", Email: "anna@example.com", Phone: "+79991234567"})
	svc := newTestService(repo)

	resp, err := svc.GetCurrentUser(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)

	_, err = svc.GetCurrentUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
