package telegram

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikhr/SalonBookingService/internal/domain"
	linkRepo "github.com/avikhr/SalonBookingService/internal/infra/storage/telegramlink"
)

type fakeLinkRepo struct {
	links    map[string]*domain.TelegramLink
	replaced *domain.TelegramLink
	verified []int64
	deleted  []int64
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: make(map[string]*domain.TelegramLink)}
}

func (f *fakeLinkRepo) Replace(ctx context.Context, userID int64, code string, expiresAt time.Time) (*domain.TelegramLink, error) {
	link := &domain.TelegramLink{
		ID:        1,
		UserID:    userID,
		LinkCode:  code,
		ExpiresAt: expiresAt,
	}
	f.replaced = link
	f.links[code] = link
	return link, nil
}

func (f *fakeLinkRepo) GetByCode(ctx context.Context, code string) (*domain.TelegramLink, error) {
	link, ok := f.links[code]
	if !ok {
		return nil, linkRepo.ErrLinkNotFound
	}
	return link, nil
}

func (f *fakeLinkRepo) GetActiveByCode(ctx context.Context, code string, now time.Time) (*domain.TelegramLink, error) {
	link, ok := f.links[code]
	if !ok || link.IsVerified || link.IsExpired(now) {
		return nil, linkRepo.ErrLinkNotFound
	}
	return link, nil
}

func (f *fakeLinkRepo) Verify(ctx context.Context, linkID int64, telegramID, telegramUsername *string, now time.Time) (int64, error) {
	f.verified = append(f.verified, linkID)
	for _, link := range f.links {
		if link.ID == linkID {
			link.IsVerified = true
			link.TelegramID = telegramID
			link.TelegramUsername = telegramUsername
			link.VerifiedAt = &now
			return link.UserID, nil
		}
	}
	return 0, linkRepo.ErrLinkNotFound
}

func (f *fakeLinkRepo) DeleteByUserID(ctx context.Context, userID int64) error {
	f.deleted = append(f.deleted, userID)
	for code, link := range f.links {
		if link.UserID == userID {
			delete(f.links, code)
		}
	}
	return nil
}

type fakeUserRepo struct {
	users   map[int64]*domain.User
	updates map[int64]*string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   make(map[int64]*domain.User),
		updates: make(map[int64]*string),
	}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) UpdateTelegram(ctx context.Context, userID int64, telegramID, telegramUsername *string) error {
	f.updates[userID] = telegramID
	if user, ok := f.users[userID]; ok {
		user.TelegramID = telegramID
		user.TelegramUsername = telegramUsername
	}
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

func strPtr(s string) *string {
	return &s
}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestService(links *fakeLinkRepo, users *fakeUserRepo) *Service {
	return NewService(links, users, fakeTxManager{}, fixedTime{now: testNow}, nopLogger{})
}

func TestCreateLink_CodeFormat(t *testing.T) {
	links := newFakeLinkRepo()
	svc := newTestService(links, newFakeUserRepo())

	resp, err := svc.CreateLink(context.Background(), 7)

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{6}$`), resp.LinkCode)
	require.NotNil(t, links.replaced)
	assert.Equal(t, int64(7), links.replaced.UserID)
	assert.Equal(t, testNow.Add(time.Hour), links.replaced.ExpiresAt)
}

func TestGenerateLinkCode(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z0-9]{6}$`)

	// Многократная генерация проходит и ветку отбрасывания байтов
	for i := 0; i < 200; i++ {
		code, err := generateLinkCode()
		require.NoError(t, err)
		assert.Regexp(t, re, code)
	}
}

func TestCheckLink_UnknownCodeIsNotLinked(t *testing.T) {
	svc := newTestService(newFakeLinkRepo(), newFakeUserRepo())

	resp, err := svc.CheckLink(context.Background(), "AAAAAA")

	require.NoError(t, err)
	assert.False(t, resp.Linked)
}

func TestCheckLink_PendingCodeIsNotLinked(t *testing.T) {
	links := newFakeLinkRepo()
	links.links["ABC123"] = &domain.TelegramLink{ID: 1, UserID: 7, LinkCode: "ABC123"}
	svc := newTestService(links, newFakeUserRepo())

	resp, err := svc.CheckLink(context.Background(), "ABC123")

	require.NoError(t, err)
	assert.False(t, resp.Linked)
}

func TestCheckLink_VerifiedCode(t *testing.T) {
	links := newFakeLinkRepo()
	links.links["ABC123"] = &domain.TelegramLink{
		ID:               1,
		UserID:           7,
		LinkCode:         "ABC123",
		IsVerified:       true,
		TelegramID:       strPtr("123456"),
		TelegramUsername: strPtr("anna"),
	}
	svc := newTestService(links, newFakeUserRepo())

	resp, err := svc.CheckLink(context.Background(), "ABC123")

	require.NoError(t, err)
	assert.True(t, resp.Linked)
	require.NotNil(t, resp.TelegramID)
	assert.Equal(t, "123456", *resp.TelegramID)
}

func TestVerifyLink_Success(t *testing.T) {
	links := newFakeLinkRepo()
	links.links["ABC123"] = &domain.TelegramLink{
		ID:        1,
		UserID:    7,
		LinkCode:  "ABC123",
		ExpiresAt: testNow.Add(30 * time.Minute),
	}
	users := newFakeUserRepo()
	users.users[7] = &domain.User{ID: 7, Name: "Анна"}
	svc := newTestService(links, users)

	user, err := svc.VerifyLink(context.Background(), "ABC123", strPtr("123456"), strPtr("anna"))

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, []int64{1}, links.verified)
	require.NotNil(t, users.updates[7])
	assert.Equal(t, "123456", *users.updates[7])
}

func TestVerifyLink_ExpiredCode(t *testing.T) {
	links := newFakeLinkRepo()
	links.links["ABC123"] = &domain.TelegramLink{
		ID:        1,
		UserID:    7,
		LinkCode:  "ABC123",
		ExpiresAt: testNow.Add(-time.Minute),
	}
	svc := newTestService(links, newFakeUserRepo())

	_, err := svc.VerifyLink(context.Background(), "ABC123", strPtr("123456"), nil)

	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestVerifyLink_UnknownCode(t *testing.T) {
	svc := newTestService(newFakeLinkRepo(), newFakeUserRepo())

	_, err := svc.VerifyLink(context.Background(), "XXXXXX", strPtr("123456"), nil)

	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestUnlink(t *testing.T) {
	links := newFakeLinkRepo()
	links.links["ABC123"] = &domain.TelegramLink{ID: 1, UserID: 7, LinkCode: "ABC123"}
	users := newFakeUserRepo()
	users.users[7] = &domain.User{ID: 7, TelegramID: strPtr("123456")}
	svc := newTestService(links, users)

	resp, err := svc.Unlink(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, []int64{7}, links.deleted)
	assert.Nil(t, users.users[7].TelegramID)
}
