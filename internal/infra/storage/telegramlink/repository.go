package telegramlink

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avikhr/SalonBookingService/internal/domain"
	"github.com/avikhr/SalonBookingService/pkg/dbmetrics"
	"github.com/avikhr/SalonBookingService/pkg/psqlbuilder"
)

var linkColumns = []string{
	"id",
	"user_id",
	"link_code",
	"telegram_id",
	"telegram_username",
	"is_verified",
	"expires_at",
	"verified_at",
	"created_at",
}

// Repository репозиторий для работы с кодами привязки Telegram
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кодов привязки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Replace удаляет старые коды пользователя и создает новый.
// У пользователя всегда не больше одного действующего кода.
func (r *Repository) Replace(ctx context.Context, userID int64, code string, expiresAt time.Time) (*domain.TelegramLink, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("telegram_links").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Replace - delete old links: %v", ErrExecQuery, err)
	}

	insertQuery, insertArgs, err := psqlbuilder.Insert("telegram_links").
		Columns("user_id", "link_code", "expires_at").
		Values(userID, code, expiresAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	link := domain.TelegramLink{
		UserID:    userID,
		LinkCode:  code,
		ExpiresAt: expiresAt,
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&link.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - execute insert: %v", ErrExecQuery, err)
	}

	link.CreatedAt = createdAt.Time
	return &link, nil
}

// GetByCode получает код привязки без учета срока действия
// (проверка статуса привязки с фронтенда)
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.TelegramLink, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(linkColumns...).
		From("telegram_links").
		Where(squirrel.Eq{"link_code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	link, err := scanLink(row)
	if err == sql.ErrNoRows {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan link: %v", ErrScanRow, err)
	}

	return link, nil
}

// GetActiveByCode получает непросроченный и неподтвержденный код привязки
// (подтверждение кода из Telegram бота)
func (r *Repository) GetActiveByCode(ctx context.Context, code string, now time.Time) (*domain.TelegramLink, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(linkColumns...).
		From("telegram_links").
		Where(squirrel.Eq{"link_code": code}).
		Where(squirrel.Eq{"is_verified": false}).
		Where(squirrel.Gt{"expires_at": now}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCode - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	link, err := scanLink(row)
	if err == sql.ErrNoRows {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCode - scan link: %v", ErrScanRow, err)
	}

	return link, nil
}

// GetByUserID получает последний код привязки пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.TelegramLink, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(linkColumns...).
		From("telegram_links").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	link, err := scanLink(row)
	if err == sql.ErrNoRows {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan link: %v", ErrScanRow, err)
	}

	return link, nil
}

// Verify подтверждает код привязки: записывает данные Telegram аккаунта
// и возвращает ID пользователя, которому принадлежит код
func (r *Repository) Verify(ctx context.Context, linkID int64, telegramID, telegramUsername *string, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("telegram_links").
		Set("telegram_id", telegramID).
		Set("telegram_username", telegramUsername).
		Set("is_verified", true).
		Set("verified_at", now).
		Where(squirrel.Eq{"id": linkID}).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Verify - build update query: %v", ErrBuildQuery, err)
	}

	var userID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&userID)
	if err == sql.ErrNoRows {
		return 0, ErrLinkNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Verify - execute update: %v", ErrExecQuery, err)
	}

	return userID, nil
}

// DeleteByUserID удаляет все коды привязки пользователя
func (r *Repository) DeleteByUserID(ctx context.Context, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("telegram_links").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByUserID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByUserID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func scanLink(row *sql.Row) (*domain.TelegramLink, error) {
	var link domain.TelegramLink
	var verifiedAt sql.NullTime
	var createdAt sql.NullTime

	err := row.Scan(
		&link.ID,
		&link.UserID,
		&link.LinkCode,
		&link.TelegramID,
		&link.TelegramUsername,
		&link.IsVerified,
		&link.ExpiresAt,
		&verifiedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if verifiedAt.Valid {
		link.VerifiedAt = &verifiedAt.Time
	}
	link.CreatedAt = createdAt.Time
	return &link, nil
}
