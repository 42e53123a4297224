package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avikhr/SalonBookingService/internal/domain"
	"github.com/avikhr/SalonBookingService/pkg/dbmetrics"
	"github.com/avikhr/SalonBookingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var userColumns = []string{
	"id",
	"name",
	"surname",
	"phone",
	"email",
	"password_hash",
	"role",
	"telegram_id",
	"telegram_username",
	"created_at",
}

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пользователя
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("name", "surname", "phone", "email", "password_hash", "role").
		Values(u.Name, u.Surname, u.Phone, u.Email, u.PasswordHash, u.Role).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	u.CreatedAt = createdAt.Time
	return u, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail получает пользователя по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByPhone получает пользователя по телефону
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"phone": phone})
}

// GetByPhoneOrEmail получает пользователя по телефону или email (один параметр для обоих полей)
func (r *Repository) GetByPhoneOrEmail(ctx context.Context, phoneOrEmail string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Or{
		squirrel.Eq{"phone": phoneOrEmail},
		squirrel.Eq{"email": phoneOrEmail},
	})
}

func (r *Repository) getOne(ctx context.Context, where interface{}) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Surname,
		&u.Phone,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.TelegramID,
		&u.TelegramUsername,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan user: %v", ErrScanRow, err)
	}

	u.CreatedAt = createdAt.Time
	return &u, nil
}

// GetAdminsWithTelegram получает администраторов с привязанным Telegram
// (получатели уведомлений о новых записях)
func (r *Repository) GetAdminsWithTelegram(ctx context.Context) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"role": domain.RoleAdmin}).
		Where("telegram_id IS NOT NULL").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAdminsWithTelegram - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAdminsWithTelegram - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var u domain.User
		var createdAt sql.NullTime

		err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Surname,
			&u.Phone,
			&u.Email,
			&u.PasswordHash,
			&u.Role,
			&u.TelegramID,
			&u.TelegramUsername,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAdminsWithTelegram - scan row: %v", ErrScanRow, err)
		}

		u.CreatedAt = createdAt.Time
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAdminsWithTelegram - rows error: %v", ErrScanRow, err)
	}

	return users, nil
}

// GetClients получает клиентов с агрегированной статистикой бронирований
func (r *Repository) GetClients(ctx context.Context) ([]*domain.ClientSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"u.id",
		"u.name",
		"u.surname",
		"u.phone",
		"u.email",
		"u.role",
		"u.telegram_id",
		"u.telegram_username",
		"u.created_at",
		"COUNT(b.id) AS total_bookings",
		"MAX(b.created_at) AS last_booking",
	).
		From("users u").
		LeftJoin("bookings b ON u.id = b.user_id").
		Where(squirrel.Eq{"u.role": domain.RoleClient}).
		GroupBy("u.id").
		OrderBy("u.name, u.surname").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetClients - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetClients - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.ClientSummary, 0)
	for rows.Next() {
		var c domain.ClientSummary
		var createdAt, lastBooking sql.NullTime

		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Surname,
			&c.Phone,
			&c.Email,
			&c.Role,
			&c.TelegramID,
			&c.TelegramUsername,
			&createdAt,
			&c.TotalBookings,
			&lastBooking,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetClients - scan row: %v", ErrScanRow, err)
		}

		c.CreatedAt = createdAt.Time
		if lastBooking.Valid {
			c.LastBooking = &lastBooking.Time
		}
		clients = append(clients, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetClients - rows error: %v", ErrScanRow, err)
	}

	return clients, nil
}

// GetClientDetails получает клиента с расширенной статистикой бронирований
func (r *Repository) GetClientDetails(ctx context.Context, id int64) (*domain.ClientDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"u.id",
		"u.name",
		"u.surname",
		"u.phone",
		"u.email",
		"u.role",
		"u.telegram_id",
		"u.telegram_username",
		"u.created_at",
		"COUNT(b.id) AS total_bookings",
		"SUM(CASE WHEN b.status = 'completed' THEN 1 ELSE 0 END) AS completed_bookings",
		"SUM(CASE WHEN b.status = 'pending' THEN 1 ELSE 0 END) AS pending_bookings",
		"MAX(b.created_at) AS last_booking",
	).
		From("users u").
		LeftJoin("bookings b ON u.id = b.user_id").
		Where(squirrel.Eq{"u.id": id}).
		GroupBy("u.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetClientDetails - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.ClientDetails
	var createdAt, lastBooking sql.NullTime
	var completed, pending sql.NullInt64

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.Name,
		&c.Surname,
		&c.Phone,
		&c.Email,
		&c.Role,
		&c.TelegramID,
		&c.TelegramUsername,
		&createdAt,
		&c.TotalBookings,
		&completed,
		&pending,
		&lastBooking,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetClientDetails - scan client: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.CompletedBookings = int(completed.Int64)
	c.PendingBookings = int(pending.Int64)
	if lastBooking.Valid {
		c.LastBooking = &lastBooking.Time
	}

	return &c, nil
}

// UpdateTelegram обновляет привязку Telegram у пользователя.
// nil значения очищают привязку (используется при отвязке аккаунта).
func (r *Repository) UpdateTelegram(ctx context.Context, userID int64, telegramID, telegramUsername *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("telegram_id", telegramID).
		Set("telegram_username", telegramUsername).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateTelegram - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTelegram - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTelegram - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
