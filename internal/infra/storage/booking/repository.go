package booking

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

var detailsColumns = []string{
	"b.id",
	"b.user_id",
	"b.service_id",
	"b.booking_date",
	"b.booking_time",
	"b.status",
	"b.comment",
	"b.telegram_notification",
	"b.created_at",
	"s.name AS service_name",
	"s.price AS service_price",
	"s.duration_minutes AS service_duration",
	"u.name AS user_name",
	"u.surname AS user_surname",
	"u.email AS user_email",
	"u.phone AS user_phone",
	"u.telegram_id AS user_telegram_id",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("user_id", "service_id", "booking_date", "booking_time", "status", "comment", "telegram_notification").
		Values(b.UserID, b.ServiceID, b.BookingDate, b.BookingTime, b.Status, b.Comment, b.TelegramNotification).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	return b, nil
}

// GetByID получает бронирование с данными услуги и клиента
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.detailsQuery().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	details, err := r.scanDetailsRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return details, nil
}

// GetByDate получает активные бронирования на дату, отсортированные по времени.
// Внутри транзакции добавляет FOR UPDATE - блокировка строк на время проверки
// конфликтов при создании бронирования.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := r.detailsQuery().
		Where(squirrel.Eq{"b.booking_date": date}).
		Where(squirrel.NotEq{"b.status": domain.StatusCancelled}).
		OrderBy("b.booking_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryDetails(ctx, executor, "GetByDate", query, args)
}

// GetByUserID получает бронирования пользователя, новые первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.detailsQuery().
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.booking_date DESC", "b.booking_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryDetails(ctx, executor, "GetByUserID", query, args)
}

// GetAllWithDetails получает все бронирования с опциональной фильтрацией
// по периоду и статусу (админские списки и отчеты)
func (r *Repository) GetAllWithDetails(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := r.detailsQuery().
		OrderBy("b.booking_date DESC", "b.booking_time DESC")

	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"b.booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"b.booking_date": *filter.EndDate})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"b.status": *filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllWithDetails - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryDetails(ctx, executor, "GetAllWithDetails", query, args)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) detailsQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(detailsColumns...).
		From("bookings b").
		Join("services s ON b.service_id = s.id").
		Join("users u ON b.user_id = u.id")
}

func (r *Repository) queryDetails(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.BookingDetails, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.BookingDetails, 0)
	for rows.Next() {
		details, err := r.scanDetailsRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanDetailsRow(row rowScanner) (*domain.BookingDetails, error) {
	var d domain.BookingDetails
	var createdAt sql.NullTime

	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.ServiceID,
		&d.BookingDate,
		&d.BookingTime,
		&d.Status,
		&d.Comment,
		&d.TelegramNotification,
		&createdAt,
		&d.ServiceName,
		&d.ServicePrice,
		&d.ServiceDuration,
		&d.UserName,
		&d.UserSurname,
		&d.UserEmail,
		&d.UserPhone,
		&d.UserTelegramID,
	)
	if err != nil {
		return nil, err
	}

	d.CreatedAt = createdAt.Time
	return &d, nil
}
