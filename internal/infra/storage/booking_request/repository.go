package booking_request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/psqlbuilder"
)

const table = "booking_requests"

var columns = []string{
	"id",
	"reference",
	"booking_date",
	"start_time",
	"timezone",
	"name",
	"email",
	"phone",
	"message",
	"consent",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий заявок на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку
// Заполняет ID, CreatedAt и UpdatedAt
func (r *Repository) Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingRequest, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"reference",
			"booking_date",
			"start_time",
			"timezone",
			"name",
			"email",
			"phone",
			"message",
			"consent",
			"status",
		).
		Values(
			req.Reference,
			req.Date.String(),
			req.Time,
			req.Timezone,
			req.Name,
			req.Email,
			req.Phone,
			req.Message,
			req.Consent,
			string(req.Status),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanBookingRequest(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking request: %v", ErrScanRow, err)
	}

	return req, nil
}

// List получает заявки по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.BookingRequestsFilter) ([]*domain.BookingRequest, error) {
	query, args, err := listQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingRequest, 0)
	for rows.Next() {
		req, err := scanBookingRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan booking request: %v", ErrScanRow, err)
		}
		result = append(result, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateStatus меняет статус заявки, если текущий статус равен from
// ErrStatusConflict, если статус уже другой или заявки нет
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingRequestStatus) (time.Time, error) {
	query, args, err := updateStatusQuery(id, from, to).ToSql()

	if err != nil {
		return time.Time{}, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt time.Time
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrStatusConflict
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return updatedAt, nil
}

// listQuery строит запрос списка заявок
func listQuery(filter domain.BookingRequestsFilter) squirrel.SelectBuilder {
	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	if limit > domain.MaxListLimit {
		limit = domain.MaxListLimit
	}

	builder := psqlbuilder.Select(columns...).From(table)

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.FromDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"booking_date": filter.FromDate.String()})
	}
	if filter.ToDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"booking_date": filter.ToDate.String()})
	}

	return builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))
}

// updateStatusQuery строит условное обновление статуса
// Строка не обновится, если статус уже не равен from
func updateStatusQuery(id int64, from, to domain.BookingRequestStatus) squirrel.UpdateBuilder {
	return psqlbuilder.Update(table).
		Set("status", string(to)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": string(from)}).
		Suffix("RETURNING updated_at")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingRequest(row rowScanner) (*domain.BookingRequest, error) {
	var (
		req         domain.BookingRequest
		bookingDate time.Time
		status      string
		phone       sql.NullString
		message     sql.NullString
	)

	err := row.Scan(
		&req.ID,
		&req.Reference,
		&bookingDate,
		&req.Time,
		&req.Timezone,
		&req.Name,
		&req.Email,
		&phone,
		&message,
		&req.Consent,
		&status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	req.Date = civil.DateOf(bookingDate)
	req.Status = domain.BookingRequestStatus(status)
	if phone.Valid {
		req.Phone = &phone.String
	}
	if message.Valid {
		req.Message = &message.String
	}

	return &req, nil
}
