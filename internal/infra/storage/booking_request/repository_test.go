package booking_request

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

func TestListQuery(t *testing.T) {
	status := domain.StatusConfirmed
	from := civil.Date{Year: 2025, Month: 7, Day: 1}
	to := civil.Date{Year: 2025, Month: 7, Day: 31}

	tests := []struct {
		name      string
		filter    domain.BookingRequestsFilter
		wantWhere string
		wantLimit string
		wantArgs  []interface{}
	}{
		{
			name:      "no filter",
			filter:    domain.BookingRequestsFilter{},
			wantLimit: "LIMIT 100",
			wantArgs:  nil,
		},
		{
			name:      "status",
			filter:    domain.BookingRequestsFilter{Status: &status, Limit: 10},
			wantWhere: "WHERE status = $1",
			wantLimit: "LIMIT 10",
			wantArgs:  []interface{}{"confirmed"},
		},
		{
			name:      "period and status",
			filter:    domain.BookingRequestsFilter{Status: &status, FromDate: &from, ToDate: &to},
			wantWhere: "WHERE status = $1 AND booking_date >= $2 AND booking_date <= $3",
			wantLimit: "LIMIT 100",
			wantArgs:  []interface{}{"confirmed", "2025-07-01", "2025-07-31"},
		},
		{
			name:      "limit capped",
			filter:    domain.BookingRequestsFilter{Limit: 10000},
			wantLimit: "LIMIT 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := listQuery(tt.filter).ToSql()
			require.NoError(t, err)

			assert.Contains(t, query, "FROM booking_requests")
			assert.Contains(t, query, "ORDER BY created_at DESC, id DESC")
			assert.Contains(t, query, tt.wantLimit)
			if tt.wantWhere != "" {
				assert.Contains(t, query, tt.wantWhere)
			} else {
				assert.NotContains(t, query, "WHERE")
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func bookingRequestRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestUpdateStatusQuery(t *testing.T) {
	query, args, err := updateStatusQuery(7, domain.StatusNew, domain.StatusConfirmed).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE booking_requests SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3 RETURNING updated_at",
		query,
	)
	assert.Equal(t, []interface{}{"confirmed", int64(7), "new"}, args)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)

	reference := uuid.New()
	createdAt := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	phone := "+79990001122"

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO booking_requests")).
		WithArgs(reference, "2025-07-02", "13:00", "Europe/Moscow", "Anna", "anna@example.com", phone, nil, true, "new").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), createdAt, createdAt))

	req, err := repo.Create(context.Background(), &domain.BookingRequest{
		Reference: reference,
		Date:      civil.Date{Year: 2025, Month: 7, Day: 2},
		Time:      "13:00",
		Timezone:  "Europe/Moscow",
		Name:      "Anna",
		Email:     "anna@example.com",
		Phone:     &phone,
		Consent:   true,
		Status:    domain.StatusNew,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), req.ID)
	assert.Equal(t, createdAt, req.CreatedAt)
	assert.Equal(t, createdAt, req.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO booking_requests")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.BookingRequest{Reference: uuid.New(), Status: domain.StatusNew})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepository(t)

	reference := uuid.New()
	createdAt := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, reference, booking_date")).
		WithArgs(int64(42)).
		WillReturnRows(bookingRequestRows().AddRow(
			int64(42),
			reference.String(),
			time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
			"13:00",
			"Europe/Moscow",
			"Anna",
			"anna@example.com",
			nil,
			"Window light please",
			true,
			"confirmed",
			createdAt,
			createdAt,
		))

	req, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), req.ID)
	assert.Equal(t, reference, req.Reference)
	assert.Equal(t, civil.Date{Year: 2025, Month: 7, Day: 2}, req.Date)
	assert.Equal(t, "13:00", req.Time)
	assert.Equal(t, domain.StatusConfirmed, req.Status)
	assert.Nil(t, req.Phone)
	require.NotNil(t, req.Message)
	assert.Equal(t, "Window light please", *req.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, reference, booking_date")).
		WithArgs(int64(404)).
		WillReturnRows(bookingRequestRows())

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, reference, booking_date")).
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScanRow)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMockRepository(t)

	createdAt := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	status := domain.StatusNew

	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_requests WHERE status = $1")).
		WithArgs("new").
		WillReturnRows(bookingRequestRows().
			AddRow(int64(2), uuid.NewString(), time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC), "10:00", "UTC",
				"Boris", "boris@example.com", "+7999", nil, true, "new", createdAt, createdAt).
			AddRow(int64(1), uuid.NewString(), time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), "13:00", "UTC",
				"Anna", "anna@example.com", nil, nil, true, "new", createdAt, createdAt))

	list, err := repo.List(context.Background(), domain.BookingRequestsFilter{Status: &status})
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	require.NotNil(t, list[0].Phone)
	assert.Equal(t, "+7999", *list[0].Phone)
	assert.Nil(t, list[1].Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMockRepository(t)

	updatedAt := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE booking_requests SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3")).
		WithArgs("confirmed", int64(7), "new").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))

	got, err := repo.UpdateStatus(context.Background(), 7, domain.StatusNew, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, updatedAt, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_ChangedConcurrently(t *testing.T) {
	repo, mock := newMockRepository(t)

	// Статус уже сменили: условие status = $3 не выполнилось, строк нет
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE booking_requests")).
		WithArgs("confirmed", int64(7), "new").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	_, err := repo.UpdateStatus(context.Background(), 7, domain.StatusNew, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_ExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE booking_requests")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.UpdateStatus(context.Background(), 7, domain.StatusNew, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrStatusConflict)
}
