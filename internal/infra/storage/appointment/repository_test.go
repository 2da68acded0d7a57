package appointment

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
	"github.com/m04kA/SMC-SalonAdmin/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAdmin/pkg/ptr"
)

func newMock(t *testing.T) (*dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return dbmetrics.Wrap(db, nil), mock
}

func appointmentRow(id string, start time.Time, status domain.AppointmentStatus) *sqlmock.Rows {
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(columns).AddRow(
		id, "c-1", "Анна", nil, nil, nil, "r-1", "Стрижка",
		start, start.Add(time.Hour), string(status), 1500.0, nil, nil, now, now,
	)
}

func TestRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)
	start := time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM appointments WHERE id = \$1`).
		WithArgs("a-1").
		WillReturnRows(appointmentRow("a-1", start, domain.StatusConfirmed))

	a, err := repo.GetByID(context.Background(), "a-1")
	require.NoError(t, err)

	assert.Equal(t, "a-1", a.ID)
	assert.Equal(t, "Анна", a.Client.Name)
	assert.Nil(t, a.Client.Phone)
	assert.Equal(t, start.Add(time.Hour), a.End)
	require.NotNil(t, a.Price)
	assert.Equal(t, 1500.0, *a.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .* FROM appointments`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_List_LocksInsideTransaction(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)
	from := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM appointments WHERE resource_id = \$1 AND end_at > \$2 AND start_at < \$3 AND status <> \$4 ORDER BY start_at ASC, resource_id ASC FOR UPDATE`).
		WithArgs("r-1", from, to, string(domain.StatusCancelled)).
		WillReturnRows(appointmentRow("a-1", from.Add(10*time.Hour), domain.StatusConfirmed))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	list, err := repo.List(ctx, domain.AppointmentsFilter{
		ResourceID: ptr.Ptr("r-1"),
		From:       &from,
		To:         &to,
		ForUpdate:  true,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_IncludeCancelled(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .* FROM appointments ORDER BY start_at ASC, resource_id ASC$`).
		WillReturnRows(sqlmock.NewRows(columns))

	list, err := repo.List(context.Background(), domain.AppointmentsFilter{IncludeCancelled: true})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO appointments .* RETURNING created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	a, err := repo.Create(context.Background(), &domain.Appointment{
		ID:         "a-1",
		Client:     domain.Client{ID: "c-1", Name: "Анна"},
		ResourceID: "r-1",
		Title:      "Стрижка",
		Start:      start,
		End:        start.Add(time.Hour),
		Status:     domain.StatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, now, a.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)
	start := time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE appointments SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 RETURNING`).
		WithArgs(string(domain.StatusCancelled), "a-1").
		WillReturnRows(appointmentRow("a-1", start, domain.StatusCancelled))

	a, err := repo.UpdateStatus(context.Background(), "a-1", domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, a.Status)

	_, err = repo.UpdateStatus(context.Background(), "a-1", "ARCHIVED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}
