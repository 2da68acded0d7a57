package settings

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAdmin/pkg/ptr"
)

var settingsColumns = []string{"id", "resource_id", "open_hour", "close_hour", "created_at", "updated_at"}

func TestRepository_GetWithHierarchy_FallsBackToSalon(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM salon_settings WHERE resource_id = \$1`).
		WithArgs("r-1").
		WillReturnRows(sqlmock.NewRows(settingsColumns))
	mock.ExpectQuery(`SELECT .* FROM salon_settings WHERE resource_id IS NULL`).
		WillReturnRows(sqlmock.NewRows(settingsColumns).AddRow(1, nil, 10, 20, now, now))

	s, err := NewRepository(db).GetWithHierarchy(context.Background(), ptr.Ptr("r-1"))
	require.NoError(t, err)

	assert.True(t, s.IsGlobal())
	assert.Equal(t, 10, s.OpenHour)
	assert.Equal(t, 20, s.CloseHour)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithHierarchy_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM salon_settings WHERE resource_id IS NULL`).
		WillReturnRows(sqlmock.NewRows(settingsColumns))

	_, err = NewRepository(db).GetWithHierarchy(context.Background(), nil)
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestRepository_DeleteByResource(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM salon_settings WHERE resource_id = \$1`).
		WithArgs("r-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewRepository(db).DeleteByResource(context.Background(), "r-1")
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}
