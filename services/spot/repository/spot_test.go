package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/parkspot/internal/pkg/apperror"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var spotColumns = []string{"id", "spot_number", "spot_type", "hourly_rate", "is_occupied", "created_at"}

func setupSpotRepoTest(t *testing.T) (*SpotRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return &SpotRepo{cfg: &models.Config{}, db: sqlxDB}, mock
}

func TestSpotRepo_Create(t *testing.T) {
	t.Run("inserts", func(t *testing.T) {
		repo, mock := setupSpotRepoTest(t)
		s := &models.ParkingSpot{SpotNumber: "A-101", SpotType: models.SpotTypeEV, HourlyRate: decimal.RequireFromString("5.00")}

		mock.ExpectExec("INSERT INTO parking_spots").
			WithArgs(sqlmock.AnyArg(), "A-101", models.SpotTypeEV, s.HourlyRate, false, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(context.Background(), s))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate spot number", func(t *testing.T) {
		repo, mock := setupSpotRepoTest(t)
		mock.ExpectExec("INSERT INTO parking_spots").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: spotNumberConstraint})

		err := repo.Create(context.Background(), &models.ParkingSpot{SpotNumber: "A-101"})
		assert.ErrorIs(t, err, apperror.ErrSpotNumberTaken)
	})
}

func TestSpotRepo_GetByID(t *testing.T) {
	repo, mock := setupSpotRepoTest(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM parking_spots WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(spotColumns).AddRow(id.String(), "B-202", "Regular", "3.50", false, time.Now()))

	s, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.SpotTypeRegular, s.SpotType)
	assert.True(t, decimal.RequireFromString("3.50").Equal(s.HourlyRate))

	mock.ExpectQuery("SELECT (.+) FROM parking_spots WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(spotColumns))

	_, err = repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrSpotNotFound)
}

func TestSpotRepo_ListAvailable(t *testing.T) {
	repo, mock := setupSpotRepoTest(t)
	evType := models.SpotTypeEV

	mock.ExpectQuery(regexp.QuoteMeta("spot_type = ANY($1)")).
		WithArgs(pq.Array([]string{"EV"})).
		WillReturnRows(sqlmock.NewRows(spotColumns).AddRow(uuid.New().String(), "E-001", "EV", "6.00", false, time.Now()))

	spots, err := repo.ListAvailable(context.Background(), &evType)
	require.NoError(t, err)
	require.Len(t, spots, 1)

	mock.ExpectQuery(regexp.QuoteMeta("spot_type = ANY($1)")).
		WithArgs(pq.Array([]string{"Regular", "EV"})).
		WillReturnRows(sqlmock.NewRows(spotColumns))

	spots, err = repo.ListAvailable(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, spots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpotRepo_ListAll(t *testing.T) {
	repo, mock := setupSpotRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM parking_spots ORDER BY spot_number").
		WillReturnRows(sqlmock.NewRows(spotColumns).
			AddRow(uuid.New().String(), "A-101", "Regular", "4.00", true, time.Now()).
			AddRow(uuid.New().String(), "E-001", "EV", "6.00", false, time.Now()))

	spots, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, spots, 2)
	assert.True(t, spots[0].IsOccupied)
	assert.Equal(t, models.SpotTypeEV, spots[1].SpotType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpotRepo_SetOccupied(t *testing.T) {
	id := uuid.New()
	updateQuery := regexp.QuoteMeta("UPDATE parking_spots SET is_occupied = $1 WHERE id = $2 AND is_occupied <> $1")
	existsQuery := regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM parking_spots WHERE id = $1)")

	tests := []struct {
		name      string
		occupied  bool
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name:     "claims a free spot",
			occupied: true,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateQuery).WithArgs(true, id).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:     "claiming an occupied spot fails",
			occupied: true,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateQuery).WithArgs(true, id).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(existsQuery).WithArgs(id).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			wantErr: apperror.ErrSpotNotAvailable,
		},
		{
			name:     "releasing a free spot is a no-op",
			occupied: false,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateQuery).WithArgs(false, id).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(existsQuery).WithArgs(id).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
		},
		{
			name:     "unknown spot",
			occupied: true,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateQuery).WithArgs(true, id).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(existsQuery).WithArgs(id).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			wantErr: apperror.ErrSpotNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupSpotRepoTest(t)
			tt.mockSetup(mock)

			err := repo.SetOccupied(context.Background(), id, tt.occupied)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
