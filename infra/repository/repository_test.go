package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/locali/locali/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestCityRepository_Create(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := cityRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cities" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	city, err := repo.Create(context.Background(), &dto.CityCreate{Name: "Campinas", State: "SP"})
	require.NoError(err)
	require.Equal(uint(1), city.ID)
	require.Equal("Campinas", city.Name)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cities" (.+) RETURNING "id"`).
		WillReturnError(errors.New("create error"))
	mock.ExpectRollback()

	_, err = repo.Create(context.Background(), &dto.CityCreate{Name: "Campinas", State: "SP"})
	require.Error(err)
}

func TestCityRepository_GetNotFoundReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := cityRepository{db: db}

	mock.ExpectQuery(`SELECT (.+) FROM "cities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "state"}))

	city, err := repo.Get(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, city)
}

func TestCityRepository_UpdateOnlySuppliedFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := cityRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cities" SET (.+) WHERE id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	name := "Valinhos"
	err := repo.Update(context.Background(), 1, &dto.CityUpdate{Name: &name})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCityRepository_UpdateWithNoFieldsIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	repo := cityRepository{db: db}

	err := repo.Update(context.Background(), 1, &dto.CityUpdate{})
	assert.NoError(t, err)
	// No SQL expected at all.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := userRepository{db: db}

	mock.ExpectQuery(`SELECT count(.+) FROM "users"`).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	taken, err := repo.ExistsByEmail(context.Background(), "alice@example.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	// Self-exclusion adds the id guard.
	mock.ExpectQuery(`SELECT count(.+) FROM "users"`).
		WithArgs("alice@example.com", 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	taken, err = repo.ExistsByEmail(context.Background(), "alice@example.com", 7)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestServiceRepository_CountByCity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := serviceRepository{db: db}

	mock.ExpectQuery(`SELECT count(.+) FROM "services"`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountByCity(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestUserRepository_SetAvatarURLClearsWithNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := userRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SetAvatarURL(context.Background(), 1, nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
