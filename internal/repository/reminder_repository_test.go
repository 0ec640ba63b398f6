package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"reviewdash/internal/model"
	"reviewdash/internal/repository"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestReminderRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	reminderRepo := repository.NewReminderRepository(gormDB)

	logID := uuid.New()
	log := &model.ReminderLog{
		ID:            logID,
		DocumentID:    uuid.New(),
		ReviewerID:    uuid.New(),
		SentTimestamp: time.Now(),
		Status:        model.ReminderSent,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reminder_logs"`).
		WithArgs(sqlmock.AnyArg(), log.DocumentID, log.ReviewerID, sqlmock.AnyArg(), string(model.ReminderSent)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(logID.String()))
	mock.ExpectCommit()

	// Act
	err := reminderRepo.Create(context.Background(), log)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReminderRepository_UpdateStatus(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	reminderRepo := repository.NewReminderRepository(gormDB)

	logID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "reminder_logs" SET "status"`).
		WithArgs(string(model.ReminderOpened), logID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := reminderRepo.UpdateStatus(context.Background(), logID, model.ReminderOpened)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReminderRepository_UpdateStatus_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	reminderRepo := repository.NewReminderRepository(gormDB)

	logID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "reminder_logs" SET "status"`).
		WithArgs(string(model.ReminderOpened), logID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := reminderRepo.UpdateStatus(context.Background(), logID, model.ReminderOpened)

	// Assert
	assert.ErrorIs(t, err, repository.ErrReminderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReminderRepository_SentSince(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	reminderRepo := repository.NewReminderRepository(gormDB)

	documentID := uuid.New()
	reviewerID := uuid.New()
	since := time.Now().Add(-24 * time.Hour)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "reminder_logs"`).
		WithArgs(documentID, reviewerID, since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	// Act
	sent, err := reminderRepo.SentSince(context.Background(), documentID, reviewerID, since)

	// Assert
	assert.NoError(t, err)
	assert.True(t, sent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewerRepository_FindByName_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	reviewerRepo := repository.NewReviewerRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "reviewers" WHERE name = .* LIMIT .*`).
		WithArgs("Nobody").
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	reviewer, err := reviewerRepo.FindByName(context.Background(), "Nobody")

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, reviewer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewerRepository_GetByID_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	reviewerRepo := repository.NewReviewerRepository(gormDB)

	reviewerID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "reviewers" WHERE id = .* LIMIT .*`).
		WithArgs(reviewerID).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	reviewer, err := reviewerRepo.GetByID(context.Background(), reviewerID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrReviewerNotFound)
	assert.Nil(t, reviewer)
	assert.NoError(t, mock.ExpectationsWereMet())
}
