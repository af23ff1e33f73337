package services

import (
	"testing"
	"time"

	"carebridge-org/carebridge/models"
	"carebridge-org/carebridge/testutils"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCreateForUser_Success(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	userID := uuid.Must(uuid.Parse("123e4567-e89b-12d3-a456-426614174000"))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectQuery(`INSERT INTO "outbox_events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	service := &NotificationService{}
	notification, err := service.CreateForUser(db, userID, NotificationInput{
		Title:   "Welcome",
		Message: "Thanks for joining us",
	})
	assert.NoError(t, err)
	assert.Equal(t, userID, notification.UserID)
	assert.Equal(t, models.NotificationInfo, notification.Type)
	assert.False(t, notification.IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateForUser_BlankTitle(t *testing.T) {
	db, _, close := testutils.SetupMockDB()
	defer close()

	service := &NotificationService{}
	_, err := service.CreateForUser(db, uuid.New(), NotificationInput{
		Title:   "   ",
		Message: "body",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateForUser_UnknownRecipient(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	userID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	service := &NotificationService{}
	_, err := service.CreateForUser(db, userID, NotificationInput{
		Title:   "Hello",
		Message: "body",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateForUsers_SkipsFailedRecipients(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	okUser := uuid.Must(uuid.Parse("11111111-1111-1111-1111-111111111111"))
	missingUser := uuid.Must(uuid.Parse("22222222-2222-2222-2222-222222222222"))
	otherUser := uuid.Must(uuid.Parse("33333333-3333-3333-3333-333333333333"))

	// first recipient succeeds
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs(okUser).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectQuery(`INSERT INTO "outbox_events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	// second recipient does not exist, the failure is skipped
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs(missingUser).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	// third recipient succeeds despite the earlier failure
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs(otherUser).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectQuery(`INSERT INTO "outbox_events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	service := &NotificationService{}
	created, err := service.CreateForUsers(db, []uuid.UUID{okUser, missingUser, otherUser}, NotificationInput{
		Title:   "Maintenance window",
		Message: "The portal will be down tonight",
		Type:    models.NotificationWarning,
	})
	assert.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, okUser, created[0].UserID)
	assert.Equal(t, otherUser, created[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateForUsers_EmptyRecipients(t *testing.T) {
	db, _, close := testutils.SetupMockDB()
	defer close()

	service := &NotificationService{}
	_, err := service.CreateForUsers(db, []uuid.UUID{}, NotificationInput{
		Title:   "Hello",
		Message: "body",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetNotifications_FiltersAndPagination(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	userID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	mock.ExpectQuery(`SELECT (.+) FROM "notifications" WHERE user_id = \$1 AND is_read = \$2 ORDER BY created_at DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(userID.String(), false, 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "message", "type", "link", "is_read", "created_at"}).
			AddRow(uuid.New(), userID, "Second page", "body", "info", "", false, time.Now()))

	service := &NotificationService{}
	notifications, total, err := service.GetNotifications(db, map[string]interface{}{
		"user_id": userID.String(),
		"is_read": false,
	}, 2, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, notifications, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotifications_PageBeyondEnd(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	mock.ExpectQuery(`SELECT (.+) FROM "notifications" ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 90).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "message", "type", "link", "is_read", "created_at"}))

	service := &NotificationService{}
	notifications, total, err := service.GetNotifications(db, map[string]interface{}{}, 10, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, notifications)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBellFeed(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "notifications" WHERE user_id = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs(userID, 15).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "message", "type", "link", "is_read", "created_at"}).
			AddRow(uuid.New(), userID, "New story", "A new story was published", "info", "/stories", false, time.Now()).
			AddRow(uuid.New(), userID, "Thanks", "Donation received", "success", "", true, time.Now()))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE user_id = \$1 AND is_read = \$2`).
		WithArgs(userID, false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	service := &NotificationService{}
	notifications, unread, err := service.GetBellFeed(db, userID, 15)
	assert.NoError(t, err)
	assert.Len(t, notifications, 2)
	assert.Equal(t, int64(1), unread)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAsRead_Unread(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	notificationID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "notifications" WHERE id = \$1 ORDER BY "notifications"."id" LIMIT \$2`).
		WithArgs(notificationID.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "message", "type", "link", "is_read", "created_at"}).
			AddRow(notificationID, userID, "Hello", "body", "info", "", false, time.Now()))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET "is_read"=\$1 WHERE "id" = \$2`).
		WithArgs(true, notificationID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	service := &NotificationService{}
	notification, err := service.MarkAsRead(db, notificationID.String())
	assert.NoError(t, err)
	assert.True(t, notification.IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAsRead_AlreadyRead(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	notificationID := uuid.New()

	// already-read rows are returned as-is, no update is issued
	mock.ExpectQuery(`SELECT (.+) FROM "notifications" WHERE id = \$1 ORDER BY "notifications"."id" LIMIT \$2`).
		WithArgs(notificationID.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "message", "type", "link", "is_read", "created_at"}).
			AddRow(notificationID, uuid.New(), "Hello", "body", "info", "", true, time.Now()))

	service := &NotificationService{}
	notification, err := service.MarkAsRead(db, notificationID.String())
	assert.NoError(t, err)
	assert.True(t, notification.IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAsRead_NotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "notifications" WHERE id = \$1 ORDER BY "notifications"."id" LIMIT \$2`).
		WithArgs("missing-id", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	service := &NotificationService{}
	_, err := service.MarkAsRead(db, "missing-id")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAllAsRead(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET "is_read"=\$1 WHERE user_id = \$2 AND is_read = \$3`).
		WithArgs(true, userID, false).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	service := &NotificationService{}
	updated, err := service.MarkAllAsRead(db, userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotification_Success(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	notificationID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "notifications" WHERE id = \$1`).
		WithArgs(notificationID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	service := &NotificationService{}
	err := service.DeleteNotification(db, notificationID.String())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotification_NotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "notifications" WHERE id = \$1`).
		WithArgs("missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	service := &NotificationService{}
	err := service.DeleteNotification(db, "missing-id")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
