package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsvlabs/storefront-backend/internal/constants"
	"github.com/gsvlabs/storefront-backend/internal/database"
	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

func setupUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(&database.Pool{DB: db}), mock
}

func userColumns() []string {
	return []string{"id", "name", "email", "password_hash", "salt", "image", "mobile", "bio", "created_at", "updated_at"}
}

func userRow(id int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userColumns()).
		AddRow(id, "Jane", "jane@example.com", "hash", "salt",
			constants.DefaultProfileImage, constants.DefaultProfileMobile, constants.DefaultProfileBio, now, now)
}

func TestUserRepositoryCreate(t *testing.T) {
	repo, mock := setupUserRepo(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Jane", "jane@example.com", "hash", "salt",
			constants.DefaultProfileImage, constants.DefaultProfileMobile, constants.DefaultProfileBio).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))

	user := &models.User{
		Name:         "Jane",
		Email:        "jane@example.com",
		PasswordHash: "hash",
		Salt:         "salt",
	}
	user.ApplyProfileDefaults()

	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreate_DuplicateEmail(t *testing.T) {
	repo, mock := setupUserRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{
			Code:       pq.ErrorCode(constants.PGErrorDuplicateConstraint),
			Constraint: "users_email_key",
		})

	err := repo.Create(context.Background(), &models.User{Email: "jane@example.com"})

	assert.True(t, utils.IsDuplicateError(err))
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, constants.MsgEmailRegistered, appErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByID(t *testing.T) {
	repo, mock := setupUserRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM users\s+WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(userRow(1))

	user, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByID_NotFound(t *testing.T) {
	repo, mock := setupUserRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM users\s+WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)

	assert.True(t, utils.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	repo, mock := setupUserRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM users\s+WHERE email = \$1`).
		WithArgs("jane@example.com").
		WillReturnRows(userRow(1))

	user, err := repo.GetByEmail(context.Background(), "jane@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryExistsByEmail(t *testing.T) {
	repo, mock := setupUserRepo(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(context.Background(), "jane@example.com")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdateProfile(t *testing.T) {
	repo, mock := setupUserRepo(t)

	mock.ExpectQuery(`UPDATE users\s+SET name = \$1`).
		WithArgs("Janet", "img", "+111", "new bio", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

	user := &models.User{ID: 1, Name: "Janet", Image: "img", Mobile: "+111", Bio: "new bio"}
	err := repo.UpdateProfile(context.Background(), user)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdatePassword(t *testing.T) {
	repo, mock := setupUserRepo(t)

	mock.ExpectExec(`UPDATE users\s+SET password_hash = \$1`).
		WithArgs("newhash", "newsalt", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePassword(context.Background(), 1, "newhash", "newsalt")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdatePassword_NotFound(t *testing.T) {
	repo, mock := setupUserRepo(t)

	mock.ExpectExec(`UPDATE users\s+SET password_hash = \$1`).
		WithArgs("newhash", "newsalt", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), 99, "newhash", "newsalt")

	assert.True(t, utils.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
