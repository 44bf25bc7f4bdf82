package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/quickdeliver/backend/internal/domain"
)

var userCols = []string{
	"id", "name", "email", "password_hash", "role",
	"otp_hash", "otp_expires_at", "verified", "phone", "avatar", "created_at",
}

func userRowFixture(id, email string) *sqlmock.Rows {
	return sqlmock.NewRows(userCols).AddRow(
		id, "Jane", email, "$2a$10$hash", "user",
		nil, nil, false, nil, nil, time.Now(),
	)
}

func TestUserRepo_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	t.Run("success_mapping", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email =").
			WithArgs("jane@example.com").
			WillReturnRows(userRowFixture("u-1", "jane@example.com"))

		u, err := repo.GetByEmail(context.Background(), "  Jane@Example.COM ")
		assert.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
		assert.Equal(t, "jane@example.com", u.Email)
		assert.False(t, u.OTPPending())
	})

	t.Run("not_found_mapping", func(t *testing.T) {
		mock.ExpectQuery("SELECT").WithArgs("none@example.com").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmail(context.Background(), "none@example.com")
		assert.True(t, domain.Is(err, "user_not_found"))
	})

	t.Run("empty_email", func(t *testing.T) {
		_, err := repo.GetByEmail(context.Background(), "   ")
		assert.True(t, domain.Is(err, "missing_field"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("u-1", "Jane", "jane@example.com", "$2a$10$hash", "user", false).
			WillReturnRows(userRowFixture("u-1", "jane@example.com"))

		u, err := repo.Create(context.Background(), domain.User{
			ID: "u-1", Name: "Jane", Email: "jane@example.com",
			PasswordHash: "$2a$10$hash", Role: "user",
		})
		assert.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
	})

	t.Run("empty_role_defaults_to_user", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("u-3", "Jane", "jane3@example.com", "$2a$10$hash", string(domain.RoleUser), false).
			WillReturnRows(userRowFixture("u-3", "jane3@example.com"))

		u, err := repo.Create(context.Background(), domain.User{
			ID: "u-3", Name: "Jane", Email: "jane3@example.com",
			PasswordHash: "$2a$10$hash",
		})
		assert.NoError(t, err)
		assert.Equal(t, string(domain.RoleUser), u.Role)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(fmt.Errorf(`pq: duplicate key value violates unique constraint "users_email_key"`))

		_, err := repo.Create(context.Background(), domain.User{
			ID: "u-2", Name: "Jane", Email: "jane@example.com", PasswordHash: "h",
		})
		assert.True(t, domain.Is(err, "email_already_exists"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SetOTP(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)
	exp := time.Now().Add(10 * time.Minute)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("jane@example.com", "otp-hash", exp).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetOTP(context.Background(), "jane@example.com", "otp-hash", exp)
		assert.NoError(t, err)
	})

	t.Run("unknown_email", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("none@example.com", "otp-hash", exp).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetOTP(context.Background(), "none@example.com", "otp-hash", exp)
		assert.True(t, domain.Is(err, "user_not_found"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_ClearOTPAndVerify(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("jane@example.com", "otp-hash").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ClearOTPAndVerify(context.Background(), "jane@example.com", "otp-hash")
		assert.NoError(t, err)
	})

	t.Run("raced_away_clear", func(t *testing.T) {
		// the stored hash no longer matches: zero rows updated
		mock.ExpectExec("UPDATE users").
			WithArgs("jane@example.com", "stale-hash").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ClearOTPAndVerify(context.Background(), "jane@example.com", "stale-hash")
		assert.True(t, domain.Is(err, "otp_not_pending"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SetRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	t.Run("invalid_role", func(t *testing.T) {
		err := repo.SetRole(context.Background(), "u-1", "superadmin")
		assert.True(t, domain.Is(err, "invalid_role"))
	})

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("u-1", "admin").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SetRole(context.Background(), "u-1", "admin"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("DELETE FROM users").
		WithArgs("u-gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), "u-gone")
	assert.True(t, domain.Is(err, "user_not_found"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdateProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	rows := sqlmock.NewRows(userCols).AddRow(
		"u-1", "Janet", "jane@example.com", "$2a$10$hash", "user",
		nil, nil, true, "0400123456", nil, time.Now(),
	)
	mock.ExpectQuery("UPDATE users").
		WithArgs("u-1", "Janet", "0400123456").
		WillReturnRows(rows)

	u, err := repo.UpdateProfile(context.Background(), "u-1", "Janet", "0400123456")
	assert.NoError(t, err)
	assert.Equal(t, "Janet", u.Name)
	assert.Equal(t, "0400123456", u.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}
