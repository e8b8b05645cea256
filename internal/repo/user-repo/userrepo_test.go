package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/exiat/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

const findByEmailQuery = `
		SELECT id, email, name, role, password_hash
		FROM users
		WHERE email = $1
	`

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "user@school.edu",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "name", "role", "password_hash"}).
					AddRow(1, "user@school.edu", "Ada", domain.RoleStudent, "hashed_password")
				mock.ExpectQuery(regexp.QuoteMeta(findByEmailQuery)).
					WithArgs("user@school.edu").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Email:        "user@school.edu",
				Name:         "Ada",
				Role:         domain.RoleStudent,
				PasswordHash: "hashed_password",
			},
		},
		{
			name:  "User not found",
			email: "nobody@school.edu",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByEmailQuery)).
					WithArgs("nobody@school.edu").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "user@school.edu",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByEmailQuery)).
					WithArgs("user@school.edu").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
		INSERT INTO users (email, name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	t.Run("User created", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("user@school.edu", "Ada", domain.RoleStudent, "hashed_password").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

		user, err := repo.Create(context.Background(), &domain.User{
			Email:        "user@school.edu",
			Name:         "Ada",
			Role:         domain.RoleStudent,
			PasswordHash: "hashed_password",
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("user@school.edu", "Ada", domain.RoleStudent, "hashed_password").
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(context.Background(), &domain.User{
			Email:        "user@school.edu",
			Name:         "Ada",
			Role:         domain.RoleStudent,
			PasswordHash: "hashed_password",
		})
		assert.Error(t, err)
	})
}

func TestRepository_UpdatePassword(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_expires = NULL
		WHERE id = $2
	`

	t.Run("Password updated and token cleared", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs("new_hash", 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdatePassword(context.Background(), 1, "new_hash")
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs("new_hash", 1).
			WillReturnError(errors.New("database error"))

		err := repo.UpdatePassword(context.Background(), 1, "new_hash")
		assert.Error(t, err)
	})
}

func TestRepository_SetResetToken(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
		UPDATE users
		SET reset_token = $1, reset_expires = $2
		WHERE id = $3
	`
	expires := time.Now().Add(time.Hour)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("token123", expires, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetResetToken(context.Background(), 1, "token123", expires)
	assert.NoError(t, err)
}

func TestRepository_FindByResetToken(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
		SELECT id, email, name, role, password_hash
		FROM users
		WHERE reset_token = $1 AND reset_expires > now()
	`

	t.Run("Valid token", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "email", "name", "role", "password_hash"}).
			AddRow(1, "user@school.edu", "Ada", domain.RoleStudent, "hashed_password")
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("token123").
			WillReturnRows(rows)

		user, err := repo.FindByResetToken(context.Background(), "token123")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("Expired or unknown token", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("badtoken").
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.FindByResetToken(context.Background(), "badtoken")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_CreateStudent(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
		INSERT INTO students (user_id, reg_number, department, level)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(1, "2021/123456", "", "").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

	student, err := repo.CreateStudent(context.Background(), &domain.Student{
		UserID:    1,
		RegNumber: "2021/123456",
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, student.ID)
}

func TestRepository_CreateStaff(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
		INSERT INTO staff (user_id, position)
		VALUES ($1, $2)
		RETURNING id
	`

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(2, "Faculty secretary").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))

	staff, err := repo.CreateStaff(context.Background(), &domain.Staff{
		UserID:   2,
		Position: "Faculty secretary",
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, staff.ID)
}

func TestRepository_FindStudentByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
		SELECT id, user_id, reg_number, department, level
		FROM students
		WHERE id = $1
	`

	t.Run("Student found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "reg_number", "department", "level"}).
			AddRow(1, 10, "2021/123456", "Computer Science", "300")
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1).
			WillReturnRows(rows)

		student, err := repo.FindStudentByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 10, student.UserID)
	})

	t.Run("Student not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		student, err := repo.FindStudentByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, student)
	})
}

func TestRepository_FindStaffByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
		SELECT id, user_id, position
		FROM staff
		WHERE user_id = $1
	`

	rows := pgxmock.NewRows([]string{"id", "user_id", "position"}).
		AddRow(1, 2, "Faculty secretary")
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(2).
		WillReturnRows(rows)

	staff, err := repo.FindStaffByUserID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, "Faculty secretary", staff.Position)
}
