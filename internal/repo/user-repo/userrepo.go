package userrepo

import (
	"context"
	"time"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, email, name, role, password_hash
		FROM users
		WHERE email = $1
	`
	err := repo.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, email, name, role, password_hash
		FROM users
		WHERE id = $1
	`
	err := repo.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.Name, user.Role, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) UpdatePassword(ctx context.Context, userID int, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_expires = NULL
		WHERE id = $2
	`
	_, err := repo.db.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		zap.L().Error("can't update password", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) SetResetToken(ctx context.Context, userID int, token string, expires time.Time) error {
	query := `
		UPDATE users
		SET reset_token = $1, reset_expires = $2
		WHERE id = $3
	`
	_, err := repo.db.Exec(ctx, query, token, expires, userID)
	if err != nil {
		zap.L().Error("can't set reset token", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindByResetToken(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, email, name, role, password_hash
		FROM users
		WHERE reset_token = $1 AND reset_expires > now()
	`
	err := repo.db.QueryRow(ctx, query, token).Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by reset token", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) CreateStudent(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	query := `
		INSERT INTO students (user_id, reg_number, department, level)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, student.UserID, student.RegNumber, student.Department, student.Level).Scan(&student.ID)
	if err != nil {
		zap.L().Error("can't save student profile", zap.Error(err))
		return nil, err
	}
	return student, nil
}

func (repo *Repository) CreateStaff(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
	query := `
		INSERT INTO staff (user_id, position)
		VALUES ($1, $2)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, staff.UserID, staff.Position).Scan(&staff.ID)
	if err != nil {
		zap.L().Error("can't save staff profile", zap.Error(err))
		return nil, err
	}
	return staff, nil
}

func (repo *Repository) FindStudentByID(ctx context.Context, id int) (*domain.Student, error) {
	var student domain.Student
	query := `
		SELECT id, user_id, reg_number, department, level
		FROM students
		WHERE id = $1
	`
	err := repo.db.QueryRow(ctx, query, id).Scan(&student.ID, &student.UserID, &student.RegNumber, &student.Department, &student.Level)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find student", zap.Error(err))
		return nil, err
	}
	return &student, nil
}

func (repo *Repository) FindStudentByUserID(ctx context.Context, userID int) (*domain.Student, error) {
	var student domain.Student
	query := `
		SELECT id, user_id, reg_number, department, level
		FROM students
		WHERE user_id = $1
	`
	err := repo.db.QueryRow(ctx, query, userID).Scan(&student.ID, &student.UserID, &student.RegNumber, &student.Department, &student.Level)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find student by user", zap.Error(err))
		return nil, err
	}
	return &student, nil
}

func (repo *Repository) FindStaffByUserID(ctx context.Context, userID int) (*domain.Staff, error) {
	var staff domain.Staff
	query := `
		SELECT id, user_id, position
		FROM staff
		WHERE user_id = $1
	`
	err := repo.db.QueryRow(ctx, query, userID).Scan(&staff.ID, &staff.UserID, &staff.Position)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find staff by user", zap.Error(err))
		return nil, err
	}
	return &staff, nil
}
