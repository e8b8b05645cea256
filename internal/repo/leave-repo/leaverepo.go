package leaverepo

import (
	"context"
	"time"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	query := `
        SELECT id, student_id, reason, departure_date, return_date, staff_id,
               is_approved, is_rejected, is_checked_in, is_checked_out, is_fine_paid, created_at
        FROM leave_requests
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var req domain.LeaveRequest
	err := row.Scan(&req.ID, &req.StudentID, &req.Reason, &req.DepartureDate, &req.ReturnDate, &req.StaffID,
		&req.IsApproved, &req.IsRejected, &req.IsCheckedIn, &req.IsCheckedOut, &req.IsFinePaid, &req.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find leave request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

func (r *Repository) FindByStudentID(ctx context.Context, studentID int) ([]domain.LeaveRequest, error) {
	query := `
        SELECT id, student_id, reason, departure_date, return_date, staff_id,
               is_approved, is_rejected, is_checked_in, is_checked_out, is_fine_paid, created_at
        FROM leave_requests
        WHERE student_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		zap.L().Error("can't get leave requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.LeaveRequest
	for rows.Next() {
		var req domain.LeaveRequest
		err := rows.Scan(&req.ID, &req.StudentID, &req.Reason, &req.DepartureDate, &req.ReturnDate, &req.StaffID,
			&req.IsApproved, &req.IsRejected, &req.IsCheckedIn, &req.IsCheckedOut, &req.IsFinePaid, &req.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan leave request row", zap.Error(err))
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func (r *Repository) Save(ctx context.Context, req *domain.LeaveRequest) error {
	query := `
        INSERT INTO leave_requests (id, student_id, reason, departure_date, return_date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, req.ID, req.StudentID, req.Reason, req.DepartureDate, req.ReturnDate, req.CreatedAt)
		if err != nil {
			zap.L().Error("can't save leave request", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, req *domain.LeaveRequest) error {
	query := `
        UPDATE leave_requests
        SET staff_id = $1, is_approved = $2, is_rejected = $3,
            is_checked_in = $4, is_checked_out = $5, is_fine_paid = $6
        WHERE id = $7
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, req.StaffID, req.IsApproved, req.IsRejected,
			req.IsCheckedIn, req.IsCheckedOut, req.IsFinePaid, req.ID)
		if err != nil {
			zap.L().Error("failed to update leave request", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// FindOverdue returns requests whose return date has passed while the student
// is still checked out and no fine has been collected yet. The fine-paid
// filter keeps repeated sweep runs from double-charging.
func (r *Repository) FindOverdue(ctx context.Context, now time.Time, limit uint32) ([]domain.LeaveRequest, error) {
	query := `
        SELECT id, student_id, reason, departure_date, return_date, staff_id,
               is_approved, is_rejected, is_checked_in, is_checked_out, is_fine_paid, created_at
        FROM leave_requests
        WHERE return_date < $1
          AND is_checked_out = TRUE
          AND is_checked_in = FALSE
          AND is_fine_paid = FALSE
        ORDER BY return_date ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("can't get overdue leave requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.LeaveRequest
	for rows.Next() {
		var req domain.LeaveRequest
		err := rows.Scan(&req.ID, &req.StudentID, &req.Reason, &req.DepartureDate, &req.ReturnDate, &req.StaffID,
			&req.IsApproved, &req.IsRejected, &req.IsCheckedIn, &req.IsCheckedOut, &req.IsFinePaid, &req.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan overdue leave request row", zap.Error(err))
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}
