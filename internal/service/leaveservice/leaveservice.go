package leaveservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/pg"
	"github.com/exiat/backend/internal/service/walletservice"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	FindByStudentID(ctx context.Context, studentID int) ([]domain.LeaveRequest, error)
	Save(ctx context.Context, req *domain.LeaveRequest) error
	Update(ctx context.Context, req *domain.LeaveRequest) error
	FindOverdue(ctx context.Context, now time.Time, limit uint32) ([]domain.LeaveRequest, error)
}

type StudentRepo interface {
	FindStudentByID(ctx context.Context, id int) (*domain.Student, error)
	FindStudentByUserID(ctx context.Context, userID int) (*domain.Student, error)
}

// Ledger is the wallet surface the workflow needs: a balance read for the
// submission precondition and a debit for the filing fee.
type Ledger interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	ApplyTransaction(ctx context.Context, userID int, amount int64, currency, txnType string) (*domain.WalletTransaction, error)
}

const Currency = "TOKEN"

var (
	ErrEmptyReason     = errors.New("reason can not be blank")
	ErrRequestNotFound = errors.New("leave request not found")
	ErrStudentNotFound = errors.New("student not found")
)

type Service struct {
	repo        Repo
	studentRepo StudentRepo
	ledger      Ledger
	txManager   pg.TXManager
	filingFee   int64
}

func New(repo Repo, studentRepo StudentRepo, ledger Ledger, txManager pg.TXManager, filingFee int64) *Service {
	return &Service{
		repo:        repo,
		studentRepo: studentRepo,
		ledger:      ledger,
		txManager:   txManager,
		filingFee:   filingFee,
	}
}

// Submit creates a leave request for the student behind userID and debits the
// filing fee. The insert and the debit run in one transaction, if the fee
// can't be collected the request row rolls back with it.
func (s *Service) Submit(ctx context.Context, userID int, reason string, departureDate, returnDate time.Time) (*domain.LeaveRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrEmptyReason
	}

	student, err := s.studentRepo.FindStudentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		zap.L().Info("submit without a student profile", zap.Int("userID", userID))
		return nil, ErrStudentNotFound
	}

	wallet, err := s.ledger.GetWallet(ctx, student.UserID)
	if err != nil {
		return nil, err
	}
	if wallet.Balance <= 0 {
		zap.L().Info("submit rejected, empty wallet", zap.Int("studentID", student.ID))
		return nil, walletservice.ErrInsufficientFunds
	}

	req := &domain.LeaveRequest{
		ID:            uuid.NewString(),
		StudentID:     student.ID,
		Reason:        reason,
		DepartureDate: departureDate,
		ReturnDate:    returnDate,
		CreatedAt:     time.Now(),
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Save(ctx, req); err != nil {
			zap.L().Error("can't save leave request: ", zap.Error(err))
			return err
		}
		if _, err := s.ledger.ApplyTransaction(ctx, student.UserID, s.filingFee, Currency, domain.TxnTypePayment); err != nil {
			zap.L().Error("can't debit filing fee: ", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("leave request submitted", zap.String("requestID", req.ID), zap.Int("studentID", student.ID))
	return req, nil
}

// Approve marks the request approved and records the acting staff member.
// Approving an already rejected request flips it back, the two flags never
// hold true together.
func (s *Service) Approve(ctx context.Context, requestID string, staffID int) (*domain.LeaveRequest, error) {
	req, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}

	req.IsApproved = true
	req.IsRejected = false
	req.StaffID = &staffID
	if err := s.repo.Update(ctx, req); err != nil {
		zap.L().Error("can't approve leave request: ", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (s *Service) Reject(ctx context.Context, requestID string, staffID int) (*domain.LeaveRequest, error) {
	req, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}

	req.IsApproved = false
	req.IsRejected = true
	req.StaffID = &staffID
	if err := s.repo.Update(ctx, req); err != nil {
		zap.L().Error("can't reject leave request: ", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// CheckIn records the student back on campus. Approval state is not checked,
// security logs whoever shows up at the gate.
func (s *Service) CheckIn(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	req, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}

	req.IsCheckedIn = true
	req.IsCheckedOut = false
	if err := s.repo.Update(ctx, req); err != nil {
		zap.L().Error("can't check in student: ", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (s *Service) CheckOut(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	req, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}

	req.IsCheckedOut = true
	req.IsCheckedIn = false
	if err := s.repo.Update(ctx, req); err != nil {
		zap.L().Error("can't check out student: ", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// ListByUser returns the requests of the student behind userID. Callers pass
// the authenticated user, never a client-supplied student id.
func (s *Service) ListByUser(ctx context.Context, userID int) ([]domain.LeaveRequest, error) {
	student, err := s.studentRepo.FindStudentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	reqs, err := s.repo.FindByStudentID(ctx, student.ID)
	if err != nil {
		zap.L().Error("failed to get leave requests", zap.Error(err))
		return nil, err
	}
	return reqs, nil
}
