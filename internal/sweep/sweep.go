package sweep

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/exiat/backend/internal/config"
	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/notify"
	"github.com/exiat/backend/internal/service/leaveservice"
	"github.com/exiat/backend/internal/service/walletservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// processingRequests guards against the same request being fined twice by
// overlapping runs inside one process.
var processingRequests sync.Map

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

// Service is the overdue-fine sweep. Once a day it finds leave requests whose
// return date has passed while the student never checked back in, and debits
// the fine through the wallet ledger. Failures are isolated per request, one
// bad row never stops the sweep.
type Service struct {
	leaveRepo   leaveservice.Repo
	studentRepo leaveservice.StudentRepo
	userRepo    UserRepo
	ledger      leaveservice.Ledger
	sender      notify.Sender
	fineAmount  int64
	runAt       string
	limit       uint32
	workerPool  WorkerPoolI
}

func New(cfg *config.Config, leaveRepo leaveservice.Repo, studentRepo leaveservice.StudentRepo, userRepo UserRepo, ledger leaveservice.Ledger, sender notify.Sender) *Service {
	return &Service{
		leaveRepo:   leaveRepo,
		studentRepo: studentRepo,
		userRepo:    userRepo,
		ledger:      ledger,
		sender:      sender,
		fineAmount:  cfg.FineAmount,
		runAt:       cfg.SweepTime,
		limit:       1000,
		workerPool:  NewWorkerPool(10),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Fine sweep started", zap.String("runAt", s.runAt))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	for {
		next, err := nextRun(time.Now(), s.runAt)
		if err != nil {
			zap.L().Error("Invalid sweep time, sweep disabled", zap.Error(err))
			return
		}
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			zap.L().Info("Context canceled, stopping sweep")
			return
		case <-timer.C:
			s.RunOnce(ctx)
		}
	}
}

// nextRun returns the next occurrence of the "15:04" time of day after now.
func nextRun(now time.Time, runAt string) (time.Time, error) {
	at, err := time.Parse("15:04", runAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("can't parse sweep time %q: %w", runAt, err)
	}
	next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next, nil
}

// RunOnce performs a single sweep pass. It is the schedulable unit and can be
// driven directly in tests.
func (s *Service) RunOnce(ctx context.Context) {
	overdue, err := s.leaveRepo.FindOverdue(ctx, time.Now(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch overdue leave requests", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, req := range overdue {
		req := req

		if _, loaded := processingRequests.LoadOrStore(req.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingRequests.Delete(req.ID)
				return s.processFine(ctx, req)
			})
			if err != nil {
				processingRequests.Delete(req.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing fines", zap.Error(err))
	}
}

func (s *Service) processFine(ctx context.Context, req domain.LeaveRequest) error {
	student, err := s.studentRepo.FindStudentByID(ctx, req.StudentID)
	if err != nil {
		return fmt.Errorf("failed to load student %d: %w", req.StudentID, err)
	}
	if student == nil {
		return fmt.Errorf("no student %d for request %s", req.StudentID, req.ID)
	}

	if _, err := s.ledger.ApplyTransaction(ctx, student.UserID, s.fineAmount, leaveservice.Currency, domain.TxnTypeFine); err != nil {
		if errors.Is(err, walletservice.ErrInsufficientFunds) {
			zap.L().Warn("Fine payment failed, insufficient funds",
				zap.String("requestID", req.ID),
				zap.Int("studentID", req.StudentID),
			)
			return nil
		}
		return fmt.Errorf("failed to debit fine for request %s: %w", req.ID, err)
	}

	req.IsFinePaid = true
	if err := s.leaveRepo.Update(ctx, &req); err != nil {
		return fmt.Errorf("failed to update request %s after fine: %w", req.ID, err)
	}

	s.notifyStudent(ctx, student.UserID, req)

	zap.L().Info("Fine collected",
		zap.String("requestID", req.ID),
		zap.Int("studentID", req.StudentID),
		zap.Int64("amount", s.fineAmount),
	)
	return nil
}

func (s *Service) notifyStudent(ctx context.Context, userID int, req domain.LeaveRequest) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		zap.L().Warn("Can't resolve user for fine notification", zap.Int("userID", userID), zap.Error(err))
		return
	}

	body := fmt.Sprintf(
		"You did not check in after your leave expired on %s. A fine of %d tokens was charged to your wallet.",
		req.ReturnDate.Format("02 Jan 2006"), s.fineAmount,
	)
	if err := s.sender.Send([]string{user.Email}, "Overdue leave fine", body); err != nil {
		zap.L().Warn("Fine notification failed", zap.String("requestID", req.ID), zap.Error(err))
	}
}
