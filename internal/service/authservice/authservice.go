package authservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/notify"
	"github.com/exiat/backend/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
	SetResetToken(ctx context.Context, userID int, token string, expires time.Time) error
	FindByResetToken(ctx context.Context, token string) (*domain.User, error)
	CreateStudent(ctx context.Context, student *domain.Student) (*domain.Student, error)
	CreateStaff(ctx context.Context, staff *domain.Staff) (*domain.Staff, error)
	FindStudentByUserID(ctx context.Context, userID int) (*domain.Student, error)
	FindStaffByUserID(ctx context.Context, userID int) (*domain.Staff, error)
}

type WalletCreator interface {
	CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
}

var (
	ErrEmailTaken         = errors.New("account with that email address already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("password reset token is invalid or has expired")
)

const resetTokenTTL = time.Hour

type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	Role      string
	RegNumber string
	Position  string
}

type Service struct {
	userRepo    Repo
	wallets     WalletCreator
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	sender      notify.Sender
}

func New(repo Repo, wallets WalletCreator, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, sender notify.Sender) *Service {
	return &Service{
		userRepo:    repo,
		wallets:     wallets,
		hashService: hashService,
		jwtService:  jwtService,
		sender:      sender,
	}
}

// Register creates the user record, its wallet and the Student or Staff
// profile matching the role.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, email: ", zap.String("email", in.Email))
		return nil, ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(in.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Email:        in.Email,
		Name:         in.Name,
		Role:         in.Role,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	if _, err = s.wallets.CreateWallet(ctx, newUser.ID); err != nil {
		zap.L().Error("can't create wallet: ", zap.Error(err))
		return nil, err
	}

	switch in.Role {
	case domain.RoleStudent:
		_, err = s.userRepo.CreateStudent(ctx, &domain.Student{
			UserID:    newUser.ID,
			RegNumber: in.RegNumber,
		})
	case domain.RoleSecretary, domain.RoleSecurityGuard:
		_, err = s.userRepo.CreateStaff(ctx, &domain.Staff{
			UserID:   newUser.ID,
			Position: in.Position,
		})
	}
	if err != nil {
		zap.L().Error("can't create profile: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", in.Email))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) UpdatePassword(ctx context.Context, userID int, password string) error {
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		zap.L().Error("can't update password: ", zap.Error(err))
		return err
	}
	return nil
}

// ForgotPassword issues a reset token and mails it. An unknown email is not
// an error, callers get the same answer either way.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		zap.L().Info("password reset for unknown email", zap.String("email", email))
		return nil
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("can't generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.userRepo.SetResetToken(ctx, user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		zap.L().Error("can't store reset token: ", zap.Error(err))
		return err
	}

	go func() {
		body := fmt.Sprintf("You are receiving this because a password reset was requested for your account.\n\nToken: %s\n\nIf you did not request this, ignore this email.", token)
		if err := s.sender.Send([]string{user.Email}, "Reset your password", body); err != nil {
			zap.L().Error("can't send reset email", zap.Error(err))
		}
	}()

	return nil
}

func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	user, err := s.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidResetToken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		zap.L().Error("can't reset password: ", zap.Error(err))
		return err
	}
	zap.L().Info("password reset", zap.Int("userID", user.ID))
	return nil
}
