package domain

import "time"

// User roles as stored in users.role.
const (
	RoleStudent        = "Student"
	RoleSecretary      = "Secretary"
	RoleParentGuardian = "Parent/Guardian"
	RoleSecurityGuard  = "SecurityGuard"
)

type User struct {
	ID           int        `db:"id"`
	Email        string     `db:"email"`
	Name         string     `db:"name"`
	Role         string     `db:"role"`
	PasswordHash string     `db:"password_hash"`
	ResetToken   *string    `db:"reset_token"`
	ResetExpires *time.Time `db:"reset_expires"`
	CreatedAt    time.Time  `db:"created_at"`
}

type Student struct {
	ID         int    `db:"id"`
	UserID     int    `db:"user_id"`
	RegNumber  string `db:"reg_number"`
	Department string `db:"department"`
	Level      string `db:"level"`
}

type Staff struct {
	ID       int    `db:"id"`
	UserID   int    `db:"user_id"`
	Position string `db:"position"`
}

// Wallet balance is held in whole token units.
type Wallet struct {
	ID      int   `db:"id"`
	UserID  int   `db:"user_id"`
	Balance int64 `db:"balance"`
}

// Transaction kinds. Payment and Fine debit the wallet, TopUp and Refund
// credit it.
const (
	TxnTypePayment = "payment"
	TxnTypeTopUp   = "topup"
	TxnTypeFine    = "fine"
	TxnTypeRefund  = "refund"
)

const (
	TxnStatusPending   = "pending"
	TxnStatusCompleted = "completed"
	TxnStatusFailed    = "failed"
)

// WalletTransaction is an append-only ledger entry. Rows are never updated
// after insert.
type WalletTransaction struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Amount    int64     `db:"amount"`
	Currency  string    `db:"currency"`
	Type      string    `db:"type"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// LeaveRequest tracks one exeat from submission to closure. IsApproved and
// IsRejected stay mutually exclusive, as do IsCheckedIn and IsCheckedOut.
// IsFinePaid is set once by the fine sweep.
type LeaveRequest struct {
	ID            string    `db:"id"`
	StudentID     int       `db:"student_id"`
	Reason        string    `db:"reason"`
	DepartureDate time.Time `db:"departure_date"`
	ReturnDate    time.Time `db:"return_date"`
	StaffID       *int      `db:"staff_id"`
	IsApproved    bool      `db:"is_approved"`
	IsRejected    bool      `db:"is_rejected"`
	IsCheckedIn   bool      `db:"is_checked_in"`
	IsCheckedOut  bool      `db:"is_checked_out"`
	IsFinePaid    bool      `db:"is_fine_paid"`
	CreatedAt     time.Time `db:"created_at"`
}
