package dto

import "time"

// SubmitLeaveRequestDTO carries no student id, the student is resolved from
// the authenticated user.
type SubmitLeaveRequestDTO struct {
	Reason        string    `json:"reason" validate:"required"`
	DepartureDate time.Time `json:"departure_date" validate:"required"`
	ReturnDate    time.Time `json:"return_date" validate:"required"`
}

type LeaveDecisionRequestDTO struct {
	RequestID string `json:"request_id" validate:"required,uuid4"`
	StaffID   int    `json:"staff_id" validate:"required"`
}

type GatePassRequestDTO struct {
	RequestID string `json:"request_id" validate:"required,uuid4"`
}

type LeaveRequestResponseDTO struct {
	ID            string    `json:"id" example:"9c2b5f0a-7f3e-4d92-b1c6-0de0c8a4f210"`
	StudentID     int       `json:"student_id" example:"1"`
	Reason        string    `json:"reason" example:"Medical appointment"`
	DepartureDate time.Time `json:"departure_date"`
	ReturnDate    time.Time `json:"return_date"`
	StaffID       *int      `json:"staff_id,omitempty"`
	IsApproved    bool      `json:"is_approved"`
	IsRejected    bool      `json:"is_rejected"`
	IsCheckedIn   bool      `json:"is_checked_in"`
	IsCheckedOut  bool      `json:"is_checked_out"`
	IsFinePaid    bool      `json:"is_fine_paid"`
}
