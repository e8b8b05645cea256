package dto

import "time"

type WalletResponseDTO struct {
	Balance int64 `json:"balance" example:"42"`
}

type GetTransactionsResponseDTO struct {
	Amount    int64     `json:"amount" example:"10"`
	Currency  string    `json:"currency" example:"TOKEN"`
	Type      string    `json:"type" example:"fine"`
	Status    string    `json:"status" example:"completed"`
	CreatedAt time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}
