package dto

type InitializePaymentRequestDTO struct {
	Email  string `json:"email" validate:"required,email"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
}

type VerifyPaymentRequestDTO struct {
	Reference string `json:"reference" validate:"required"`
}

type VerifyPaymentResponseDTO struct {
	Message string `json:"message"`
	Credit  int64  `json:"credit" example:"5"`
}
