package dto

type RegisterRequestDTO struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=4"`
	Name      string `json:"name" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=Student Secretary 'Parent/Guardian' SecurityGuard"`
	RegNumber string `json:"reg_number,omitempty"`
	Position  string `json:"position,omitempty"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type ForgotPasswordRequestDTO struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequestDTO struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
}

type UpdatePasswordRequestDTO struct {
	Password        string `json:"password" validate:"required,min=4"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}
