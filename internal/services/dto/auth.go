package dto

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=32"`
	Role     string `json:"role" validate:"required,is-account-role"`

	// Optional profile fields
	Address            string `json:"address" validate:"omitempty,max=200"`
	Gender             string `json:"gender" validate:"omitempty,is-gender"`
	Skills             string `json:"skills" validate:"omitempty,max=500"`
	CompanyDescription string `json:"company_description" validate:"omitempty,max=1000"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,is-account-role"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetResponse reports the outcome of a reset request. Mail
// dispatch is best-effort: when it fails the token is still issued and
// Warning tells the caller the notification may not have arrived.
type PasswordResetResponse struct {
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=32"`
}
