package models

// RegistrationDraft is the sign-up form. The confirmation travels as
// "password2", the name the backend's serializer expects.
type RegistrationDraft struct {
	Email                string `json:"email"`
	Username             string `json:"username"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password2" validate:"eqfield=Password"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenPair is returned by registration and sign-in.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
