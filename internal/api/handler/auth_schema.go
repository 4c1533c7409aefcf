package handler

// --- Request / Response types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Email   string `json:"email"`
}

type verifyResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type profileResponse struct {
	Email          string `json:"email"`
	Username       string `json:"username"`
	Bio            string `json:"bio,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type updateProfileRequest struct {
	Username       *string `json:"username"        validate:"omitempty,max=50"`
	Bio            *string `json:"bio"             validate:"omitempty,max=500"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,max=500"`
}
