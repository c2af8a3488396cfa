package dto

// LoginRequest payload for POST /login.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

// LoginResponse carries the issued token. ExpiresIn is the fixed session
// duration in the original's wire format ("2h").
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expiresIn"`
}

// ClaimsResponse mirrors the identity payload embedded in tokens.
type ClaimsResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ValidateResponse for GET /auth/validate.
type ValidateResponse struct {
	Valid bool           `json:"valid"`
	User  ClaimsResponse `json:"user"`
}

// ProfileResponse for GET /profile.
type ProfileResponse struct {
	Message string         `json:"message"`
	User    ClaimsResponse `json:"user"`
}
