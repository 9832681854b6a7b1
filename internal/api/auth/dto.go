package auth

// LoginRequest is posted as an OAuth2 password form.
type LoginRequest struct {
	Username string `form:"username" validate:"required,max=64"`
	Password string `form:"password" validate:"required,max=72"`
}

type TokenResponse struct {
	AccessToken      string  `json:"access_token"`
	TokenType        string  `json:"token_type"`
	ExpiresInMinutes float64 `json:"expires_in_minutes"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
