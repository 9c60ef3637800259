package models

// User is an account row from /api/auth/{id} or /api/auth/all.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest is the /api/auth/login body.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// AuthResponse is the backend's JwtAuthResponse.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	Role        string `json:"role"`
	ID          int64  `json:"id"`
	Username    string `json:"username"`
}
