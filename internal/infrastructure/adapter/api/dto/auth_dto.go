package dto

// SignUpRequest is the body of POST /api/auth/sign-up
type SignUpRequest struct {
	Username  string `json:"username" binding:"required,min=5,max=50"`
	Email     string `json:"email" binding:"required,email,min=5,max=255"`
	Password  string `json:"password" binding:"required,min=6,max=255"`
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
}

// SignInRequest is the body of POST /api/auth/sign-in
type SignInRequest struct {
	Username string `json:"username" binding:"required,min=5,max=50"`
	Password string `json:"password" binding:"required,max=255"`
}

// TokenResponse carries the bearer token returned by sign-up and sign-in
type TokenResponse struct {
	Token string `json:"token"`
}
