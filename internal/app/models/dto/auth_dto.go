package dto

// RegisterRequest is the write shape for registering a staff account.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required,min=3,max=40"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required,max=70"`
	LastName    string `json:"lastName" binding:"omitempty,max=70"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=13"`
}

// LoginRequest authenticates by email or username plus password.
type LoginRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Username string `json:"username" binding:"omitempty"`
	Password string `json:"password" binding:"required"`
}

// Valid reports whether at least one login identifier was supplied.
func (r *LoginRequest) Valid() bool {
	return r.Password != "" && (r.Email != "" || r.Username != "")
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	ExpiresIn int    `json:"expiresIn"`
}

// RolesResponse lists the roles carried by the caller's token.
type RolesResponse struct {
	Roles []string `json:"roles"`
}
