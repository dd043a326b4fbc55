package model

import "github.com/secmon-lab/riskboard/pkg/domain/types"

// SignupRequest is the body of POST /auth/signup
type SignupRequest struct {
	Email    string     `json:"email" validate:"required"`
	Password string     `json:"password" validate:"required" masq:"secret"`
	Role     types.Role `json:"role" validate:"required,role"`
}

func (r *SignupRequest) Validate() error {
	return validateStruct(r)
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required" masq:"secret"`
}

func (r *LoginRequest) Validate() error {
	return validateStruct(r)
}

// Identity is a user known to the Auth Provider
type Identity struct {
	ID    string
	Email string
}

// Session is issued by the Auth Provider at sign in. It is never persisted.
type Session struct {
	AccessToken string `masq:"secret"`
	Identity    *Identity
}

// SignupResult confirms that an identity was created. The provider sends
// the confirmation email; no token is issued here.
type SignupResult struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// AuthUser is the user object returned at login
type AuthUser struct {
	ID    string     `json:"id"`
	Email string     `json:"email"`
	Role  types.Role `json:"role"`
}

// LoginResult is the body returned by POST /auth/login
type LoginResult struct {
	Token string   `json:"token" masq:"secret"`
	User  AuthUser `json:"user"`
}
