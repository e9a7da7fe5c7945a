package request

import (
	"strings"

	"nomaddesk/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return newCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,max=100"`
}

func (r *RegisterRequest) ToDomain() (user.Credentials, error) {
	return newCredentials(r.Email, r.Password)
}

func (r *RegisterRequest) TrimmedName() string {
	return strings.TrimSpace(r.Name)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func newCredentials(email, password string) (user.Credentials, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return user.Credentials{}, err
	}
	p, err := user.NewPassword(password)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(e, p), nil
}
