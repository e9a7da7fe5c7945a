package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"nomaddesk/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	User         UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Avatar   *string   `json:"avatar,omitempty"`
	IsActive bool      `json:"is_active"`
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
