package dto

import "time"

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
}

type UserResponse struct {
	Id        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
