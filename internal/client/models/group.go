package models

import "time"

type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Members   []User    `json:"members,omitempty"`
}

type CreateGroupRequest struct {
	Name string `json:"name"`
}

type UpdateGroupRequest struct {
	Name string `json:"name"`
}

// AddMemberRequest invites an existing user to a group by email.
type AddMemberRequest struct {
	UserEmail string `json:"user_email"`
}

// MessageResponse is the acknowledgement body of update/delete calls.
type MessageResponse struct {
	Message string `json:"message"`
}
