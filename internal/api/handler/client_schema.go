package handler

import "time"

// --- Request / Response types ---

type clientRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required,max=15"`
	Status   string `json:"status"   validate:"omitempty,oneof=active inactive suspended"`
}

// Response-only type owned by the transport layer, intentionally separate
// from the domain entity so the JSON contract is not coupled to internal
// changes.
type clientResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
