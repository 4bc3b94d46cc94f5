package domain

import (
	"errors"
	"time"
)

// ClientStatus represents the account state of a managed client.
type ClientStatus string

const (
	ClientActive    ClientStatus = "active"
	ClientInactive  ClientStatus = "inactive"
	ClientSuspended ClientStatus = "suspended"
)

// Valid reports whether the status belongs to the closed set.
func (s ClientStatus) Valid() bool {
	switch s {
	case ClientActive, ClientInactive, ClientSuspended:
		return true
	}
	return false
}

var ErrClientNotFound = errors.New("client not found")
var ErrInvalidClientStatus = errors.New("invalid client status")

// Client is a managed customer record. Clients authenticate nowhere in this
// service; they are pure data administered by privileged principals.
type Client struct {
	ID        string       `json:"id"`
	Username  string       `json:"username"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Status    ClientStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
