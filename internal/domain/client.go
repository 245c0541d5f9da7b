package domain

import "time"

type Client struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedOn time.Time `json:"created_on"`
}

type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "PENDING"
	DocumentStatusVerified DocumentStatus = "VERIFIED"
	DocumentStatusRejected DocumentStatus = "REJECTED"
)

// DrivingDocument is the verification record checked before a client may
// reserve a vehicle. Verification itself happens outside this system.
type DrivingDocument struct {
	ID         int32          `json:"id"`
	ClientID   int32          `json:"client_id"`
	Number     string         `json:"number"`
	Status     DocumentStatus `json:"status"`
	VerifiedOn *time.Time     `json:"verified_on,omitempty"`
}
