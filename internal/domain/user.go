package domain

import "time"

// Role represents what a user can do on the platform.
type Role string

const (
	RoleRenter Role = "renter"
	RoleHost   Role = "host"
	RoleBoth   Role = "both"
)

// KYCStatus represents the state of a user's identity verification.
type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusApproved KYCStatus = "approved"
	KYCStatusRejected KYCStatus = "rejected"
)

// User represents a renter or host in the system.
type User struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Role      Role
	KYCStatus KYCStatus
	CreatedAt time.Time
}

// KYCDocuments are the document references submitted for identity review.
type KYCDocuments struct {
	CNICFront string
	CNICBack  string
	Selfie    string
}
