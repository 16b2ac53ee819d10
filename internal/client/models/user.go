// Package models contains the client-side data types exchanged with the
// i-Stokvel backend and cached locally.
package models

// Role enumerates the backend user roles.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User is the cached representation of the authenticated principal, exactly
// as the session manager persists it. A record with IsVerified == false is
// treated as "no session".
type User struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Role             Role   `json:"role"`
	IsVerified       bool   `json:"is_verified"`
	ProfilePicture   string `json:"profilePicture,omitempty"`
	TwoFactorEnabled bool   `json:"two_factor_enabled,omitempty"`
}

// Profile holds the editable account details served by /api/user/profile.
type Profile struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	EmploymentStatus string `json:"employment_status"`
	AccountNumber    string `json:"account_number"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
}

// AdminUser is the row shape of the admin user-management listing.
type AdminUser struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}
