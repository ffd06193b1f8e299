package models

import (
	"time"
)

// RoleType defines the account role
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAlumni  RoleType = "alumni"
	RoleStaff   RoleType = "staff"
	RoleAdmin   RoleType = "admin"
)

// IsValid reports whether the role is one of the known variants
func (r RoleType) IsValid() bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// AccountStatus defines the verification state of an account
type AccountStatus string

const (
	StatusPending  AccountStatus = "pending"
	StatusApproved AccountStatus = "approved"
	StatusRejected AccountStatus = "rejected"
)

// Account defines the account model based on the 'accounts' table.
// One row per identity; role-specific columns are nullable and only
// populated for the matching variant.
type Account struct {
	ID         int64         `json:"id" db:"id" example:"1"`                        // Unique identifier for the account
	Name       string        `json:"name" db:"name" example:"Jane Doe"`             // Account holder's full name
	Email      string        `json:"email" db:"email" example:"jane@college.edu"`   // Email address, unique across all roles
	Password   string        `json:"-" db:"password"`                               // Hashed password (excluded from JSON)
	Role       RoleType      `json:"role" db:"role" example:"student"`              // Role variant, immutable after creation
	Status     AccountStatus `json:"status" db:"status" example:"pending"`          // Approval state
	IsVerified bool          `json:"isVerified" db:"is_verified" example:"false"`   // Whether the account has been verified
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`                     // Timestamp when the account was created
	UpdatedAt  time.Time     `json:"updatedAt" db:"updated_at"`                     // Timestamp of the last update

	// Student / alumni details
	RollNo   *string `json:"rollNo,omitempty" db:"roll_no"`
	Year     *string `json:"year,omitempty" db:"year" example:"Third Year"`
	Division *string `json:"division,omitempty" db:"division"`
	PRN      *string `json:"prn,omitempty" db:"prn"` // Permanent registration number
	Branch   *string `json:"branch,omitempty" db:"branch"`
	Phone    *string `json:"phone,omitempty" db:"phone"`
	Location *string `json:"location,omitempty" db:"location"`
	GradYear *string `json:"gradYear,omitempty" db:"grad_year"`

	// Career / alumni details
	Company  *string `json:"company,omitempty" db:"company"`
	Position *string `json:"position,omitempty" db:"position"`
	Skills   *string `json:"skills,omitempty" db:"skills"`
	Linkedin *string `json:"linkedin,omitempty" db:"linkedin"`

	// Staff details (department is shared with students)
	Department    *string `json:"department,omitempty" db:"department"`
	Designation   *string `json:"designation,omitempty" db:"designation"`
	StaffID       *string `json:"staffId,omitempty" db:"staff_id"`
	AssignedYear  *string `json:"assignedYear,omitempty" db:"assigned_year"`   // Scope set by admin on approval
	AssignedClass *string `json:"assignedClass,omitempty" db:"assigned_class"` // Scope set by admin on approval

	// Admin details
	Institution *string `json:"institution,omitempty" db:"institution"`
}

// IsApprovedStaff reports whether the account may perform approval actions
func (a *Account) IsApprovedStaff() bool {
	return a.Role == RoleStaff && a.Status == StatusApproved
}
