package dto

import "github.com/educonnect/educonnect/internal/app/models"

// LoginRequest represents login credentials. Role is optional; when given it
// must match the role stored on the account.
type LoginRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required"`
	Role     models.RoleType `json:"role,omitempty" binding:"omitempty,oneof=student alumni staff admin"`
}

// RegisterRequest represents an account registration request. Name, email,
// password and role are always required; the remaining fields are the
// per-role allow-list and are validated by the service against the role.
type RegisterRequest struct {
	Name     string          `json:"name" binding:"required,min=2,max=100"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     models.RoleType `json:"role" binding:"required,oneof=student alumni staff"`

	// Student / alumni fields
	RollNo   string `json:"rollNo,omitempty"`
	Year     string `json:"year,omitempty"`
	Division string `json:"division,omitempty"`
	PRN      string `json:"prn,omitempty"`
	Branch   string `json:"branch,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	GradYear string `json:"gradYear,omitempty"`
	Company  string `json:"company,omitempty"`
	Position string `json:"position,omitempty"`
	Skills   string `json:"skills,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`

	// Staff fields
	Department  string `json:"department,omitempty"`
	Designation string `json:"designation,omitempty"`
	StaffID     string `json:"staffId,omitempty"`
}

// AuthResponse represents a successful registration or login
type AuthResponse struct {
	Account   *models.Account `json:"account"`
	Token     string          `json:"token"`
	ExpiresIn int64           `json:"expiresIn"`
}
