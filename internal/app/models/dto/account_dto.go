package dto

// UpdateProfileRequest represents a self-service profile update. Every field
// is optional; nil means "leave unchanged". Password and role are deliberately
// absent, and which fields actually apply depends on the caller's role.
type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`

	// Student / alumni fields
	RollNo   *string `json:"rollNo,omitempty"`
	Year     *string `json:"year,omitempty"`
	Division *string `json:"division,omitempty"`
	PRN      *string `json:"prn,omitempty"`
	Branch   *string `json:"branch,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	GradYear *string `json:"gradYear,omitempty"`
	Company  *string `json:"company,omitempty"`
	Position *string `json:"position,omitempty"`
	Skills   *string `json:"skills,omitempty"`
	Linkedin *string `json:"linkedin,omitempty"`

	// Staff fields
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`

	// Admin fields
	Institution *string `json:"institution,omitempty"`
}

// ApproveStaffRequest carries the scope assigned to a staff member on approval
type ApproveStaffRequest struct {
	AssignedYear  string  `json:"assignedYear" binding:"required"`
	AssignedClass *string `json:"assignedClass,omitempty"`
}
