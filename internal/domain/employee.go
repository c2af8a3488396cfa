package domain

// EmployeeUser is a managed employee record, keyed by ID. Role here is a
// free-text job title, unrelated to the Role enum carried in tokens.
type EmployeeUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Team   string `json:"team"`
	Status string `json:"status"`
}

// Defaults for employee records created without these fields.
const (
	EmployeeDefaultRole   = "Developer"
	EmployeeDefaultTeam   = "Development"
	EmployeeDefaultStatus = "Active"
)
