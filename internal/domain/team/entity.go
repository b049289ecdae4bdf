package team

import "time"

// Membership is a manager-to-employee scoping edge. ManagerID references a
// login account, EmployeeID references an HR employee record. An employee may
// carry edges to multiple managers.
type Membership struct {
	ManagerID  string
	EmployeeID string
	CreatedAt  time.Time
}

// Member is an employee seen from a manager's team listing.
type Member struct {
	EmployeeID string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}
