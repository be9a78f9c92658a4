package models

// Seller represents a salesperson assigned to a department.
//
// DepartmentID is the reference that gets persisted. Department is only
// populated when the seller was read through the department join, and the
// seller never owns that department's lifecycle.
type Seller struct {
	ID           *int        `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	BirthDate    Date        `json:"birth_date"`
	BaseSalary   float64     `json:"base_salary"`
	DepartmentID int         `json:"department_id"`
	Department   *Department `json:"department,omitempty"`
}

// IsNew reports whether the seller still needs its first insert
func (s *Seller) IsNew() bool {
	return s == nil || s.ID == nil
}

// GetID returns the identifier or 0 when the seller is unsaved
func (s *Seller) GetID() int {
	if s.ID == nil {
		return 0
	}
	return *s.ID
}

// DepartmentRef returns the department id to persist. An explicit
// DepartmentID wins over the hydrated Department.
func (s *Seller) DepartmentRef() int {
	if s.DepartmentID != 0 {
		return s.DepartmentID
	}
	if s.Department != nil && s.Department.ID != nil {
		return *s.Department.ID
	}
	return 0
}

// AssignDepartment sets both the reference and the hydrated value
func (s *Seller) AssignDepartment(d *Department) {
	s.Department = d
	s.DepartmentID = 0
	if d != nil && d.ID != nil {
		s.DepartmentID = *d.ID
	}
}
