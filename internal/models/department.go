package models

// Department represents an organizational unit that sellers belong to.
// A nil ID marks a department that has not been persisted yet.
type Department struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

// NewDepartment returns an unsaved department with the given name
func NewDepartment(name string) *Department {
	return &Department{Name: name}
}

// IsNew reports whether the department still needs its first insert
func (d *Department) IsNew() bool {
	return d == nil || d.ID == nil
}

// GetID returns the identifier or 0 when the department is unsaved.
// Implements the quiet-mode ID getter used by the CLI formatter.
func (d *Department) GetID() int {
	if d.ID == nil {
		return 0
	}
	return *d.ID
}
