package models

// IntPtr returns a pointer to v. Handy for building entities with a known ID.
func IntPtr(v int) *int {
	return &v
}
