package entity

// DoctorFilter is a domain-level filter for the doctor directory.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Name           string // Filter by first or last name (ILIKE)
	Specialization string // Filter by specialization name (ILIKE)
}
