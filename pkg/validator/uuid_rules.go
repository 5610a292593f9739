package validator

import (
	"github.com/google/uuid"
)

// UUID requires the canonical 36-character UUID form.
func UUID() Rule[string] {
	return WhenPresent(isUUID, "validation.uuid", "Must be a valid UUID", nil)
}

func isUUID(value string) bool {
	// Fast rejection: check length and hyphen positions before parsing
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

// NonNilUUID rejects the all-zero UUID.
func NonNilUUID() Rule[uuid.UUID] {
	return WhenPresent(func(id uuid.UUID) bool {
		return id != uuid.Nil
	}, "validation.uuid_not_nil", "UUID cannot be nil", nil)
}
