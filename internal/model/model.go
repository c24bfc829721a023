package model

import "github.com/google/uuid"

// newID generates a primary key for records created without one. Seeded fixture
// rows (e.g. the dashboard users) keep their well-known ids.
func newID() string {
	return uuid.NewString()
}
