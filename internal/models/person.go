package models

import "fmt"

// Person holds the identity and contact fields shared by students and
// staff. The numeric ID is fixed at construction and identifies the
// record within its own kind; name and email stay mutable.
type Person struct {
	ID    int
	Name  string
	Email string
}

// String returns the "id: name (email)" summary used by listings.
func (p Person) String() string {
	return fmt.Sprintf("%d: %s (%s)", p.ID, p.Name, p.Email)
}
