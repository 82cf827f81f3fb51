package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Course groups students under a code that acts as the join key for
// enrollment. Codes are compared case-insensitively. The roster keeps
// insertion order and never holds duplicates; an id on the roster may
// refer to a student no longer in the registry, and readers are
// expected to skip ids they cannot resolve.
type Course struct {
	Code        string
	Title       string
	EnrolledIDs []int
}

// NewCourse creates a course with an empty roster.
func NewCourse(code, title string) *Course {
	return &Course{Code: code, Title: title}
}

// Enrol adds a student id to the roster unless it is already present.
func (c *Course) Enrol(studentID int) {
	for _, id := range c.EnrolledIDs {
		if id == studentID {
			return
		}
	}
	c.EnrolledIDs = append(c.EnrolledIDs, studentID)
}

// Remove takes a student id off the roster; absent ids are a no-op.
func (c *Course) Remove(studentID int) {
	for i, id := range c.EnrolledIDs {
		if id == studentID {
			c.EnrolledIDs = append(c.EnrolledIDs[:i], c.EnrolledIDs[i+1:]...)
			return
		}
	}
}

// HasStudent reports whether the id is on the roster.
func (c *Course) HasStudent(studentID int) bool {
	for _, id := range c.EnrolledIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// EnrolledIDsCSV returns the roster comma-joined, empty when nobody
// is enrolled.
func (c *Course) EnrolledIDsCSV() string {
	if len(c.EnrolledIDs) == 0 {
		return ""
	}
	parts := make([]string, len(c.EnrolledIDs))
	for i, id := range c.EnrolledIDs {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// String summarises the course with its enrolment count.
func (c *Course) String() string {
	return fmt.Sprintf("%s: %s (%d enrolled)", c.Code, c.Title, len(c.EnrolledIDs))
}
