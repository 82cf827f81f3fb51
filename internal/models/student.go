package models

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// GradeMin and GradeMax bound the GCSE-style grade scale.
const (
	GradeMin = 1
	GradeMax = 9
)

const (
	attendanceFloor = 85.0
	attendanceSpan  = 15.0
)

// Student is a learner record. The course link is held as a lookup
// key (the course code) rather than an object reference; the registry
// keeps the matching course roster in sync with it.
type Student struct {
	Person
	CourseCode string
	Grades     []int
	Attendance float64
}

// NewStudent creates a student with a freshly drawn attendance
// percentage and no course assigned.
func NewStudent(id int, name, email string) *Student {
	return &Student{
		Person:     Person{ID: id, Name: name, Email: email},
		Attendance: generateAttendance(),
	}
}

// RestoreStudent rebuilds a student from persisted state, keeping the
// stored attendance instead of drawing a new one.
func RestoreStudent(id int, name, email string, attendance float64) *Student {
	return &Student{
		Person:     Person{ID: id, Name: name, Email: email},
		Attendance: attendance,
	}
}

// AddGrade records a grade. Values outside GradeMin..GradeMax are
// rejected and the grade list is left untouched.
func (s *Student) AddGrade(grade int) bool {
	if grade < GradeMin || grade > GradeMax {
		return false
	}
	s.Grades = append(s.Grades, grade)
	return true
}

// Average returns the arithmetic mean of all recorded grades, or 0
// when none exist. Reports render 0 as "no grades"; a true zero
// average is impossible on the 1..9 scale.
func (s *Student) Average() float64 {
	if len(s.Grades) == 0 {
		return 0
	}
	total := 0
	for _, g := range s.Grades {
		total += g
	}
	return float64(total) / float64(len(s.Grades))
}

// GradesCSV returns the grades comma-joined, empty when none exist.
func (s *Student) GradesCSV() string {
	if len(s.Grades) == 0 {
		return ""
	}
	parts := make([]string, len(s.Grades))
	for i, g := range s.Grades {
		parts[i] = strconv.Itoa(g)
	}
	return strings.Join(parts, ",")
}

// generateAttendance draws a synthetic attendance percentage in
// [85,100) biased toward the upper bound: squaring the uniform draw
// concentrates mass near 1 before scaling.
func generateAttendance() float64 {
	r := rand.Float64()
	biased := 1 - r*r
	return attendanceFloor + biased*attendanceSpan
}

// String includes the course code (or a placeholder) and the
// attendance rounded to one decimal.
func (s *Student) String() string {
	courseInfo := s.CourseCode
	if courseInfo == "" {
		courseInfo = "No course assigned"
	}
	return fmt.Sprintf("%s | Course: %s | Attendance: %.1f%%", s.Person.String(), courseInfo, s.Attendance)
}
