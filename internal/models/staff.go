package models

import (
	"fmt"
	"strings"
	"time"
)

// TaskDeadlineFormat renders task deadlines as day/month/year.
const TaskDeadlineFormat = "02/01/2006"

// maxTaskLeadDays caps how far ahead a task may be scheduled.
const maxTaskLeadDays = 90

// Staff is an employee record with an ordered task list. Each task is
// stored as a display string with the deadline baked in, which is
// also its persisted form; the structured deadline is not recoverable
// after a save/load cycle.
type Staff struct {
	Person
	Role       string
	Department string
	Tasks      []string
}

// NewStaff creates a staff member with an empty task list.
func NewStaff(id int, name, email, role, department string) *Staff {
	return &Staff{
		Person:     Person{ID: id, Name: name, Email: email},
		Role:       role,
		Department: department,
	}
}

// AssignTask appends a task entry when the deadline lands strictly
// after today and no more than 90 days out. Descriptions containing
// the pipe or comma field separators are rejected so the persisted
// form cannot be corrupted.
func (s *Staff) AssignTask(description string, deadline time.Time) bool {
	if description == "" || strings.ContainsAny(description, "|,") {
		return false
	}
	days := daysUntil(time.Now(), deadline)
	if days <= 0 || days > maxTaskLeadDays {
		return false
	}
	s.Tasks = append(s.Tasks, fmt.Sprintf("%s (due %s)", description, deadline.Format(TaskDeadlineFormat)))
	return true
}

// RemoveTask removes the first task entry exactly matching the given
// stored string and reports whether a removal occurred.
func (s *Staff) RemoveTask(entry string) bool {
	for i, task := range s.Tasks {
		if task == entry {
			s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// TasksCSV returns the task entries comma-joined, empty when none exist.
func (s *Staff) TasksCSV() string {
	return strings.Join(s.Tasks, ",")
}

// daysUntil counts whole calendar days from now's date to the
// deadline's date, ignoring the time of day on both sides. The dates
// are rebuilt in UTC so a DST transition between them cannot shorten
// the interval and skew the count.
func daysUntil(now, deadline time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, time.UTC)
	return int(due.Sub(today) / (24 * time.Hour))
}

// String includes role, department and the task list ("None" when empty).
func (s *Staff) String() string {
	tasks := "None"
	if len(s.Tasks) > 0 {
		tasks = strings.Join(s.Tasks, "; ")
	}
	return fmt.Sprintf("%s - %s in %s | Tasks: %s", s.Person.String(), s.Role, s.Department, tasks)
}
