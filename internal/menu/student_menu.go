package menu

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/campus-mis/internal/models"
	"github.com/noah-isme/campus-mis/internal/registry"
	"github.com/noah-isme/campus-mis/pkg/prompt"
)

type studentMenu struct {
	reg      *registry.Registry
	in       *prompt.Reader
	out      io.Writer
	validate *validator.Validate
}

// 0x7C is "|", excluded from text fields because it is the persisted
// field separator and would shift fields on reload.
type newStudentInput struct {
	ID    int    `validate:"required,gt=0"`
	Name  string `validate:"required,excludesall=0x7C"`
	Email string `validate:"required,excludesall=0x7C"`
}

func (m *studentMenu) show() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, " ~~~~~ Student Menu ~~~~~")
		fmt.Fprintln(m.out, "1. Add student")
		fmt.Fprintln(m.out, "2. Remove student")
		fmt.Fprintln(m.out, "3. List students")
		fmt.Fprintln(m.out, "4. Assign course")
		fmt.Fprintln(m.out, "5. Add grade")
		fmt.Fprintln(m.out, "6. Back")

		choice, ok := m.in.ReadInt("Choose an option (1-6):")
		if !ok {
			return
		}
		switch choice {
		case 1:
			m.add()
		case 2:
			m.remove()
		case 3:
			m.list()
		case 4:
			m.assignCourse()
		case 5:
			m.addGrade()
		case 6:
			return
		default:
			fmt.Fprintln(m.out, "Please choose an option between 1 and 6.")
		}
	}
}

func (m *studentMenu) add() {
	id, ok := m.in.ReadInt("Student ID:")
	if !ok {
		return
	}
	name, ok := m.in.ReadString("Name:")
	if !ok {
		return
	}
	email, ok := m.in.ReadString("Email:")
	if !ok {
		return
	}
	if err := m.validate.Struct(newStudentInput{ID: id, Name: name, Email: email}); err != nil {
		fmt.Fprintln(m.out, "Invalid student details:", err)
		return
	}

	student := models.NewStudent(id, name, email)
	if !m.reg.AddStudent(student) {
		fmt.Fprintf(m.out, "A student with ID %d already exists.\n", id)
		return
	}
	fmt.Fprintln(m.out, "Student added:", student)

	assign, ok := m.in.Confirm("Assign a course now? (y/n):")
	if !ok || !assign {
		return
	}
	code, ok := m.in.ReadString("Course code:")
	if !ok {
		return
	}
	if !m.reg.AssignCourse(id, code) {
		fmt.Fprintf(m.out, "No course with code %q. Student left unassigned.\n", code)
		return
	}
	fmt.Fprintf(m.out, "Enrolled student %d in %s.\n", id, code)
}

func (m *studentMenu) remove() {
	id, ok := m.in.ReadInt("Student ID to remove:")
	if !ok {
		return
	}
	if !m.reg.RemoveStudentByID(id) {
		fmt.Fprintf(m.out, "No student with ID %d.\n", id)
		return
	}
	fmt.Fprintf(m.out, "Student %d removed.\n", id)
}

func (m *studentMenu) list() {
	students := m.reg.Students()
	if len(students) == 0 {
		fmt.Fprintln(m.out, "No students found.")
		return
	}
	for _, student := range students {
		fmt.Fprintln(m.out, student)
	}
}

func (m *studentMenu) assignCourse() {
	id, ok := m.in.ReadInt("Student ID:")
	if !ok {
		return
	}
	if m.reg.FindStudentByID(id) == nil {
		fmt.Fprintf(m.out, "No student with ID %d.\n", id)
		return
	}
	code, ok := m.in.ReadString("Course code (or \"none\" to un-assign):")
	if !ok {
		return
	}
	if code == "none" {
		code = ""
	}
	if !m.reg.AssignCourse(id, code) {
		fmt.Fprintf(m.out, "No course with code %q.\n", code)
		return
	}
	if code == "" {
		fmt.Fprintf(m.out, "Student %d un-assigned.\n", id)
		return
	}
	fmt.Fprintf(m.out, "Enrolled student %d in %s.\n", id, code)
}

func (m *studentMenu) addGrade() {
	id, ok := m.in.ReadInt("Student ID:")
	if !ok {
		return
	}
	student := m.reg.FindStudentByID(id)
	if student == nil {
		fmt.Fprintf(m.out, "No student with ID %d.\n", id)
		return
	}
	grade, ok := m.in.ReadInt(fmt.Sprintf("Grade (%d-%d):", models.GradeMin, models.GradeMax))
	if !ok {
		return
	}
	if !student.AddGrade(grade) {
		fmt.Fprintf(m.out, "Invalid grade %d. Grade must be between %d and %d.\n", grade, models.GradeMin, models.GradeMax)
		return
	}
	fmt.Fprintf(m.out, "Grade recorded. Average is now %.2f.\n", student.Average())
}
