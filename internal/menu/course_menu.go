package menu

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/campus-mis/internal/models"
	"github.com/noah-isme/campus-mis/internal/registry"
	"github.com/noah-isme/campus-mis/pkg/prompt"
)

type courseMenu struct {
	reg      *registry.Registry
	in       *prompt.Reader
	out      io.Writer
	validate *validator.Validate
}

type newCourseInput struct {
	Code  string `validate:"required,excludesall=0x7C"`
	Title string `validate:"required,excludesall=0x7C"`
}

func (m *courseMenu) show() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, " ~~~~~ Course Menu ~~~~~")
		fmt.Fprintln(m.out, "1. Add course")
		fmt.Fprintln(m.out, "2. Remove course")
		fmt.Fprintln(m.out, "3. List courses")
		fmt.Fprintln(m.out, "4. List enrolled students")
		fmt.Fprintln(m.out, "5. Back")

		choice, ok := m.in.ReadInt("Choose an option (1-5):")
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
			m.roster()
		case 5:
			return
		default:
			fmt.Fprintln(m.out, "Please choose an option between 1 and 5.")
		}
	}
}

func (m *courseMenu) add() {
	code, ok := m.in.ReadString("Course code:")
	if !ok {
		return
	}
	title, ok := m.in.ReadString("Course title:")
	if !ok {
		return
	}
	if err := m.validate.Struct(newCourseInput{Code: code, Title: title}); err != nil {
		fmt.Fprintln(m.out, "Invalid course details:", err)
		return
	}
	course := models.NewCourse(code, title)
	if !m.reg.AddCourse(course) {
		existing := m.reg.FindCourseByCode(code)
		fmt.Fprintf(m.out, "Course with code %s already exists: %s\n", code, existing.Title)
		return
	}
	fmt.Fprintln(m.out, "Course added:", course)
}

func (m *courseMenu) remove() {
	code, ok := m.in.ReadString("Course code to remove:")
	if !ok {
		return
	}
	if !m.reg.RemoveCourseByCode(code) {
		fmt.Fprintf(m.out, "No course with code %q.\n", code)
		return
	}
	fmt.Fprintf(m.out, "Course %s removed; enrolled students were un-assigned.\n", code)
}

func (m *courseMenu) list() {
	courses := m.reg.Courses()
	if len(courses) == 0 {
		fmt.Fprintln(m.out, "No courses found.")
		return
	}
	for _, course := range courses {
		fmt.Fprintln(m.out, course)
	}
}

// roster resolves the enrolled ids of one course; ids with no
// matching student are skipped.
func (m *courseMenu) roster() {
	code, ok := m.in.ReadString("Course code:")
	if !ok {
		return
	}
	course := m.reg.FindCourseByCode(code)
	if course == nil {
		fmt.Fprintf(m.out, "No course with code %q.\n", code)
		return
	}
	fmt.Fprintf(m.out, "Students enrolled in %s:\n", course.Title)
	for _, id := range course.EnrolledIDs {
		if student := m.reg.FindStudentByID(id); student != nil {
			fmt.Fprintln(m.out, student)
		}
	}
}
