package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/noah-isme/campus-mis/pkg/export"
)

// GradesReport summarises every student's average grade.
type GradesReport struct {
	students studentSource
}

// NewGradesReport constructs a GradesReport over the given source.
func NewGradesReport(students studentSource) *GradesReport {
	return &GradesReport{students: students}
}

// Title implements Generator.
func (r *GradesReport) Title() string {
	return "Grades Report"
}

// Generate builds one line per student with their course code and
// average grade. An average of 0 means no grades were recorded and is
// rendered as "N/A".
func (r *GradesReport) Generate() string {
	var b strings.Builder
	b.WriteString("--- Grades Report ---\n")
	for _, student := range r.students.Students() {
		fmt.Fprintf(&b, "%s (ID: %d) - Course: %s | Average Grade: %s\n",
			student.Name, student.ID, courseLabel(student.CourseCode), averageLabel(student.Average()))
	}
	return b.String()
}

// Dataset implements Generator for file export.
func (r *GradesReport) Dataset() export.Dataset {
	headers := []string{"Student", "ID", "Course", "Average"}
	rows := make([]map[string]string, 0, len(r.students.Students()))
	for _, student := range r.students.Students() {
		rows = append(rows, map[string]string{
			"Student": student.Name,
			"ID":      strconv.Itoa(student.ID),
			"Course":  courseLabel(student.CourseCode),
			"Average": averageLabel(student.Average()),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func courseLabel(code string) string {
	if code == "" {
		return "No course"
	}
	return code
}

func averageLabel(avg float64) string {
	if avg == 0 {
		return "N/A"
	}
	return strconv.FormatFloat(avg, 'g', -1, 64)
}
