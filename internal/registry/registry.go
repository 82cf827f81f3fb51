// Package registry owns the in-memory student, staff and course
// collections and keeps the student/course enrollment links
// consistent across every mutation.
package registry

import (
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-mis/internal/models"
)

// Registry is the sole owner of all entity instances. Student ids,
// staff ids and course codes (case-insensitive) are each unique within
// their collection. The Registry is not safe for concurrent use.
type Registry struct {
	students []*models.Student
	staff    []*models.Staff
	courses  []*models.Course
	logger   *zap.Logger
}

// New constructs an empty Registry.
func New(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{logger: logger}
}

// AddStudent inserts a student when the id is not yet taken. A student
// carrying a course code is enrolled into that course; codes the
// registry does not track are cleared rather than auto-creating a
// course without a title.
func (r *Registry) AddStudent(student *models.Student) bool {
	if student == nil || r.FindStudentByID(student.ID) != nil {
		return false
	}
	r.students = append(r.students, student)
	if student.CourseCode == "" {
		return true
	}
	course := r.FindCourseByCode(student.CourseCode)
	if course == nil {
		r.logger.Warn("clearing unknown course reference",
			zap.Int("student_id", student.ID),
			zap.String("course_code", student.CourseCode))
		student.CourseCode = ""
		return true
	}
	student.CourseCode = course.Code
	course.Enrol(student.ID)
	return true
}

// RemoveStudentByID de-enrols the student from its course, then drops
// the record. Returns false when the id is unknown.
func (r *Registry) RemoveStudentByID(id int) bool {
	for i, student := range r.students {
		if student.ID == id {
			if student.CourseCode != "" {
				if course := r.FindCourseByCode(student.CourseCode); course != nil {
					course.Remove(id)
				}
			}
			r.students = append(r.students[:i], r.students[i+1:]...)
			return true
		}
	}
	return false
}

// FindStudentByID returns the matching student or nil.
func (r *Registry) FindStudentByID(id int) *models.Student {
	for _, student := range r.students {
		if student.ID == id {
			return student
		}
	}
	return nil
}

// Students returns the student collection in insertion order.
func (r *Registry) Students() []*models.Student {
	return r.students
}

// StudentCount reports how many students are tracked.
func (r *Registry) StudentCount() int {
	return len(r.students)
}

// AddStaff inserts a staff member when the id is not yet taken.
func (r *Registry) AddStaff(staff *models.Staff) bool {
	if staff == nil || r.FindStaffByID(staff.ID) != nil {
		return false
	}
	r.staff = append(r.staff, staff)
	return true
}

// RemoveStaffByID drops the staff record; false when the id is unknown.
func (r *Registry) RemoveStaffByID(id int) bool {
	for i, staff := range r.staff {
		if staff.ID == id {
			r.staff = append(r.staff[:i], r.staff[i+1:]...)
			return true
		}
	}
	return false
}

// FindStaffByID returns the matching staff member or nil.
func (r *Registry) FindStaffByID(id int) *models.Staff {
	for _, staff := range r.staff {
		if staff.ID == id {
			return staff
		}
	}
	return nil
}

// StaffMembers returns the staff collection in insertion order.
func (r *Registry) StaffMembers() []*models.Staff {
	return r.staff
}

// StaffCount reports how many staff members are tracked.
func (r *Registry) StaffCount() int {
	return len(r.staff)
}

// AddCourse inserts a course when its code is not yet taken. Code
// comparison is case-insensitive.
func (r *Registry) AddCourse(course *models.Course) bool {
	if course == nil || r.FindCourseByCode(course.Code) != nil {
		return false
	}
	r.courses = append(r.courses, course)
	return true
}

// RemoveCourseByCode clears the course reference of every student
// enrolled in it, then drops the course. The cascade runs before the
// removal so no student ever points at an untracked course.
func (r *Registry) RemoveCourseByCode(code string) bool {
	for i, course := range r.courses {
		if strings.EqualFold(course.Code, code) {
			for _, student := range r.students {
				if strings.EqualFold(student.CourseCode, course.Code) {
					r.reassignEnrollment(student, nil)
				}
			}
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return true
		}
	}
	return false
}

// FindCourseByCode returns the matching course or nil. The lookup is
// case-insensitive.
func (r *Registry) FindCourseByCode(code string) *models.Course {
	for _, course := range r.courses {
		if strings.EqualFold(course.Code, code) {
			return course
		}
	}
	return nil
}

// Courses returns the course collection in insertion order.
func (r *Registry) Courses() []*models.Course {
	return r.courses
}

// CourseCount reports how many courses are tracked.
func (r *Registry) CourseCount() int {
	return len(r.courses)
}

// AssignCourse moves a student onto the course with the given code,
// de-enrolling them from their current course first. An empty code
// un-assigns. Returns false when the student, or a non-empty code,
// cannot be resolved; nothing is mutated in that case.
func (r *Registry) AssignCourse(studentID int, code string) bool {
	student := r.FindStudentByID(studentID)
	if student == nil {
		return false
	}
	var target *models.Course
	if code != "" {
		target = r.FindCourseByCode(code)
		if target == nil {
			return false
		}
	}
	r.reassignEnrollment(student, target)
	return true
}

// reassignEnrollment is the single place where both sides of the
// student/course link change, so no call site can leave them out of
// sync. A nil target clears the assignment.
func (r *Registry) reassignEnrollment(student *models.Student, target *models.Course) {
	if student.CourseCode != "" {
		if current := r.FindCourseByCode(student.CourseCode); current != nil {
			current.Remove(student.ID)
		}
	}
	if target == nil {
		student.CourseCode = ""
		return
	}
	student.CourseCode = target.Code
	target.Enrol(student.ID)
}
