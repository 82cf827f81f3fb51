package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-mis/internal/models"
)

func TestAddStudentRejectsDuplicatesAndNil(t *testing.T) {
	reg := New(zap.NewNop())

	assert.True(t, reg.AddStudent(models.NewStudent(1, "Alice", "alice@example.com")))
	assert.False(t, reg.AddStudent(models.NewStudent(1, "Imposter", "other@example.com")))
	assert.False(t, reg.AddStudent(nil))

	assert.Equal(t, 1, reg.StudentCount())
	assert.Equal(t, "Alice", reg.FindStudentByID(1).Name)
}

func TestAddStudentEnrolsIntoTrackedCourse(t *testing.T) {
	reg := New(nil)
	require.True(t, reg.AddCourse(models.NewCourse("CS101", "Computer Science")))

	student := models.NewStudent(1, "Alice", "alice@example.com")
	student.CourseCode = "cs101"
	require.True(t, reg.AddStudent(student))

	// The code is normalised to the tracked course's casing and the
	// roster picks up the id.
	assert.Equal(t, "CS101", student.CourseCode)
	assert.True(t, reg.FindCourseByCode("CS101").HasStudent(1))
}

func TestAddStudentClearsUnknownCourseCode(t *testing.T) {
	reg := New(nil)

	student := models.NewStudent(1, "Alice", "alice@example.com")
	student.CourseCode = "GHOST1"
	require.True(t, reg.AddStudent(student))

	assert.Empty(t, student.CourseCode)
	assert.Equal(t, 0, reg.CourseCount())
}

func TestAssignCourseKeepsBothSidesInSync(t *testing.T) {
	reg := New(nil)
	require.True(t, reg.AddCourse(models.NewCourse("CS101", "Computer Science")))
	require.True(t, reg.AddCourse(models.NewCourse("MA201", "Mathematics")))
	require.True(t, reg.AddStudent(models.NewStudent(1, "Alice", "alice@example.com")))

	require.True(t, reg.AssignCourse(1, "CS101"))
	assert.Equal(t, "CS101", reg.FindStudentByID(1).CourseCode)
	assert.True(t, reg.FindCourseByCode("CS101").HasStudent(1))

	// Reassigning moves the id off the old roster atomically.
	require.True(t, reg.AssignCourse(1, "MA201"))
	assert.Equal(t, "MA201", reg.FindStudentByID(1).CourseCode)
	assert.False(t, reg.FindCourseByCode("CS101").HasStudent(1))
	assert.True(t, reg.FindCourseByCode("MA201").HasStudent(1))

	// Empty code un-assigns.
	require.True(t, reg.AssignCourse(1, ""))
	assert.Empty(t, reg.FindStudentByID(1).CourseCode)
	assert.False(t, reg.FindCourseByCode("MA201").HasStudent(1))
}

func TestAssignCourseFailsWithoutMutation(t *testing.T) {
	reg := New(nil)
	require.True(t, reg.AddCourse(models.NewCourse("CS101", "Computer Science")))
	require.True(t, reg.AddStudent(models.NewStudent(1, "Alice", "alice@example.com")))
	require.True(t, reg.AssignCourse(1, "CS101"))

	assert.False(t, reg.AssignCourse(99, "CS101"))
	assert.False(t, reg.AssignCourse(1, "GHOST1"))

	// The failed reassignment left the existing enrollment alone.
	assert.Equal(t, "CS101", reg.FindStudentByID(1).CourseCode)
	assert.True(t, reg.FindCourseByCode("CS101").HasStudent(1))
}

func TestRemoveStudentDeEnrols(t *testing.T) {
	reg := New(nil)
	require.True(t, reg.AddCourse(models.NewCourse("CS101", "Computer Science")))
	require.True(t, reg.AddStudent(models.NewStudent(1, "Alice", "alice@example.com")))
	require.True(t, reg.AssignCourse(1, "CS101"))

	assert.True(t, reg.RemoveStudentByID(1))
	assert.Nil(t, reg.FindStudentByID(1))
	assert.False(t, reg.FindCourseByCode("CS101").HasStudent(1))

	assert.False(t, reg.RemoveStudentByID(1))
}

func TestRemoveCourseCascadesToStudents(t *testing.T) {
	reg := New(nil)
	require.True(t, reg.AddCourse(models.NewCourse("CS101", "Computer Science")))
	for id := 1; id <= 3; id++ {
		require.True(t, reg.AddStudent(models.NewStudent(id, "S", "s@example.com")))
		require.True(t, reg.AssignCourse(id, "CS101"))
	}

	assert.True(t, reg.RemoveCourseByCode("cs101"))
	assert.Nil(t, reg.FindCourseByCode("CS101"))
	for id := 1; id <= 3; id++ {
		assert.Empty(t, reg.FindStudentByID(id).CourseCode)
	}

	assert.False(t, reg.RemoveCourseByCode("CS101"))
}

func TestCourseCodeUniquenessIsCaseInsensitive(t *testing.T) {
	reg := New(nil)

	assert.True(t, reg.AddCourse(models.NewCourse("CS101", "Computer Science")))
	assert.False(t, reg.AddCourse(models.NewCourse("cs101", "Copycat")))
	assert.False(t, reg.AddCourse(nil))

	assert.Equal(t, 1, reg.CourseCount())
	assert.Equal(t, "Computer Science", reg.FindCourseByCode("Cs101").Title)
}

func TestStaffUniqueness(t *testing.T) {
	reg := New(nil)

	assert.True(t, reg.AddStaff(models.NewStaff(101, "Bob", "bob@example.com", "Lecturer", "IT")))
	assert.False(t, reg.AddStaff(models.NewStaff(101, "Bert", "bert@example.com", "Admin", "HR")))
	assert.False(t, reg.AddStaff(nil))

	assert.Equal(t, 1, reg.StaffCount())
	assert.True(t, reg.RemoveStaffByID(101))
	assert.False(t, reg.RemoveStaffByID(101))
	assert.Nil(t, reg.FindStaffByID(101))
}

func TestDanglingRosterIDsAreTolerated(t *testing.T) {
	reg := New(nil)
	course := models.NewCourse("CS101", "Computer Science")
	require.True(t, reg.AddCourse(course))

	// An id with no matching student can sit on the roster; lookups
	// simply resolve to nil.
	course.Enrol(42)
	assert.True(t, course.HasStudent(42))
	assert.Nil(t, reg.FindStudentByID(42))
}
