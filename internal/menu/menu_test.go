package menu

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-mis/internal/codec"
	"github.com/noah-isme/campus-mis/internal/registry"
	"github.com/noah-isme/campus-mis/internal/report"
	"github.com/noah-isme/campus-mis/pkg/config"
	"github.com/noah-isme/campus-mis/pkg/prompt"
	"github.com/noah-isme/campus-mis/pkg/storage"
)

func newTestMenu(t *testing.T, script string) (*MainMenu, *registry.Registry, *bytes.Buffer, string) {
	t.Helper()

	dir := t.TempDir()
	dataFile := filepath.Join(dir, "mis_data.txt")
	cfg := &config.Config{
		Env:     config.EnvDevelopment,
		Data:    config.DataConfig{FilePath: dataFile},
		Exports: config.ExportsConfig{Dir: filepath.Join(dir, "exports")},
	}

	store, err := storage.NewLocalStorage(cfg.Exports.Dir)
	require.NoError(t, err)

	reg := registry.New(zap.NewNop())
	out := &bytes.Buffer{}
	in := prompt.NewReader(strings.NewReader(script), out)
	m := NewMainMenu(reg, codec.New(zap.NewNop()), report.NewExportService(store, zap.NewNop()), cfg, in, out, zap.NewNop())
	return m, reg, out, dataFile
}

func runSession(m *MainMenu) {
	for m.Show() {
	}
}

func TestSessionAddCourseStudentAndSave(t *testing.T) {
	script := strings.Join([]string{
		"3",                // main: courses
		"1",                // add course
		"CS101",            // code
		"Computer Science", // title
		"5",                // back
		"1",                // main: students
		"1",                // add student
		"1",                // id
		"Alice",            // name
		"alice@example.com",
		"y",     // assign course now
		"CS101", // course code
		"6",     // back
		"5",     // main: save/load
		"1",     // save
		"3",     // back
		"6",     // main: exit
		"y",
	}, "\n") + "\n"

	m, reg, out, dataFile := newTestMenu(t, script)
	runSession(m)

	assert.Contains(t, out.String(), "Course added: CS101: Computer Science (0 enrolled)")
	assert.Contains(t, out.String(), "Enrolled student 1 in CS101.")
	assert.Contains(t, out.String(), "Data saved successfully")

	require.NotNil(t, reg.FindStudentByID(1))
	assert.Equal(t, "CS101", reg.FindStudentByID(1).CourseCode)

	// The session's save round-trips into a fresh registry.
	fresh := registry.New(nil)
	require.NoError(t, codec.New(nil).Load(fresh, dataFile))
	assert.True(t, fresh.FindCourseByCode("CS101").HasStudent(1))
}

func TestSessionEscapeWordReturnsToMenu(t *testing.T) {
	script := strings.Join([]string{
		"1",    // main: students
		"1",    // add student
		"menu", // abort mid-operation
		"6",    // back
		"6",    // main: exit
		"y",
	}, "\n") + "\n"

	m, reg, _, _ := newTestMenu(t, script)
	runSession(m)

	assert.Equal(t, 0, reg.StudentCount())
}

func TestSessionListsHandleEmptyCollections(t *testing.T) {
	script := strings.Join([]string{
		"1", "3", "6", // students: list, back
		"2", "3", "6", // staff: list, back
		"3", "3", "5", // courses: list, back
		"6", "y",
	}, "\n") + "\n"

	m, _, out, _ := newTestMenu(t, script)
	runSession(m)

	assert.Contains(t, out.String(), "No students found.")
	assert.Contains(t, out.String(), "No staff members found.")
	assert.Contains(t, out.String(), "No courses found.")
}

func TestSessionRejectsPipeInTextFields(t *testing.T) {
	script := strings.Join([]string{
		"1", // main: students
		"1", "1", "Al|ce", "alice@example.com",
		"6", // back
		"2", // main: staff
		"1", "101", "Bob", "bob@example.com", "De|an", "IT",
		"6", // back
		"3", // main: courses
		"1", "CS|101", "Computer Science",
		"5", // back
		"6", "y",
	}, "\n") + "\n"

	m, reg, out, _ := newTestMenu(t, script)
	runSession(m)

	// A "|" in any text field would shift fields in the saved line, so
	// the records are rejected up front.
	assert.Contains(t, out.String(), "Invalid student details")
	assert.Contains(t, out.String(), "Invalid staff details")
	assert.Contains(t, out.String(), "Invalid course details")
	assert.Equal(t, 0, reg.StudentCount())
	assert.Equal(t, 0, reg.StaffCount())
	assert.Equal(t, 0, reg.CourseCount())
}

func TestSessionLoadWithoutSavedFile(t *testing.T) {
	script := strings.Join([]string{
		"5", // main: save/load
		"2", // load with no file on disk
		"3", // back
		"6", "y",
	}, "\n") + "\n"

	m, reg, out, dataFile := newTestMenu(t, script)
	runSession(m)

	assert.Contains(t, out.String(), "No saved data found at "+dataFile)
	assert.Equal(t, 0, reg.StudentCount())
}

func TestSessionRejectsDuplicateStudent(t *testing.T) {
	script := strings.Join([]string{
		"1",
		"1", "1", "Alice", "alice@example.com", "n",
		"1", "1", "Copy", "copy@example.com",
		"6",
		"6", "y",
	}, "\n") + "\n"

	m, reg, out, _ := newTestMenu(t, script)
	runSession(m)

	assert.Contains(t, out.String(), "A student with ID 1 already exists.")
	assert.Equal(t, 1, reg.StudentCount())
	assert.Equal(t, "Alice", reg.FindStudentByID(1).Name)
}
