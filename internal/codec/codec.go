// Package codec serializes the registry to a pipe-delimited line
// format and restores it. Each line starts with a record tag; repeated
// values inside a field are comma-joined.
package codec

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-mis/internal/models"
	"github.com/noah-isme/campus-mis/internal/registry"
	apperrors "github.com/noah-isme/campus-mis/pkg/errors"
)

// Record type tags, the first field of every persisted line.
const (
	TagStudent = "STUDENT"
	TagStaff   = "STAFF"
	TagCourse  = "COURSE"
)

const fieldSep = "|"

// Codec performs the save/load round trip for a Registry.
type Codec struct {
	logger *zap.Logger
}

// New constructs a Codec.
func New(logger *zap.Logger) *Codec {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Codec{logger: logger}
}

// Save writes every student, then every staff member, then every
// course as one line each, replacing the target file. The content is
// written to a temp file in the same directory and renamed into place
// so a failed write never truncates an existing data file.
func (c *Codec) Save(reg *registry.Registry, path string) error {
	var b strings.Builder
	for _, s := range reg.Students() {
		b.WriteString(strings.Join([]string{
			TagStudent,
			strconv.Itoa(s.ID),
			s.Name,
			s.Email,
			s.CourseCode,
			s.GradesCSV(),
			strconv.FormatFloat(s.Attendance, 'g', -1, 64),
		}, fieldSep))
		b.WriteByte('\n')
	}
	for _, s := range reg.StaffMembers() {
		b.WriteString(strings.Join([]string{
			TagStaff,
			strconv.Itoa(s.ID),
			s.Name,
			s.Email,
			s.Role,
			s.Department,
			s.TasksCSV(),
		}, fieldSep))
		b.WriteByte('\n')
	}
	for _, course := range reg.Courses() {
		b.WriteString(strings.Join([]string{
			TagCourse,
			course.Code,
			course.Title,
			course.EnrolledIDsCSV(),
		}, fieldSep))
		b.WriteByte('\n')
	}

	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return apperrors.Wrap(err, apperrors.ErrIO.Code, "write data file")
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return apperrors.Wrap(err, apperrors.ErrIO.Code, "replace data file")
	}

	c.logger.Info("data saved",
		zap.String("path", path),
		zap.Int("students", reg.StudentCount()),
		zap.Int("staff", reg.StaffCount()),
		zap.Int("courses", reg.CourseCount()))
	return nil
}

// Load reads the whole file and populates the registry in two passes:
// courses first, then students and staff. A student line references
// its course by code, so resolving courses up front makes the load
// independent of the order records appear in the file. Malformed
// lines are skipped with a warning.
func (c *Codec) Load(reg *registry.Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return apperrors.Wrap(err, apperrors.ErrNotFound.Code, "data file not found")
		}
		return apperrors.Wrap(err, apperrors.ErrIO.Code, "read data file")
	}
	lines := strings.Split(string(data), "\n")

	// Pass 1: courses. Rosters come straight from the line; the
	// student records have not been seen yet.
	for i, raw := range lines {
		line := strings.TrimRight(raw, "\r")
		if line == "" {
			continue
		}
		parts := strings.Split(line, fieldSep)
		if parts[0] == TagCourse {
			c.loadCourse(reg, i+1, parts)
		}
	}

	// Pass 2: students and staff. Every course code a student line
	// references is now resolvable if it was ever saved.
	for i, raw := range lines {
		line := strings.TrimRight(raw, "\r")
		if line == "" {
			continue
		}
		parts := strings.Split(line, fieldSep)
		switch parts[0] {
		case TagCourse:
		case TagStudent:
			c.loadStudent(reg, i+1, parts)
		case TagStaff:
			c.loadStaff(reg, i+1, parts)
		default:
			c.skip(i+1, apperrors.ErrMalformedRecord.Code, "unknown record tag "+parts[0])
		}
	}

	c.logger.Info("data loaded",
		zap.String("path", path),
		zap.Int("students", reg.StudentCount()),
		zap.Int("staff", reg.StaffCount()),
		zap.Int("courses", reg.CourseCount()))
	return nil
}

func (c *Codec) loadCourse(reg *registry.Registry, lineNo int, parts []string) {
	if len(parts) < 3 {
		c.skip(lineNo, apperrors.ErrMalformedRecord.Code, "course record needs code and title")
		return
	}
	course := models.NewCourse(parts[1], parts[2])
	if !reg.AddCourse(course) {
		c.skip(lineNo, apperrors.ErrDuplicate.Code, "duplicate course code "+parts[1])
		return
	}
	if len(parts) > 3 && parts[3] != "" {
		for _, field := range strings.Split(parts[3], ",") {
			id, err := strconv.Atoi(field)
			if err != nil {
				c.skip(lineNo, apperrors.ErrMalformedRecord.Code, "non-numeric enrolled id "+field)
				continue
			}
			course.Enrol(id)
		}
	}
}

func (c *Codec) loadStudent(reg *registry.Registry, lineNo int, parts []string) {
	if len(parts) < 7 {
		c.skip(lineNo, apperrors.ErrMalformedRecord.Code, "student record needs 7 fields")
		return
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		c.skip(lineNo, apperrors.ErrMalformedRecord.Code, "non-numeric student id "+parts[1])
		return
	}
	attendance, err := strconv.ParseFloat(parts[6], 64)
	if err != nil {
		c.skip(lineNo, apperrors.ErrMalformedRecord.Code, "non-numeric attendance "+parts[6])
		return
	}

	student := models.RestoreStudent(id, parts[2], parts[3], attendance)
	student.CourseCode = parts[4]
	if parts[5] != "" {
		for _, field := range strings.Split(parts[5], ",") {
			grade, err := strconv.Atoi(field)
			if err != nil {
				c.skip(lineNo, apperrors.ErrMalformedRecord.Code, "non-numeric grade "+field)
				continue
			}
			// AddGrade re-validates, dropping out-of-range values
			// from a hand-edited file.
			student.AddGrade(grade)
		}
	}
	if !reg.AddStudent(student) {
		c.skip(lineNo, apperrors.ErrDuplicate.Code, "duplicate student id "+parts[1])
	}
}

func (c *Codec) loadStaff(reg *registry.Registry, lineNo int, parts []string) {
	if len(parts) < 6 {
		c.skip(lineNo, apperrors.ErrMalformedRecord.Code, "staff record needs 6 fields")
		return
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		c.skip(lineNo, apperrors.ErrMalformedRecord.Code, "non-numeric staff id "+parts[1])
		return
	}
	staff := models.NewStaff(id, parts[2], parts[3], parts[4], parts[5])
	if len(parts) > 6 && parts[6] != "" {
		// Task entries carry their deadline baked into the display
		// string; they are restored verbatim, not re-parsed.
		staff.Tasks = append(staff.Tasks, strings.Split(parts[6], ",")...)
	}
	if !reg.AddStaff(staff) {
		c.skip(lineNo, apperrors.ErrDuplicate.Code, "duplicate staff id "+parts[1])
	}
}

func (c *Codec) skip(lineNo int, code, reason string) {
	c.logger.Warn("skipping record",
		zap.Int("line", lineNo),
		zap.String("reason", reason),
		zap.String("code", code))
}
