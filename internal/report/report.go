// Package report builds read-only summaries over registry data.
package report

import (
	"github.com/noah-isme/campus-mis/internal/models"
	"github.com/noah-isme/campus-mis/pkg/export"
)

// Generator produces a formatted text report and its tabular form.
type Generator interface {
	Title() string
	Generate() string
	Dataset() export.Dataset
}

type studentSource interface {
	Students() []*models.Student
}

type courseSource interface {
	Courses() []*models.Course
}
