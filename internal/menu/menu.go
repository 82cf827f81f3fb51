// Package menu drives the console interface. Each menu is a struct
// with its collaborators injected, and every prompt can be aborted
// back to the menu with the escape word.
package menu

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-mis/internal/codec"
	"github.com/noah-isme/campus-mis/internal/registry"
	"github.com/noah-isme/campus-mis/internal/report"
	"github.com/noah-isme/campus-mis/pkg/config"
	"github.com/noah-isme/campus-mis/pkg/prompt"
)

// MainMenu routes to the entity, report and persistence submenus.
type MainMenu struct {
	reg      *registry.Registry
	codec    *codec.Codec
	exporter *report.ExportService
	cfg      *config.Config
	in       *prompt.Reader
	out      io.Writer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewMainMenu constructs the main menu and its shared dependencies.
func NewMainMenu(reg *registry.Registry, fileCodec *codec.Codec, exporter *report.ExportService, cfg *config.Config, in *prompt.Reader, out io.Writer, logger *zap.Logger) *MainMenu {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MainMenu{
		reg:      reg,
		codec:    fileCodec,
		exporter: exporter,
		cfg:      cfg,
		in:       in,
		out:      out,
		validate: validator.New(),
		logger:   logger,
	}
}

// Show displays the main menu and handles one choice. Returns false
// once exit is confirmed.
func (m *MainMenu) Show() bool {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, " ~~~~~ Main Menu ~~~~~")
	fmt.Fprintln(m.out, "1. Students")
	fmt.Fprintln(m.out, "2. Staff")
	fmt.Fprintln(m.out, "3. Courses")
	fmt.Fprintln(m.out, "4. Reports")
	fmt.Fprintln(m.out, "5. Save/Load")
	fmt.Fprintln(m.out, "6. Exit")

	choice, ok := m.in.ReadInt("Choose an option (1-6):")
	if !ok {
		return true
	}

	switch choice {
	case 1:
		(&studentMenu{reg: m.reg, in: m.in, out: m.out, validate: m.validate}).show()
	case 2:
		(&staffMenu{reg: m.reg, in: m.in, out: m.out, validate: m.validate}).show()
	case 3:
		(&courseMenu{reg: m.reg, in: m.in, out: m.out, validate: m.validate}).show()
	case 4:
		(&reportsMenu{reg: m.reg, exporter: m.exporter, in: m.in, out: m.out}).show()
	case 5:
		(&saveLoadMenu{reg: m.reg, codec: m.codec, path: m.cfg.Data.FilePath, in: m.in, out: m.out}).show()
	case 6:
		confirmed, ok := m.in.Confirm("Exit the system? (y/n):")
		if ok && confirmed {
			m.logger.Info("exit confirmed",
				zap.Int("students", m.reg.StudentCount()),
				zap.Int("staff", m.reg.StaffCount()),
				zap.Int("courses", m.reg.CourseCount()))
			return false
		}
	default:
		fmt.Fprintln(m.out, "Please choose an option between 1 and 6.")
	}
	return true
}
