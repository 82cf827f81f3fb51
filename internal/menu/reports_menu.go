package menu

import (
	"fmt"
	"io"

	"github.com/noah-isme/campus-mis/internal/registry"
	"github.com/noah-isme/campus-mis/internal/report"
	"github.com/noah-isme/campus-mis/pkg/export"
	"github.com/noah-isme/campus-mis/pkg/prompt"
)

type reportsMenu struct {
	reg      *registry.Registry
	exporter *report.ExportService
	in       *prompt.Reader
	out      io.Writer
}

func (m *reportsMenu) show() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, " ~~~~~ Reports Menu ~~~~~")
		fmt.Fprintln(m.out, "1. Grades report")
		fmt.Fprintln(m.out, "2. Attendance report")
		fmt.Fprintln(m.out, "3. Export a report")
		fmt.Fprintln(m.out, "4. Delete an exported file")
		fmt.Fprintln(m.out, "5. Back")

		choice, ok := m.in.ReadInt("Choose an option (1-5):")
		if !ok {
			return
		}
		switch choice {
		case 1:
			fmt.Fprintln(m.out, report.NewGradesReport(m.reg).Generate())
		case 2:
			fmt.Fprintln(m.out, report.NewAttendanceReport(m.reg, m.reg).Generate())
		case 3:
			m.exportReport()
		case 4:
			m.deleteExport()
		case 5:
			return
		default:
			fmt.Fprintln(m.out, "Please choose an option between 1 and 5.")
		}
	}
}

func (m *reportsMenu) exportReport() {
	which, ok := m.in.ReadInt("Report to export (1 = grades, 2 = attendance):")
	if !ok {
		return
	}
	var gen report.Generator
	switch which {
	case 1:
		gen = report.NewGradesReport(m.reg)
	case 2:
		gen = report.NewAttendanceReport(m.reg, m.reg)
	default:
		fmt.Fprintln(m.out, "No such report.")
		return
	}

	formatName, ok := m.in.ReadString("Format (csv or pdf):")
	if !ok {
		return
	}
	format := export.Format(formatName)
	if format != export.FormatCSV && format != export.FormatPDF {
		fmt.Fprintf(m.out, "Unsupported format %q.\n", formatName)
		return
	}

	path, err := m.exporter.Export(gen, format)
	if err != nil {
		fmt.Fprintln(m.out, "Export failed:", err)
		return
	}
	fmt.Fprintln(m.out, "Report written to", path)
}

func (m *reportsMenu) deleteExport() {
	name, ok := m.in.ReadString("Exported file name (or full path):")
	if !ok {
		return
	}
	if err := m.exporter.Discard(name); err != nil {
		fmt.Fprintln(m.out, "Delete failed:", err)
		return
	}
	fmt.Fprintln(m.out, "Deleted", name)
}
