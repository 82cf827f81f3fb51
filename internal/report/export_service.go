package report

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/noah-isme/campus-mis/pkg/errors"
	"github.com/noah-isme/campus-mis/pkg/export"
	"github.com/noah-isme/campus-mis/pkg/storage"
)

// ExportService renders a report into a file under the exports
// directory.
type ExportService struct {
	store  *storage.LocalStorage
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(store *storage.LocalStorage, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{store: store, logger: logger}
}

// Export renders the generator's dataset in the requested format and
// writes it under a unique filename. Returns the absolute path of the
// stored file.
func (s *ExportService) Export(gen Generator, format export.Format) (string, error) {
	payload, ext, err := export.Render(format, gen.Dataset(), gen.Title())
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrValidation.Code, "render "+gen.Title())
	}
	name := fmt.Sprintf("%s_%s.%s", slug(gen.Title()), uuid.NewString(), ext)
	if _, err := s.store.Save(name, payload); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrIO.Code, "store "+gen.Title())
	}
	path := s.store.Path(name)
	s.logger.Info("report exported",
		zap.String("report", gen.Title()),
		zap.String("format", string(format)),
		zap.String("path", path))
	return path, nil
}

// Discard removes a previously exported file. Names that no longer
// exist are a no-op.
func (s *ExportService) Discard(name string) error {
	if err := s.store.Delete(name); err != nil {
		return apperrors.Wrap(err, apperrors.ErrIO.Code, "discard "+name)
	}
	s.logger.Info("export discarded", zap.String("name", name))
	return nil
}

func slug(title string) string {
	return strings.ToLower(strings.ReplaceAll(title, " ", "_"))
}
