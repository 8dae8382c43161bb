package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/svenskadata/bolagskollen/internal/common"
	"github.com/svenskadata/bolagskollen/internal/interfaces"
	"github.com/svenskadata/bolagskollen/internal/models"
)

// Service renders annual reports to the supported output formats and writes
// export files to the configured output directory.
type Service struct {
	outputDir string
	logger    arbor.ILogger
}

var _ interfaces.ExportService = (*Service)(nil)

// NewService creates an export service
func NewService(config *common.ExportConfig, logger arbor.ILogger) *Service {
	return &Service{outputDir: config.OutputDir, logger: logger}
}

// JSON renders any value as indented JSON
func (s *Service) JSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", models.NewAPIError(models.ErrCodeExport, "failed to encode JSON", err)
	}
	return string(data), nil
}

// WriteFile writes an export file into the output directory and returns its
// full path. The directory is created on first use.
func (s *Service) WriteFile(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", models.NewAPIError(models.ErrCodeExport, "failed to create output directory", err)
	}

	path := filepath.Join(s.outputDir, sanitizeFilename(filename))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", models.NewAPIError(models.ErrCodeExport, "failed to write export file", err)
	}

	s.logger.Info().Str("path", path).Int("bytes", len(data)).Msg("Export written")
	return path, nil
}

// sanitizeFilename keeps export names safe for the filesystem
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", " ", "_")
	return replacer.Replace(name)
}

// ExportFilename builds the conventional export name for a report
func ExportFilename(report *models.AnnualReport, extension string) string {
	return fmt.Sprintf("%s_%s.%s", report.OrgNumber, report.FiscalYear(), extension)
}
