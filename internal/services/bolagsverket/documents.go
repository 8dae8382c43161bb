package bolagsverket

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"

	"github.com/svenskadata/bolagskollen/internal/models"
)

// extractXHTML finds the iXBRL document inside a filing ZIP archive. Filings
// carry exactly one report file; the first .xhtml, .html or .xml entry wins.
func extractXHTML(zipBytes []byte) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, models.NewAPIError(models.ErrCodeParse, "filing is not a valid ZIP archive", err)
	}

	for _, file := range reader.File {
		name := strings.ToLower(file.Name)
		if !strings.HasSuffix(name, ".xhtml") && !strings.HasSuffix(name, ".html") && !strings.HasSuffix(name, ".xml") {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, models.NewAPIError(models.ErrCodeParse, "failed to open archive entry", err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, models.NewAPIError(models.ErrCodeParse, "failed to read archive entry", err)
		}
		return data, nil
	}

	return nil, models.NewAPIError(models.ErrCodeParse, "no XHTML document found in filing archive", nil)
}
